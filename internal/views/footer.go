package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
)

func SiteFooter() g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Logo(),
				P(g.Text("Building the future, one line of code at a time. We craft innovative software solutions for startups and businesses.")),
				Div(
					Class("socials"),
					g.Group(g.Map(content.SocialLinks, func(s content.SocialLink) g.Node {
						return A(
							Href(s.Href),
							Class("social"),
							g.Attr("target", "_blank"),
							Rel("noopener noreferrer"),
							Icon(s.Icon, s.Label),
						)
					})),
				),
			),
			g.Group(g.Map(content.FooterGroups, func(fg content.FooterGroup) g.Node {
				return Div(
					H4(g.Text(fg.Title)),
					Ul(g.Group(g.Map(fg.Links, func(l content.NavLink) g.Node {
						return Li(A(Href(l.Path), g.Text(l.Name)))
					}))),
				)
			})),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Textf("© %d %s. All rights reserved.", time.Now().Year(), content.CompanyName)),
		),
	)
}
