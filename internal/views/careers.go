package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
)

func internshipCard(in content.Internship) g.Node {
	return Div(
		Class("card internship"),
		Div(
			Class("internship-head"),
			Span(Class("card-icon"), Icon(in.Icon, "")),
			Div(
				H3(g.Text(in.Title)),
				Div(
					Class("meta"),
					Span(Icon("lucide--map-pin", ""), g.Text(in.Type)),
					Span(Icon("lucide--clock", ""), g.Text(in.Duration)),
				),
			),
		),
		P(g.Text(in.Description)),
		Div(
			Class("tags"),
			g.Group(g.Map(in.Skills, func(s string) g.Node {
				return Span(Class("tag"), g.Text(s))
			})),
		),
		A(
			Href(content.ApplicationFormURL),
			Class("btn btn-primary"),
			g.Attr("target", "_blank"),
			Rel("noopener noreferrer"),
			g.Text("Apply Now"),
			Icon("lucide--external-link", ""),
		),
	)
}

func CareersPage(data PageData) g.Node {
	return Layout(data,
		pageHero("Join", "Our Team", "Learn by building real products alongside experienced developers."),
		Section(
			Class("section container"),
			sectionHeading("Open positions", "Internship", "Programs", ""),
			Div(Class("grid grid-2"), g.Group(g.Map(content.Internships, internshipCard))),
		),
		Section(
			Class("section container"),
			sectionHeading("", "Why Intern", "With Us?", ""),
			Ul(
				Class("checklist grid grid-3"),
				g.Group(g.Map(content.InternshipBenefits, func(b string) g.Node {
					return Li(Icon("lucide--check-circle", ""), g.Text(b))
				})),
			),
		),
		Section(
			Class("cta"),
			Div(
				Class("container cta-inner"),
				H2(g.Text("Don't see a fit?")),
				P(Class("lead"), g.Text("Send us your resume anyway. We're always looking for curious people.")),
				A(Href("mailto:"+content.ContactEmail), Class("btn btn-outline btn-lg"), Icon("lucide--mail", ""), g.Text(content.ContactEmail)),
			),
		),
	)
}
