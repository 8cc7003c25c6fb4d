// Package views renders the site's pages as gomponents trees.
package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
)

// PageData is what every page needs from the request besides its own content.
type PageData struct {
	Title       string
	Description string
	Path        string
	Theme       string
	CSRF        string
	Toasts      []domain.Toast
}

const defaultDescription = "Ping's Lab builds web apps, mobile apps and AI agents for startups and businesses."

func Layout(data PageData, children ...g.Node) g.Node {
	title := companyTitle
	if data.Title != "" {
		title = data.Title + " | " + companyTitle
	}
	if data.Description == "" {
		data.Description = defaultDescription
	}
	if data.Theme == "" {
		data.Theme = "dark"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class(data.Theme),
			g.Attr("data-theme", data.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(data.Description)),
				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(data.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("icon"), Href("/static/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Navbar(data),
				Main(Class("page"), g.Group(children)),
				SiteFooter(),
				Toasts(data.Toasts),
				Script(Src("/static/js/site.js")),
			),
		),
	})
}

const companyTitle = content.CompanyName + " - Software Development Agency"
