package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
)

// isActive matches the nav entry for path; "/" only matches itself.
func isActive(linkPath, path string) bool {
	if linkPath == "/" {
		return path == "/"
	}
	return path == linkPath || strings.HasPrefix(path, linkPath+"/")
}

func navLinks(path string) []g.Node {
	return g.Map(content.NavLinks, func(l content.NavLink) g.Node {
		active := isActive(l.Path, path)
		return Li(A(
			Href(l.Path),
			g.If(active, Class("active")),
			g.If(active, g.Attr("aria-current", "page")),
			g.Text(l.Name),
		))
	})
}

func Logo() g.Node {
	return A(
		Href("/"),
		Class("logo"),
		Span(Class("logo-mark"), Icon("lucide--terminal-square", "")),
		Span(Class("logo-text"), g.Text("Ping's "), Span(Class("gradient-text"), g.Text("Lab"))),
	)
}

// ThemeToggle posts to /theme and comes back to the current page.
func ThemeToggle(data PageData) g.Node {
	icon, label := "lucide--sun", "Switch to light theme"
	if data.Theme == "light" {
		icon, label = "lucide--moon", "Switch to dark theme"
	}
	return postForm("/theme", data.CSRF,
		Input(Type("hidden"), Name("redirect"), Value(data.Path)),
		Button(Type("submit"), Class("btn btn-ghost btn-square"), g.Attr("aria-label", label), Icon(icon, "")),
	)
}

// Navbar is the fixed top bar. Below the lg breakpoint the links move into a
// drawer driven by a checkbox, so the menu works without JavaScript.
func Navbar(data PageData) g.Node {
	return Header(
		Class("navbar"),
		Nav(
			Class("container navbar-inner"),
			Logo(),
			Ul(Class("nav-links"), g.Group(navLinks(data.Path))),
			Div(
				Class("nav-actions"),
				ThemeToggle(data),
				A(Href("/contact"), Class("btn btn-primary nav-cta"), g.Text("Get Started")),
				Label(
					g.Attr("for", "nav-drawer"),
					Class("btn btn-ghost btn-square nav-toggle"),
					g.Attr("aria-label", "Toggle menu"),
					Icon("lucide--menu", ""),
				),
			),
		),
		Input(ID("nav-drawer"), Type("checkbox"), Class("drawer-toggle")),
		Div(
			Class("drawer"),
			Ul(Class("drawer-links"), g.Group(navLinks(data.Path))),
			A(Href("/contact"), Class("btn btn-primary"), g.Text("Get Started")),
		),
	)
}
