package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFoundPage(data PageData) g.Node {
	return Layout(data,
		Section(
			Class("not-found"),
			H1(Class("gradient-text"), g.Text("404")),
			P(Class("lead"), g.Text("Oops! Page not found")),
			A(Href("/"), Class("btn btn-primary"), Icon("lucide--home", ""), g.Text("Return to Home")),
		),
	)
}
