package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
)

func AboutPage(data PageData) g.Node {
	return Layout(data,
		pageHero("About", "Ping's Lab", "A small, remote-first team of engineers and designers who love shipping software."),
		Section(
			Class("section container two-col"),
			Div(
				H2(g.Text("Our Story")),
				P(g.Text("Ping's Lab started as a group of developers building tools for ourselves. Today we help startups and businesses design, build and maintain their products.")),
				P(g.Text("We believe in clean code, open source, and shipping early. Every project gets the same care whether it is a landing page or a full platform.")),
			),
			Div(
				Class("card story-card"),
				Icon("lucide--users xl", ""),
				H3(g.Text("Remote-First")),
				P(g.Text("Our team works across time zones, which means someone is always moving your project forward.")),
			),
		),
		Section(
			Class("section container"),
			sectionHeading("Our values", "What Drives", "Us", ""),
			Div(Class("grid grid-3"), g.Group(g.Map(content.Values, highlightCard))),
		),
		statsBand(),
	)
}
