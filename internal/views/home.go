package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
)

func hero() g.Node {
	return Section(
		Class("hero"),
		Div(
			Class("container hero-inner"),
			Span(Class("badge"), Icon("lucide--sparkles", ""), g.Text("Software Development Agency")),
			H1(
				g.Text("We Build "),
				Span(Class("gradient-text"), g.Text("Digital Products")),
				g.Text(" That Matter"),
			),
			P(Class("lead"), g.Text("From web apps to AI agents, Ping's Lab turns ideas into fast, reliable software for startups and growing businesses.")),
			Div(
				Class("hero-actions"),
				A(Href("/contact"), Class("btn btn-primary btn-lg"), g.Text("Start a Project"), Icon("lucide--arrow-right", "")),
				A(Href("/services"), Class("btn btn-outline btn-lg"), g.Text("Our Services")),
			),
		),
	)
}

func highlightCard(h content.Highlight) g.Node {
	return Div(
		Class("card"),
		Span(Class("card-icon"), Icon(h.Icon, "")),
		H3(g.Text(h.Title)),
		P(g.Text(h.Description)),
	)
}

func statsBand() g.Node {
	return Section(
		Class("stats"),
		Div(
			Class("container stats-grid"),
			g.Group(g.Map(content.Stats, func(s content.Stat) g.Node {
				return Div(
					Class("stat"),
					Span(Class("stat-value gradient-text"), g.Text(s.Value)),
					Span(Class("stat-label"), g.Text(s.Label)),
				)
			})),
		),
	)
}

func ctaBand(title, lead string) g.Node {
	return Section(
		Class("cta"),
		Div(
			Class("container cta-inner"),
			H2(g.Text(title)),
			P(Class("lead"), g.Text(lead)),
			A(Href("/contact"), Class("btn btn-primary btn-lg"), g.Text("Let's Talk"), Icon("lucide--arrow-right", "")),
		),
	)
}

func HomePage(data PageData) g.Node {
	return Layout(data,
		hero(),
		Section(
			Class("section container"),
			sectionHeading("Why Ping's Lab", "Built by Developers,", "for Builders", "We combine engineering discipline with product thinking."),
			Div(Class("grid grid-4"), g.Group(g.Map(content.Features, highlightCard))),
		),
		statsBand(),
		Section(
			Class("section container"),
			sectionHeading("What we do", "Services that", "Scale", ""),
			Div(Class("grid grid-3"), g.Group(g.Map(content.Services, serviceSummary))),
			Div(Class("center"), A(Href("/services"), Class("btn btn-outline"), g.Text("View All Services"))),
		),
		ctaBand("Ready to build something great?", "Tell us about your project and we'll get back to you within 24 hours."),
	)
}
