package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
)

func serviceSummary(s content.Service) g.Node {
	return Div(
		Class("card"),
		Span(Class("card-icon "+s.Gradient), Icon(s.Icon, "")),
		H3(g.Text(s.Title)),
		P(g.Text(s.Description)),
	)
}

func serviceCard(s content.Service) g.Node {
	return Div(
		Class("card service-card"),
		Span(Class("card-icon "+s.Gradient), Icon(s.Icon, "")),
		H3(g.Text(s.Title)),
		P(g.Text(s.Description)),
		Ul(
			Class("checklist"),
			g.Group(g.Map(s.Features, func(f string) g.Node {
				return Li(Icon("lucide--check", ""), g.Text(f))
			})),
		),
	)
}

func ServicesPage(data PageData) g.Node {
	return Layout(data,
		pageHero("Our", "Services", "End-to-end development for the web, mobile and AI, delivered by one team."),
		Section(
			Class("section container"),
			Div(Class("grid grid-3"), g.Group(g.Map(content.Services, serviceCard))),
		),
		Section(
			Class("section container"),
			sectionHeading("How we work", "Our", "Process", ""),
			Div(
				Class("grid grid-4 process"),
				g.Group(g.Map(content.Process, func(p content.ProcessStep) g.Node {
					return Div(
						Class("process-step"),
						Span(Class("step-number gradient-text"), g.Text(p.Step)),
						H3(g.Text(p.Title)),
						P(g.Text(p.Description)),
					)
				})),
			),
		),
		ctaBand("Have a project in mind?", "Let's discuss how we can help bring your ideas to life."),
	)
}
