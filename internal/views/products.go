package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
)

func productCard(p content.Product, csrf string) g.Node {
	return Div(
		Class("card product"),
		Div(
			Class("product-cover"),
			Img(Src("/images/products/"+p.Slug+"?w=640"), Alt(p.Name), g.Attr("loading", "lazy"), g.Attr("width", "640"), g.Attr("height", "360")),
			Span(Class("badge badge-soon"), g.Text("Coming Soon")),
		),
		H3(g.Text(p.Name)),
		P(g.Text(p.Description)),
		postForm("/products/notify/open", csrf,
			Input(Type("hidden"), Name("Product"), Value(p.Name)),
			Button(Type("submit"), Class("btn btn-outline btn-block"), Icon("lucide--bell", ""), g.Text("Notify Me")),
		),
	)
}

// NotifyModal is the "get notified" dialog. It renders only while the
// session's notify controller is open or submitting.
func NotifyModal(csrf string, s usecase.NotifySnapshot) g.Node {
	if s.State == usecase.NotifyClosed {
		return nil
	}
	submitting := s.State == usecase.NotifySubmitting
	label := "Notify Me"
	if submitting {
		label = "Subscribing..."
	}

	return Div(
		Class("modal-backdrop"),
		g.Attr("data-modal", ""),
		Div(
			Class("modal card"),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			g.Attr("aria-labelledby", "notify-title"),
			postForm("/products/notify/close", csrf,
				Button(Type("submit"), Class("modal-close btn btn-ghost btn-square"), g.Attr("aria-label", "Close"), Icon("lucide--x", "")),
			),
			H3(ID("notify-title"), g.Text("Get Notified")),
			P(g.Textf("Enter your email to be notified when %s launches.", s.Product)),
			postForm("/products/notify", csrf,
				Input(
					Type("email"),
					Name("Email"),
					ID("notify-email"),
					Placeholder("you@example.com"),
					Value(s.Email),
					Required(),
					g.Attr("autofocus", ""),
					g.If(s.Error != "", g.Attr("aria-invalid", "true")),
				),
				g.If(s.Error != "", P(Class("field-error"), g.Text(s.Error))),
				Button(
					Type("submit"),
					Class("btn btn-primary btn-block"),
					g.If(submitting, Disabled()),
					g.Text(label),
				),
			),
		),
	)
}

func ProductsPage(data PageData, notify usecase.NotifySnapshot) g.Node {
	return Layout(data,
		pageHero("Our", "Products", "SaaS products we're building in the lab. Be the first to know when they launch."),
		Section(
			Class("section container"),
			Div(
				Class("grid grid-2"),
				g.Group(g.Map(content.Products, func(p content.Product) g.Node {
					return productCard(p, data.CSRF)
				})),
			),
		),
		NotifyModal(data.CSRF, notify),
	)
}
