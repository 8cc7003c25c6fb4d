package views

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
)

// csrfFieldName must match middleware.CSRFTokenFormField.
const csrfFieldName = "csrf_token"

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify placeholder. iconClass is "set--name [classes...]".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify icon"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify icon %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

func csrfInput(token string) g.Node {
	return Input(Type("hidden"), Name(csrfFieldName), Value(token))
}

// postForm renders a same-origin POST form carrying the CSRF token.
func postForm(action, token string, children ...g.Node) g.Node {
	return FormEl(
		Method("post"),
		Action(action),
		csrfInput(token),
		g.Group(children),
	)
}

func sectionHeading(eyebrow, title, highlight, lead string) g.Node {
	return Div(
		Class("section-heading"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(g.Text(title+" "), Span(Class("gradient-text"), g.Text(highlight))),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}

func pageHero(title, highlight, lead string) g.Node {
	return Section(
		Class("page-hero"),
		H1(g.Text(title+" "), Span(Class("gradient-text"), g.Text(highlight))),
		P(Class("lead"), g.Text(lead)),
	)
}

// Toasts renders the flash queue. Each toast is dismissible and fades out in site.js.
func Toasts(toasts []domain.Toast) g.Node {
	if len(toasts) == 0 {
		return nil
	}
	return Div(
		Class("toasts"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(toasts, func(t domain.Toast) g.Node {
			return Div(
				Class("toast toast-"+string(t.Variant)),
				g.Attr("data-toast", ""),
				Strong(g.Text(t.Title)),
				g.If(t.Description != "", P(g.Text(t.Description))),
				Button(Type("button"), Class("toast-close"), g.Attr("aria-label", "Dismiss"), g.Text("×")),
			)
		})),
	)
}
