package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

func fieldError(errs validation.FieldErrors, field string) g.Node {
	msg, ok := errs[field]
	if !ok {
		return nil
	}
	return P(Class("field-error"), ID("err-"+field), g.Text(msg))
}

func invalid(errs validation.FieldErrors, field string) g.Node {
	if _, ok := errs[field]; !ok {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("aria-invalid", "true"),
		g.Attr("aria-describedby", "err-"+field),
	})
}

func projectTypeSelect(selected string, errs validation.FieldErrors) g.Node {
	return Select(
		ID("contact-type"),
		Name(domain.FieldType),
		Required(),
		invalid(errs, domain.FieldType),
		Option(Value(""), g.If(selected == "", Selected()), Disabled(), g.Text("Select a project type")),
		g.Group(g.Map(domain.ProjectTypes, func(pt domain.ProjectType) g.Node {
			return Option(Value(string(pt)), g.If(string(pt) == selected, Selected()), g.Text(string(pt)))
		})),
	)
}

func contactForm(csrf string, s usecase.ContactSnapshot) g.Node {
	submitting := s.State == usecase.ContactSubmitting
	label := "Send Message"
	if submitting {
		label = "Sending..."
	}

	return postForm("/contact", csrf,
		Class("contact-form card"),
		g.Attr("novalidate", ""),
		fieldError(s.Errors, ""),
		Div(
			Class("field-row"),
			Div(
				Class("field"),
				Label(g.Attr("for", "contact-name"), g.Text("Name")),
				Input(ID("contact-name"), Type("text"), Name(domain.FieldName), Placeholder("Your name"), Value(s.Form.Name), Required(), invalid(s.Errors, domain.FieldName)),
				fieldError(s.Errors, domain.FieldName),
			),
			Div(
				Class("field"),
				Label(g.Attr("for", "contact-email"), g.Text("Email")),
				Input(ID("contact-email"), Type("email"), Name(domain.FieldEmail), Placeholder("you@example.com"), Value(s.Form.Email), Required(), invalid(s.Errors, domain.FieldEmail)),
				fieldError(s.Errors, domain.FieldEmail),
			),
		),
		Div(
			Class("field"),
			Label(g.Attr("for", "contact-type"), g.Text("Project Type")),
			projectTypeSelect(s.Form.Type, s.Errors),
			fieldError(s.Errors, domain.FieldType),
		),
		Div(
			Class("field"),
			Label(g.Attr("for", "contact-message"), g.Text("Message")),
			Textarea(ID("contact-message"), Name(domain.FieldMessage), g.Attr("rows", "6"), Placeholder("Tell us about your project..."), Required(), invalid(s.Errors, domain.FieldMessage), g.Text(s.Form.Message)),
			fieldError(s.Errors, domain.FieldMessage),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary btn-block"),
			g.If(submitting, Disabled()),
			Icon("lucide--send", ""),
			g.Text(label),
		),
	)
}

func submittedPanel(csrf string) g.Node {
	return Div(
		Class("card submitted"),
		Span(Class("card-icon success"), Icon("lucide--check-circle", "")),
		H3(g.Text("Message Sent!")),
		P(g.Text("Thank you for reaching out. We'll get back to you within 24 hours.")),
		postForm("/contact/reset", csrf,
			Button(Type("submit"), Class("btn btn-outline"), g.Text("Send Another Message")),
		),
	)
}

func ContactPage(data PageData, s usecase.ContactSnapshot) g.Node {
	var panel g.Node
	if s.State == usecase.ContactSubmitted {
		panel = submittedPanel(data.CSRF)
	} else {
		panel = contactForm(data.CSRF, s)
	}

	return Layout(data,
		pageHero("Get in", "Touch", "Have a project in mind? We'd love to hear from you."),
		Section(
			Class("section container contact-grid"),
			Div(
				Class("contact-info"),
				g.Group(g.Map(content.ContactDetails, func(ci content.ContactInfo) g.Node {
					value := g.Text(ci.Value)
					if ci.Href != "" {
						value = A(Href(ci.Href), g.Text(ci.Value))
					}
					return Div(
						Class("card info-card"),
						Span(Class("card-icon"), Icon(ci.Icon, "")),
						Div(H4(g.Text(ci.Title)), P(value)),
					)
				})),
			),
			panel,
		),
	)
}
