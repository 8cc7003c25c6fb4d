package views

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestLayoutMarksActiveLink(t *testing.T) {
	html := render(t, AboutPage(PageData{Title: "About", Path: "/about", Theme: "light", CSRF: "tok"}))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<title>About | Ping&#39;s Lab - Software Development Agency</title>`)
	assert.Contains(t, html, `<a href="/about" class="active" aria-current="page">About</a>`)
	assert.NotContains(t, html, `<a href="/" class="active"`)
	assert.Contains(t, html, `data-theme="light"`)
	assert.Contains(t, html, `name="csrf_token" value="tok"`)
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive("/", "/"))
	assert.False(t, isActive("/", "/about"))
	assert.True(t, isActive("/products", "/products"))
	assert.True(t, isActive("/products", "/products/web-helm"))
	assert.False(t, isActive("/products", "/productsx"))
}

func TestContactPageKeepsFieldsAndShowsErrors(t *testing.T) {
	snap := usecase.ContactSnapshot{
		State: usecase.ContactEditing,
		Form:  domain.ContactForm{Name: "Jane", Type: "Consultation", Message: "Hi <there>"},
		Errors: validation.FieldErrors{
			domain.FieldEmail: "Email is required",
		},
	}
	html := render(t, ContactPage(PageData{Path: "/contact"}, snap))

	assert.Contains(t, html, `value="Jane"`)
	assert.Contains(t, html, `<option value="Consultation" selected>Consultation</option>`)
	assert.Contains(t, html, "Hi &lt;there&gt;")
	assert.Contains(t, html, `<p class="field-error" id="err-Email">Email is required</p>`)
	assert.Contains(t, html, "Send Message")
	assert.NotContains(t, html, "Send Another Message")
}

func TestContactPageSubmittingDisablesButton(t *testing.T) {
	html := render(t, ContactPage(PageData{}, usecase.ContactSnapshot{State: usecase.ContactSubmitting}))
	assert.Contains(t, html, "Sending...")
	assert.Contains(t, html, "disabled")
}

func TestContactPageSubmitted(t *testing.T) {
	html := render(t, ContactPage(PageData{}, usecase.ContactSnapshot{State: usecase.ContactSubmitted}))
	assert.Contains(t, html, "Send Another Message")
	assert.Contains(t, html, `action="/contact/reset"`)
	assert.NotContains(t, html, `name="Message"`)
}

func TestProductsPageModal(t *testing.T) {
	closed := render(t, ProductsPage(PageData{}, usecase.NotifySnapshot{}))
	assert.NotContains(t, closed, "Get Notified")
	assert.Contains(t, closed, `src="/images/products/web-helm?w=640"`)

	open := render(t, ProductsPage(PageData{}, usecase.NotifySnapshot{
		State:   usecase.NotifyOpen,
		Product: "Web Helm",
		Error:   "Email is required",
	}))
	assert.Contains(t, open, "Get Notified")
	assert.Contains(t, open, "Enter your email to be notified when Web Helm launches.")
	assert.Contains(t, open, "Email is required")
}

func TestToasts(t *testing.T) {
	assert.Nil(t, Toasts(nil))

	html := render(t, Toasts([]domain.Toast{{Title: "Message Failed!", Variant: domain.ToastDestructive}}))
	assert.Contains(t, html, `class="toast toast-destructive"`)
	assert.Contains(t, html, "Message Failed!")
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"styles.css", "js/site.js", "favicon.svg"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}
