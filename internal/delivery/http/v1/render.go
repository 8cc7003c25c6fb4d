package v1

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/middleware"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/views"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
)

// render writes a gomponents tree as the HTML response body.
func render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	// Pages carry per-session form state and flash toasts.
	c.Header("Cache-Control", "no-store")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		logger.Log.Error("render failed", "path", c.FullPath(), "error", err)
	}
}

// pageData collects the per-request layout inputs and drains the session's
// pending toasts, so each toast shows exactly once.
func pageData(c *gin.Context, title string) views.PageData {
	data := views.PageData{
		Title: title,
		Path:  c.Request.URL.Path,
		Theme: c.GetString(string(domain.KeyTheme)),
		CSRF:  middleware.CSRFToken(c),
	}
	if sess := middleware.CurrentSession(c); sess != nil {
		data.Toasts = sess.Toasts.Drain()
	}
	return data
}

// localPath accepts only same-site absolute paths, so a posted redirect
// target cannot send the visitor off-site.
func localPath(raw, fallback string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	return u.Path
}

// seeOther finishes a form post with Post/Redirect/Get.
func seeOther(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}

// flashError queues a destructive toast and sends the visitor to path, so an
// HTML form post never ends on a JSON error envelope.
func flashError(c *gin.Context, path, title, description string) {
	if sess := middleware.CurrentSession(c); sess != nil {
		sess.Toasts.Push(domain.Toast{Title: title, Description: description, Variant: domain.ToastDestructive})
	}
	seeOther(c, path)
}

// redirectBack returns to the page the form was posted from.
func redirectBack(c *gin.Context, fallback string) {
	seeOther(c, localPath(c.GetHeader("Referer"), fallback))
}
