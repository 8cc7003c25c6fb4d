package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/views"
)

type PageHandler struct{}

// NewPageHandler registers the read-only pages. Contact and Products are
// served by their form handlers since they render controller state.
func NewPageHandler(site *gin.RouterGroup) *PageHandler {
	handler := &PageHandler{}

	site.GET("/", handler.Home)
	site.GET("/about", handler.About)
	site.GET("/services", handler.Services)
	site.GET("/careers", handler.Careers)

	return handler
}

func (h *PageHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, views.HomePage(pageData(c, "")))
}

func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, views.AboutPage(pageData(c, "About")))
}

func (h *PageHandler) Services(c *gin.Context) {
	render(c, http.StatusOK, views.ServicesPage(pageData(c, "Services")))
}

func (h *PageHandler) Careers(c *gin.Context) {
	render(c, http.StatusOK, views.CareersPage(pageData(c, "Careers")))
}

// NotFound renders the 404 page, or the JSON envelope under /v1.
func (h *PageHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
		return
	}
	render(c, http.StatusNotFound, views.NotFoundPage(pageData(c, "Page Not Found")))
}
