package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/middleware"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
)

const themeCookieMaxAge = 365 * 24 * 60 * 60

type ThemeHandler struct {
	secure bool
}

func NewThemeHandler(site *gin.RouterGroup, secure bool) {
	handler := &ThemeHandler{secure: secure}
	site.POST("/theme", handler.Toggle)
}

// Toggle flips between the dark and light themes and returns to the posted
// redirect path.
func (h *ThemeHandler) Toggle(c *gin.Context) {
	next := "light"
	if c.GetString(string(domain.KeyTheme)) == "light" {
		next = "dark"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.ThemeCookieName, next, themeCookieMaxAge, "/", "", h.secure, true)

	seeOther(c, localPath(c.PostForm("redirect"), "/"))
}
