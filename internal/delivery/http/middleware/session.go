package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
)

const (
	SessionCookieName = "pl_session"
	ThemeCookieName   = "theme"
)

// Session attaches the visitor's form session, issuing a cookie for new visitors.
func Session(store *usecase.SessionStore, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookieName)
		sess, created := store.GetOrCreate(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			// Session cookie: no MaxAge, dies with the browser.
			c.SetCookie(SessionCookieName, sess.ID, 0, "/", "", secure, true)
		}
		c.Set(string(domain.KeySession), sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *gin.Context) *usecase.Session {
	v, ok := c.Get(string(domain.KeySession))
	if !ok {
		return nil
	}
	sess, _ := v.(*usecase.Session)
	return sess
}

// Theme exposes the visitor's light/dark preference to handlers.
func Theme() gin.HandlerFunc {
	return func(c *gin.Context) {
		theme, _ := c.Cookie(ThemeCookieName)
		if theme != "light" {
			theme = "dark"
		}
		c.Set(string(domain.KeyTheme), theme)
		c.Next()
	}
}
