package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/security"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is read first, for script-driven posts
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input rendered into every HTML form
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern for the HTML
// forms. Every response carries a csrf_token cookie; state-changing requests
// must echo it in the X-CSRF-Token header or the csrf_token form field.
//
// Paths under any of exemptPrefixes skip validation. The JSON API is exempt:
// it is called cross-origin and is guarded by CORS and rate limiting instead.
func CSRFMiddleware(secure bool, exemptPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFTokenCookieName, token, int(CSRFTokenExpiry.Seconds()), "/", "", secure, false)
		}
		c.Set(string(domain.KeyCSRFToken), token)

		path := c.Request.URL.Path
		for _, prefix := range exemptPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		if submitted == "" {
			rejectCSRF(c, "Missing CSRF token", "missing")
			return
		}
		if subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
			rejectCSRF(c, "Invalid CSRF token", "mismatch")
			return
		}

		c.Next()
	}
}

func rejectCSRF(c *gin.Context, message, reason string) {
	security.DefaultLogger().LogCSRFViolation(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("User-Agent"),
		c.GetString(string(domain.KeyRequestID)),
		c.Request.URL.Path,
		reason,
	)
	response.Error(c, http.StatusForbidden, message, nil)
	c.Abort()
}

// CSRFToken returns the token to embed in rendered forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(string(domain.KeyCSRFToken))
}
