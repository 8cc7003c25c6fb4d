package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Pings-Lab/pings-lab.github.io/config"
	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/middleware"
	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/internal/views"
)

type RouterDeps struct {
	Sessions *usecase.SessionStore
	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	secure := cfg.IsProduction()
	window := cfg.RateLimitWindow()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(append([]string{cfg.SiteURL}, cfg.AllowedOrigins...), secure)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(secure))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.Theme())

	r.StaticFS("/static", http.FS(views.Static()))
	NewArtworkHandler(r)

	csrf := middleware.CSRFMiddleware(secure, "/v1/")

	// Visitor-facing pages: session-scoped form state behind CSRF.
	site := r.Group("")
	site.Use(csrf)
	site.Use(middleware.Session(deps.Sessions, secure))

	// Contact and notify share one counter per client; the JSON API counts
	// separately under its own key prefix.
	htmlSubmit := middleware.SubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, window)
	htmlSubmit.Reject = slowDown
	apiSubmit := middleware.RateLimitMiddleware(middleware.APISubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, window))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	htmlLimit := middleware.RateLimitMiddleware(htmlSubmit)
	pages := NewPageHandler(site)
	NewThemeHandler(site, secure)
	NewContactHandler(site, v1, deps.Sessions, htmlLimit, apiSubmit)
	NewNotifyHandler(site, v1, deps.Sessions, htmlLimit, apiSubmit)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(csrf, pages.NotFound)

	return r
}

// slowDown answers a rate-limited form post with a toast instead of JSON.
func slowDown(c *gin.Context, message string) {
	if sess := middleware.CurrentSession(c); sess != nil {
		sess.Toasts.Push(domain.Toast{
			Title:       "Slow down!",
			Description: message,
			Variant:     domain.ToastDestructive,
		})
	}
	redirectBack(c, "/")
}
