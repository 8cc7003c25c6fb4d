package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/middleware"
	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/internal/views"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/apperror"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
)

var contactFieldOrder = []string{domain.FieldName, domain.FieldEmail, domain.FieldType, domain.FieldMessage}

type ContactHandler struct {
	sessions *usecase.SessionStore
}

// NewContactHandler registers the contact page, its form posts and the JSON
// endpoint. htmlLimit and apiLimit guard the routes that reach the form endpoint.
func NewContactHandler(site, api *gin.RouterGroup, sessions *usecase.SessionStore, htmlLimit, apiLimit gin.HandlerFunc) {
	handler := &ContactHandler{sessions: sessions}

	site.GET("/contact", handler.Page)
	site.POST("/contact", htmlLimit, handler.Submit)
	site.POST("/contact/reset", handler.Reset)

	api.POST("/contact", apiLimit, handler.SubmitContact)
}

func (h *ContactHandler) Page(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	render(c, http.StatusOK, views.ContactPage(pageData(c, "Contact"), sess.Contact.Snapshot()))
}

// Submit takes the posted fields and runs the submission. Whatever happens the
// visitor is redirected back to /contact, which renders the resulting state.
func (h *ContactHandler) Submit(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form domain.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		flashError(c, "/contact", "Message Failed!", "Your message could not be read. Please try again.")
		return
	}
	sess.Contact.SetForm(form)

	// The visitor navigating away must not cancel the outbound request.
	_, err := sess.Contact.Submit(context.WithoutCancel(c.Request.Context()))
	switch {
	case err == nil,
		errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrSubmissionInFlight),
		errors.Is(err, formpost.ErrTransport),
		errors.Is(err, formpost.ErrNoEndpoint):
	default:
		logger.Log.Error("contact submit", "error", err, "request_id", c.GetString(string(domain.KeyRequestID)))
	}

	seeOther(c, "/contact")
}

// Reset handles "Send Another Message".
func (h *ContactHandler) Reset(c *gin.Context) {
	middleware.CurrentSession(c).Contact.Reset()
	seeOther(c, "/contact")
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact message and forward it to the form endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactForm  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Request body must be a JSON contact form"))
		return
	}

	sess := h.sessions.NewSession()
	sess.Contact.SetForm(req)

	outcome, err := sess.Contact.Submit(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		c.Error(submitError(err, sess.Contact.Snapshot().Errors.Messages(contactFieldOrder...)))
		return
	}

	toast := lastToast(sess.Toasts)
	response.Success(c, http.StatusOK, toast.Title, gin.H{
		"outcome": outcome,
		"toast":   toast,
	})
}

// submitError maps controller errors onto API errors.
func submitError(err error, details []string) *apperror.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return apperror.Validation("Please fill in all required fields", details, err)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return apperror.Conflict("A submission is already in progress")
	case errors.Is(err, usecase.ErrUnknownProduct):
		return apperror.NotFound("Unknown product")
	case errors.Is(err, formpost.ErrNoEndpoint):
		return apperror.New(http.StatusServiceUnavailable, "Form service temporarily unavailable", err)
	case errors.Is(err, formpost.ErrTransport):
		return apperror.BadGateway("Something went wrong. Please try again.", err)
	default:
		return apperror.Internal(err)
	}
}

func lastToast(t *usecase.Toaster) domain.Toast {
	toasts := t.Drain()
	if len(toasts) == 0 {
		return domain.Toast{}
	}
	return toasts[len(toasts)-1]
}
