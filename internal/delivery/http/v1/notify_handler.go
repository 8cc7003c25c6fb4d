package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/middleware"
	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/internal/views"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/apperror"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
)

type NotifyHandler struct {
	sessions *usecase.SessionStore
}

// NotifyRequest is the JSON body of POST /v1/notify.
type NotifyRequest struct {
	Product string `json:"product" binding:"required"`
	Email   string `json:"email"`
}

func NewNotifyHandler(site, api *gin.RouterGroup, sessions *usecase.SessionStore, htmlLimit, apiLimit gin.HandlerFunc) {
	handler := &NotifyHandler{sessions: sessions}

	site.GET("/products", handler.Page)
	site.POST("/products/notify/open", handler.Open)
	site.POST("/products/notify", htmlLimit, handler.Submit)
	site.POST("/products/notify/close", handler.Close)

	api.POST("/notify", apiLimit, handler.SubmitNotify)
}

func (h *NotifyHandler) Page(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	render(c, http.StatusOK, views.ProductsPage(pageData(c, "Products"), sess.Notify.Snapshot()))
}

// Open shows the modal for the posted product.
func (h *NotifyHandler) Open(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := sess.Notify.Open(c.PostForm(domain.FieldProduct)); err != nil {
		flashError(c, "/products", "Product not found", "That product is not on our list.")
		return
	}
	seeOther(c, "/products")
}

// Submit sends the modal's email. The modal closes on either outcome; a
// validation failure keeps it open with the message inline.
func (h *NotifyHandler) Submit(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	sess.Notify.SetEmail(c.PostForm(domain.FieldEmail))

	_, err := sess.Notify.Submit(context.WithoutCancel(c.Request.Context()))
	if err != nil && !errors.Is(err, usecase.ErrValidation) && !errors.Is(err, usecase.ErrSubmissionInFlight) && !errors.Is(err, usecase.ErrModalClosed) {
		logger.Log.Debug("notify submit", "error", err)
	}

	seeOther(c, "/products")
}

func (h *NotifyHandler) Close(c *gin.Context) {
	middleware.CurrentSession(c).Notify.Close()
	seeOther(c, "/products")
}

// SubmitNotify godoc
// @Summary      Subscribe to a product launch
// @Description  Forward {Product, Email} to the form endpoint.
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        notify  body      NotifyRequest  true  "Product and email"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      502     {object}  response.Response
// @Router       /notify [post]
func (h *NotifyHandler) SubmitNotify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Request body must include a product"))
		return
	}

	sess := h.sessions.NewSession()
	if err := sess.Notify.Open(req.Product); err != nil {
		c.Error(submitError(err, nil))
		return
	}
	sess.Notify.SetEmail(req.Email)

	outcome, err := sess.Notify.Submit(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		var details []string
		if msg := sess.Notify.Snapshot().Error; msg != "" {
			details = strings.Split(msg, "; ")
		}
		c.Error(submitError(err, details))
		return
	}

	toast := lastToast(sess.Toasts)
	response.Success(c, http.StatusOK, toast.Title, gin.H{
		"outcome": outcome,
		"toast":   toast,
	})
}
