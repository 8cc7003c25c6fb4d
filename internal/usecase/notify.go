package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/security"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrModalClosed    = errors.New("notify modal is not open")
)

// NotifyState is the state of the "Get Notified" modal.
type NotifyState int

const (
	NotifyClosed NotifyState = iota
	NotifyOpen
	NotifySubmitting
)

func (s NotifyState) String() string {
	switch s {
	case NotifyOpen:
		return "open"
	case NotifySubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

type NotifySnapshot struct {
	State   NotifyState
	Product string
	Email   string
	Error   string
}

// NotifyController owns the email field of the notify modal, scoped to the
// product it was opened for.
type NotifyController struct {
	gateway  Gateway
	endpoint string
	validate *validator.Validate
	toasts   *Toaster

	mu      sync.Mutex
	state   NotifyState
	product string
	email   string
	errMsg  string
	// generation changes on every Open/Close so a late gateway result
	// cannot clobber a modal the visitor has since reopened.
	generation uint64
}

func NewNotifyController(gateway Gateway, endpoint string, validate *validator.Validate, toasts *Toaster) *NotifyController {
	return &NotifyController{
		gateway:  gateway,
		endpoint: endpoint,
		validate: validate,
		toasts:   toasts,
	}
}

// Open records the product context and reveals the modal.
func (n *NotifyController) Open(productName string) error {
	if _, ok := content.ProductByName(productName); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProduct, productName)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.generation++
	n.state = NotifyOpen
	n.product = productName
	n.errMsg = ""
	return nil
}

func (n *NotifyController) SetEmail(email string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state == NotifyOpen {
		n.email = email
		n.errMsg = ""
	}
}

// Close hides the modal. An outstanding request is abandoned, not cancelled.
func (n *NotifyController) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.generation++
	n.state = NotifyClosed
	n.email = ""
	n.errMsg = ""
}

// Submit sends {Product, Email} through the gateway. Whatever the outcome the
// modal closes and the email is cleared; the outcome only picks the toast.
func (n *NotifyController) Submit(ctx context.Context) (domain.Outcome, error) {
	n.mu.Lock()
	switch n.state {
	case NotifySubmitting:
		n.mu.Unlock()
		return domain.Pending(), ErrSubmissionInFlight
	case NotifyClosed:
		n.mu.Unlock()
		return domain.Outcome{}, ErrModalClosed
	}

	req := domain.NotifyRequest{Product: n.product, Email: strings.TrimSpace(n.email)}
	if err := n.validate.Struct(req); err != nil {
		msgs := validation.FormatValidationErrors(err)
		n.errMsg = strings.Join(msgs, "; ")
		n.mu.Unlock()
		return domain.Outcome{}, fmt.Errorf("%w: %s", ErrValidation, n.errMsg)
	}

	n.state = NotifySubmitting
	gen := n.generation
	n.mu.Unlock()

	err := n.gateway.Submit(ctx, n.endpoint, []formpost.Field{
		{Key: domain.FieldProduct, Value: req.Product},
		{Key: domain.FieldEmail, Value: req.Email},
	})

	n.mu.Lock()
	defer n.mu.Unlock()

	if gen == n.generation {
		n.state = NotifyClosed
		n.email = ""
		n.errMsg = ""
	}

	if err != nil {
		logger.Log.Warn("notify submission failed", "error", err, "product", req.Product, "email", security.MaskEmail(req.Email))
		n.toasts.Push(domain.Toast{
			Title:       "Subscription Failed!",
			Description: fmt.Sprintf("We couldn't add you to the %s list. Please try again.", req.Product),
			Variant:     domain.ToastDestructive,
		})
		return domain.Failed(err.Error()), err
	}

	logger.Log.Info("notify submission sent", "product", req.Product, "email", security.MaskEmail(req.Email))
	n.toasts.Push(domain.Toast{
		Title:       "You're on the list! 🎉",
		Description: fmt.Sprintf("We'll notify you when %s launches.", req.Product),
		Variant:     domain.ToastDefault,
	})
	return domain.Succeeded(), nil
}

func (n *NotifyController) Snapshot() NotifySnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return NotifySnapshot{
		State:   n.state,
		Product: n.product,
		Email:   n.email,
		Error:   n.errMsg,
	}
}
