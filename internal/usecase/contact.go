package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/security"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

var (
	ErrValidation         = errors.New("required fields missing or invalid")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrUnknownField       = errors.New("unknown form field")
)

// Gateway delivers a submission to the external form endpoint.
type Gateway interface {
	Submit(ctx context.Context, endpoint string, fields []formpost.Field) error
}

// ContactState is the view state of the contact form.
type ContactState int

const (
	ContactEditing ContactState = iota
	ContactSubmitting
	ContactSubmitted
)

func (s ContactState) String() string {
	switch s {
	case ContactSubmitting:
		return "submitting"
	case ContactSubmitted:
		return "submitted"
	default:
		return "editing"
	}
}

var contactFieldOrder = []string{domain.FieldName, domain.FieldEmail, domain.FieldType, domain.FieldMessage}

// ContactSnapshot is a read-only copy of the controller for rendering.
type ContactSnapshot struct {
	State   ContactState
	Form    domain.ContactForm
	Outcome domain.Outcome
	Errors  validation.FieldErrors
}

// ContactController owns one visitor's contact form and its submission lifecycle.
type ContactController struct {
	gateway  Gateway
	endpoint string
	validate *validator.Validate
	toasts   *Toaster

	mu      sync.Mutex
	state   ContactState
	form    domain.ContactForm
	outcome domain.Outcome
	errors  validation.FieldErrors
}

func NewContactController(gateway Gateway, endpoint string, validate *validator.Validate, toasts *Toaster) *ContactController {
	return &ContactController{
		gateway:  gateway,
		endpoint: endpoint,
		validate: validate,
		toasts:   toasts,
		state:    ContactEditing,
	}
}

// SetField updates one field by its wire name. Edits are ignored while a
// submission is outstanding and once the form has been submitted, until Reset.
func (c *ContactController) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ContactEditing {
		return nil
	}
	switch name {
	case domain.FieldName:
		c.form.Name = value
	case domain.FieldEmail:
		c.form.Email = value
	case domain.FieldType:
		c.form.Type = value
	case domain.FieldMessage:
		c.form.Message = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	delete(c.errors, name)
	return nil
}

// SetForm replaces every field at once.
func (c *ContactController) SetForm(form domain.ContactForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != ContactEditing {
		return
	}
	c.form = form
	c.errors = nil
}

// Submit validates the form and sends it through the gateway. The gateway is
// never called when a required field is empty or while another submission is
// still outstanding.
func (c *ContactController) Submit(ctx context.Context) (domain.Outcome, error) {
	c.mu.Lock()
	switch c.state {
	case ContactSubmitting:
		c.mu.Unlock()
		return domain.Pending(), ErrSubmissionInFlight
	case ContactSubmitted:
		outcome := c.outcome
		c.mu.Unlock()
		return outcome, nil
	}

	form := c.form.Trimmed()
	if err := c.validate.Struct(form); err != nil {
		c.errors = validation.Collect(err)
		msgs := c.errors.Messages(contactFieldOrder...)
		c.mu.Unlock()
		return domain.Outcome{}, fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
	}

	c.state = ContactSubmitting
	c.outcome = domain.Pending()
	c.errors = nil
	c.mu.Unlock()

	err := c.gateway.Submit(ctx, c.endpoint, contactFields(form))

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logger.Log.Warn("contact submission failed", "error", err, "type", form.Type, "email", security.MaskEmail(form.Email))
		c.state = ContactEditing
		c.outcome = domain.Failed(err.Error())
		c.toasts.Push(domain.Toast{
			Title:       "Message Failed!",
			Description: "Something went wrong. Please try again.",
			Variant:     domain.ToastDestructive,
		})
		return c.outcome, err
	}

	logger.Log.Info("contact submission sent", "type", form.Type, "email", security.MaskEmail(form.Email))
	c.state = ContactSubmitted
	c.form = domain.ContactForm{}
	c.outcome = domain.Succeeded()
	c.toasts.Push(domain.Toast{
		Title:       "Message Sent! 🎉",
		Description: "We'll get back to you within 24 hours.",
		Variant:     domain.ToastDefault,
	})
	return c.outcome, nil
}

// Reset returns a submitted form to editing with empty fields ("Send Another Message").
func (c *ContactController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == ContactSubmitting {
		return
	}
	c.state = ContactEditing
	c.form = domain.ContactForm{}
	c.outcome = domain.Outcome{}
	c.errors = nil
}

func (c *ContactController) Snapshot() ContactSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs validation.FieldErrors
	if len(c.errors) > 0 {
		errs = make(validation.FieldErrors, len(c.errors))
		for k, v := range c.errors {
			errs[k] = v
		}
	}
	return ContactSnapshot{
		State:   c.state,
		Form:    c.form,
		Outcome: c.outcome,
		Errors:  errs,
	}
}

func contactFields(f domain.ContactForm) []formpost.Field {
	return []formpost.Field{
		{Key: domain.FieldName, Value: f.Name},
		{Key: domain.FieldEmail, Value: f.Email},
		{Key: domain.FieldType, Value: f.Type},
		{Key: domain.FieldMessage, Value: f.Message},
	}
}
