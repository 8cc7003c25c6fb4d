package domain

// NotifyRequest is a launch-notification signup for one product.
type NotifyRequest struct {
	Product string `json:"product" form:"Product" validate:"required"`
	Email   string `json:"email" form:"Email" validate:"required,email,max=255"`
}
