package domain

import "strings"

// ProjectType is the category a visitor picks on the contact form.
type ProjectType string

const (
	ProjectPortfolioDesign ProjectType = "Portfolio Design"
	ProjectWebDevelopment  ProjectType = "Web Development"
	ProjectAppDevelopment  ProjectType = "App Development"
	ProjectFullStack       ProjectType = "Full Stack Project"
	ProjectConsultation    ProjectType = "Consultation"
	ProjectOther           ProjectType = "Other"
)

// ProjectTypes lists the categories in display order.
var ProjectTypes = []ProjectType{
	ProjectPortfolioDesign,
	ProjectWebDevelopment,
	ProjectAppDevelopment,
	ProjectFullStack,
	ProjectConsultation,
	ProjectOther,
}

// IsValidProjectType reports whether s is one of ProjectTypes.
func IsValidProjectType(s string) bool {
	for _, pt := range ProjectTypes {
		if string(pt) == s {
			return true
		}
	}
	return false
}

// Contact form field names, also used as keys on the wire.
const (
	FieldName    = "Name"
	FieldEmail   = "Email"
	FieldType    = "Type"
	FieldMessage = "Message"
	FieldProduct = "Product"
)

// ContactForm is the state behind the contact page.
type ContactForm struct {
	Name    string `json:"name" form:"Name" validate:"required,max=100,no_emoji"`
	Email   string `json:"email" form:"Email" validate:"required,email,max=255"`
	Type    string `json:"type" form:"Type" validate:"required,project_type"`
	Message string `json:"message" form:"Message" validate:"required,max=4000"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Type:    strings.TrimSpace(f.Type),
		Message: strings.TrimSpace(f.Message),
	}
}

// IsEmpty reports whether no field has been filled in.
func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}
