package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
)

// New returns a validator with the site's custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("project_type", ProjectType)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ProjectType accepts only the categories offered on the contact form.
func ProjectType(fl validator.FieldLevel) bool {
	return domain.IsValidProjectType(fl.Field().String())
}

// emoji covers the pictograph blocks: misc technical, misc symbols, dingbats,
// misc symbols and arrows, the emoji variation selector, the supplementary
// pictograph planes and tag characters. Letters outside the BMP (CJK
// Extension B and later) are not in it.
var emoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2300, Hi: 0x23ff, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2b00, Hi: 0x2bff, Stride: 1},
		{Lo: 0xfe0f, Hi: 0xfe0f, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1},
		{Lo: 0xe0020, Hi: 0xe007f, Stride: 1},
	},
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.Is(emoji, r) {
			return false
		}
	}
	return true
}
