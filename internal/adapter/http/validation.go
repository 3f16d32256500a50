package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	// addresses are 40-char lowercase hex, no 0x prefix
	reHex40 = regexp.MustCompile(`^[a-f0-9]{40}$`)
	// proof references: request ids or verifier contract refs
	reHexRef = regexp.MustCompile(`^[a-f0-9]{8,128}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("hex40", func(fl validator.FieldLevel) bool {
		return reHex40.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hexref", func(fl validator.FieldLevel) bool {
		return reHexRef.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex40":
			out = append(out, FieldError{Field: field, Message: "must be 40-char lowercase hex"})
		case "hexref":
			out = append(out, FieldError{Field: field, Message: "must be a lowercase hex reference"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " items"})
		case "dive":
			out = append(out, FieldError{Field: field, Message: "has invalid items"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
