package http

import (
	"errors"
	"reflect"
	"strings"

	"wfh-leave-backend/internal/domain/wfh"

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

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report the wire name (json, then query/param) instead of the Go field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	// calendar date, YYYY-MM-DD
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := wfh.ParseDate(fl.Field().String())
		return err == nil
	})
	// set on is_pm: the request must cover at least one half of the day
	_ = v.RegisterValidation("halfday", func(fl validator.FieldLevel) bool {
		if fl.Field().Bool() {
			return true
		}
		am := fl.Parent().FieldByName("IsAM")
		return am.IsValid() && am.Kind() == reflect.Bool && am.Bool()
	})
	// empty, or one of the known request statuses
	_ = v.RegisterValidation("wfhstatus", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || wfh.Status(s).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "isodate":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		case "halfday":
			out = append(out, FieldError{Field: field, Message: "at least one of is_am or is_pm must be true"})
		case "wfhstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of Pending, Approved, Rejected, Cancelled, Withdrawn"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
