package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestISODateValidation(t *testing.T) {
	type P struct {
		Day string `json:"day" validate:"isodate"`
	}
	cv := NewValidator()

	for _, s := range []string{"2024-12-12", "2024-02-29", "1999-01-01"} {
		if err := cv.Validate(P{Day: s}); err != nil {
			t.Fatalf("expected valid date %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "2023-02-29", "12/12/2024", "2024-12-12T00:00:00Z", "2024-1-5"} {
		err := cv.Validate(P{Day: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "day", "YYYY-MM-DD") {
			t.Fatalf("expected isodate message for %q, got: %+v", s, fe)
		}
	}
}

func TestHalfDayValidation(t *testing.T) {
	type P struct {
		IsAM bool `json:"is_am"`
		IsPM bool `json:"is_pm" validate:"halfday"`
	}
	cv := NewValidator()

	for _, ok := range []P{{IsAM: true}, {IsPM: true}, {IsAM: true, IsPM: true}} {
		if err := cv.Validate(ok); err != nil {
			t.Fatalf("expected %+v to pass, got %v", ok, err)
		}
	}
	err := cv.Validate(P{})
	if err == nil {
		t.Fatal("expected error when neither half is requested")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "is_pm", "is_am or is_pm") {
		t.Fatalf("expected halfday message, got %+v", fe)
	}
}

func TestStatusValidation(t *testing.T) {
	type P struct {
		Status string `query:"status" validate:"wfhstatus"`
	}
	cv := NewValidator()

	for _, s := range []string{"", "Pending", "Cancelled", "Withdrawn"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q to pass, got %v", s, err)
		}
	}
	err := cv.Validate(P{Status: "pending"})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "status", "must be one of") {
		t.Fatalf("expected status message, got %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name    string `json:"name" validate:"required"`
		StaffID int64  `param:"staff_id" validate:"gt=0"`
		Reason  string `json:"reason" validate:"max=5"`
		Min     int    `validate:"gte=10"`
		Max     int    `validate:"lte=5"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Reason: "too long", Min: 9, Max: 6})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	checks := []struct{ field, msg string }{
		{"name", "is required"},
		{"staff_id", "greater than 0"},
		{"reason", "at most 5 characters"},
		{"Min", "greater than or equal to 10"},
		{"Max", "less than or equal to 5"},
	}
	for _, c := range checks {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %q for %s: %+v", c.msg, c.field, fe)
		}
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
