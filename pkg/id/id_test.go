package id

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

var reUUID = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)

func TestNewRequestID_Format(t *testing.T) {
	got := NewRequestID()

	if len(got) != 36 {
		t.Fatalf("length = %d, want 36 (got=%q)", len(got), got)
	}
	if !reUUID.MatchString(got) {
		t.Fatalf("not a lowercase v4 uuid: %q", got)
	}
	u, err := uuid.Parse(got)
	if err != nil {
		t.Fatalf("uuid.Parse error: %v", err)
	}
	if u.Version() != 4 {
		t.Fatalf("version = %d, want 4", u.Version())
	}
}

func TestNewRequestID_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewRequestID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		NewRequestID():                          true,
		"6f1c2a9e-3b7d-4e21-9c55-0d8e4b7a1f20": true,
		"":                                      false,
		"not-a-uuid":                            false,
		"6f1c2a9e3b7d":                          false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}
