package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/sustainassess/pkg/validation"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirm_password" validate:"eqfield=Password"`
	Color    string `json:"color" validate:"required,test_color"`
}

func init() {
	validation.Register("test_color", func(s string) bool {
		return s == "green" || s == "blue"
	}, "must be a supported color")
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  signup
		fields map[string]string
	}{
		{
			name:  "valid",
			input: signup{Email: "a@b.io", Password: "secret", Confirm: "secret", Color: "green"},
		},
		{
			name:  "every field fails",
			input: signup{Email: "nope", Password: "abc", Confirm: "abd", Color: "red"},
			fields: map[string]string{
				"email":            "must be a valid email address",
				"password":         "must be at least 6 characters",
				"confirm_password": "must match password",
				"color":            "must be a supported color",
			},
		},
		{
			name:  "missing",
			input: signup{Password: "secret", Confirm: "secret", Color: "blue"},
			fields: map[string]string{
				"email": "email is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.input)
			if tt.fields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *validation.Error
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *validation.Error", err)
			}
			if !errors.Is(err, validation.ErrInvalid) {
				t.Error("error does not match ErrInvalid")
			}
			if len(ve.Fields) != len(tt.fields) {
				t.Errorf("fields = %v, want %v", ve.Fields, tt.fields)
			}
			for k, want := range tt.fields {
				if got := ve.Fields[k]; got != want {
					t.Errorf("%s: got %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestErrorMessageIsSorted(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{"b": "second", "a": "first"}}
	if got := err.Error(); !strings.HasSuffix(got, "a: first; b: second") {
		t.Errorf("got %q", got)
	}
}
