package envvar_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/sustainassess/pkg/envvar"
)

func TestString(t *testing.T) {
	t.Setenv("ENVVAR_TEST_STRING", "value")

	s := "default"
	envvar.String(&s, "ENVVAR_TEST_STRING")
	if s != "value" {
		t.Errorf("got %q, want value", s)
	}

	unset := "default"
	envvar.String(&unset, "ENVVAR_TEST_UNSET")
	if unset != "default" {
		t.Errorf("unset variable changed value to %q", unset)
	}

	empty := "default"
	envvar.String(&empty, "")
	if empty != "default" {
		t.Errorf("empty name changed value to %q", empty)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"invalid keeps default", "abc", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVVAR_TEST_INT", tt.value)
			n := 7
			envvar.Int(&n, "ENVVAR_TEST_INT")
			if n != tt.want {
				t.Errorf("got %d, want %d", n, tt.want)
			}
		})
	}
}

func TestInt64(t *testing.T) {
	t.Setenv("ENVVAR_TEST_INT64", "10485760")

	var n int64
	envvar.Int64(&n, "ENVVAR_TEST_INT64")
	if n != 10485760 {
		t.Errorf("got %d, want 10485760", n)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("ENVVAR_TEST_BOOL", "true")

	b := false
	envvar.Bool(&b, "ENVVAR_TEST_BOOL")
	if !b {
		t.Error("expected true")
	}

	t.Setenv("ENVVAR_TEST_BOOL", "nope")
	envvar.Bool(&b, "ENVVAR_TEST_BOOL")
	if !b {
		t.Error("invalid value should keep prior value")
	}
}

func TestList(t *testing.T) {
	t.Setenv("ENVVAR_TEST_LIST", " a, b ,,c ")

	var items []string
	envvar.List(&items, "ENVVAR_TEST_LIST")

	want := []string{"a", "b", "c"}
	if !slices.Equal(items, want) {
		t.Errorf("got %v, want %v", items, want)
	}
}
