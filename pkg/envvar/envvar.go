// Package envvar applies environment variable overrides onto configuration fields.
// Each helper is a no-op when the variable name is empty, the variable is unset,
// or its value cannot be parsed into the destination type.
package envvar

import (
	"os"
	"strconv"
	"strings"
)

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := os.Getenv(name)
	return v, v != ""
}

// String overwrites dst with the value of the named variable.
func String(dst *string, name string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

// Int overwrites dst with the integer value of the named variable.
func Int(dst *int, name string) {
	if v, ok := lookup(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Int64 overwrites dst with the 64-bit integer value of the named variable.
func Int64(dst *int64, name string) {
	if v, ok := lookup(name); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

// Bool overwrites dst with the boolean value of the named variable.
func Bool(dst *bool, name string) {
	if v, ok := lookup(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// List overwrites dst with the comma-separated values of the named variable.
// Blank entries are dropped.
func List(dst *[]string, name string) {
	v, ok := lookup(name)
	if !ok {
		return
	}

	parts := strings.Split(v, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	*dst = items
}
