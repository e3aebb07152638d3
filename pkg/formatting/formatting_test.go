package formatting_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/sustainassess/pkg/formatting"
)

type payload struct {
	Items    []string `json:"items"`
	Priority string   `json:"priority"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"items":["a"],"priority":"High"}`,
			want:    "High",
		},
		{
			name:    "object inside prose",
			content: "Here is my analysis:\n{\"items\":[\"a\"],\"priority\":\"Low\"}\nHope this helps.",
			want:    "Low",
		},
		{
			name:    "fenced block",
			content: "```json\n{\"items\":[],\"priority\":\"Critical\"}\n```",
			want:    "Critical",
		},
		{
			name:    "no json",
			content: "1. Reduce waste across all production lines",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.Parse[payload](tt.content)
			if tt.wantErr {
				if !errors.Is(err, formatting.ErrParseFailed) {
					t.Fatalf("err = %v, want ErrParseFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got.Priority != tt.want {
				t.Errorf("priority = %s, want %s", got.Priority, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"10MB", 10 * 1024 * 1024, false},
		{"512", 512, false},
		{"1.5 kb", 1536, false},
		{"", 0, true},
		{"10XB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	if got := formatting.FormatBytes(0, 1); got != "0 B" {
		t.Errorf("got %s, want 0 B", got)
	}
	if got := formatting.FormatBytes(1536, 1); got != "1.5 KB" {
		t.Errorf("got %s, want 1.5 KB", got)
	}
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"waste_management":      "Waste Management",
		"sustainability_policy": "Sustainability Policy",
		"GQ1":                   "GQ1",
		"":                      "",
	}

	for in, want := range tests {
		if got := formatting.Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}
