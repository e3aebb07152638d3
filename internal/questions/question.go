// Package questions manages the questionnaire: the general question set every
// company answers and one industry-specific set per industry. Sets are kept
// as JSON documents in blob storage and fall back to a built-in question bank
// until an administrator edits them.
package questions

import (
	"slices"

	"github.com/JaimeStill/sustainassess/pkg/validation"
)

// Type controls how a question is presented and answered.
type Type string

const (
	TypeSelect     Type = "select"
	TypeRadio      Type = "radio"
	TypeCheckbox   Type = "checkbox"
	TypeText       Type = "text"
	TypeFile       Type = "file"
	TypeFileUpload Type = "file-upload"
)

var types = []Type{TypeSelect, TypeRadio, TypeCheckbox, TypeText, TypeFile, TypeFileUpload}

func init() {
	validation.Register("question_type", func(s string) bool {
		return slices.Contains(types, Type(s))
	}, "must be one of select, radio, checkbox, text, file, file-upload")
}

// Choice reports whether answers are picked from Options.
func (t Type) Choice() bool {
	return t == TypeSelect || t == TypeRadio || t == TypeCheckbox
}

// Kind selects the general set or an industry set.
type Kind string

const (
	KindGeneral  Kind = "general"
	KindIndustry Kind = "industry"
)

// prefix is the identifier prefix for questions added to a set of kind k.
func (k Kind) prefix() string {
	if k == KindGeneral {
		return "GQ"
	}
	return "IQ"
}

// Question is one item of a question set.
type Question struct {
	ID               string   `json:"id"`
	Type             Type     `json:"type" validate:"required,question_type"`
	Question         string   `json:"question" validate:"required,max=1000"`
	Options          []string `json:"options,omitempty"`
	Placeholder      string   `json:"placeholder,omitempty"`
	Accept           string   `json:"accept,omitempty"`
	Required         bool     `json:"required"`
	Category         string   `json:"category,omitempty"`
	RequiresDocument bool     `json:"requiresDocument,omitempty"`
	AllowMultiple    bool     `json:"allowMultiple,omitempty"`
}

// Validate checks the question fields. Choice questions need options.
func (q Question) Validate() error {
	if err := validation.Struct(q); err != nil {
		return err
	}
	if q.Type.Choice() && len(q.Options) == 0 {
		return &validation.Error{Fields: map[string]string{
			"options": "required for " + string(q.Type) + " questions",
		}}
	}
	return nil
}

// Set is the questionnaire a company in one industry answers.
type Set struct {
	Industry string     `json:"industry"`
	General  []Question `json:"general"`
	Specific []Question `json:"industry_specific"`
}

// AddCommand appends a question to a set. RequiresDocument turns the
// question into a file upload.
type AddCommand struct {
	Kind             Kind     `json:"type"`
	Industry         string   `json:"industry"`
	Question         Question `json:"question"`
	RequiresDocument bool     `json:"requiresDocument"`
}
