// Package scoring evaluates questionnaire answers: per-answer points, the
// overall compliance score with strengths and weak areas, and response analytics.
package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the Answer variants.
type Kind int

const (
	KindText Kind = iota
	KindMultiSelect
)

// None is the multi-select option that means no positive choice.
const None = "None"

// Answer is either free text or a set of selected options.
type Answer struct {
	kind    Kind
	text    string
	options []string
}

// Text creates a free-text answer.
func Text(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// MultiSelect creates a multi-select answer.
func MultiSelect(options ...string) Answer {
	return Answer{kind: KindMultiSelect, options: append([]string(nil), options...)}
}

func (a Answer) Kind() Kind { return a.kind }

// Value returns the free text; empty for multi-select answers.
func (a Answer) Value() string { return a.text }

// Options returns the selected options; nil for text answers.
func (a Answer) Options() []string { return a.options }

// Contains reports whether the text, or any selected option, contains substr.
func (a Answer) Contains(substr string) bool {
	if a.kind == KindText {
		return strings.Contains(a.text, substr)
	}
	for _, o := range a.options {
		if strings.Contains(o, substr) {
			return true
		}
	}
	return false
}

// String renders the answer for display. Options are joined by ", ".
func (a Answer) String() string {
	if a.kind == KindMultiSelect {
		return strings.Join(a.options, ", ")
	}
	return a.text
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.kind == KindMultiSelect {
		opts := a.options
		if opts == nil {
			opts = []string{}
		}
		return json.Marshal(opts)
	}
	return json.Marshal(a.text)
}

// UnmarshalJSON accepts a string as Text and an array of strings as MultiSelect.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var opts []string
		if err := json.Unmarshal(data, &opts); err != nil {
			return fmt.Errorf("multi-select answer: %w", err)
		}
		*a = MultiSelect(opts...)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("text answer: %w", err)
	}
	*a = Text(s)
	return nil
}

// Entry pairs a question key with its answer.
type Entry struct {
	Key    string
	Answer Answer
}

// Answers is an ordered set of question answers. It encodes as a JSON object
// whose keys keep insertion order.
type Answers []Entry

// Get returns the answer for key.
func (a Answers) Get(key string) (Answer, bool) {
	for _, e := range a {
		if e.Key == key {
			return e.Answer, true
		}
	}
	return Answer{}, false
}

// Set replaces the answer for key, or appends it when key is new.
func (a *Answers) Set(key string, ans Answer) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Answer = ans
			return
		}
	}
	*a = append(*a, Entry{Key: key, Answer: ans})
}

func (a Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := e.Answer.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *Answers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("answers: expected object, got %v", tok)
	}

	out := Answers{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("answers: expected key, got %v", tok)
		}

		var ans Answer
		if err := dec.Decode(&ans); err != nil {
			return fmt.Errorf("answers %s: %w", key, err)
		}
		out.Set(key, ans)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = out
	return nil
}
