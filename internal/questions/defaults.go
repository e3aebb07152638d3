package questions

import (
	_ "embed"
	"encoding/json"
	"slices"
)

//go:embed defaults.json
var defaultsJSON []byte

type bank struct {
	General    []Question            `json:"general"`
	Industries map[string][]Question `json:"industries"`
}

var defaults = mustBank(defaultsJSON)

func mustBank(data []byte) bank {
	var b bank
	if err := json.Unmarshal(data, &b); err != nil {
		panic("questions: invalid built-in question bank: " + err.Error())
	}
	return b
}

// DefaultGeneral returns a copy of the built-in general question set.
func DefaultGeneral() []Question {
	return clone(defaults.General)
}

// DefaultIndustry returns a copy of the built-in set for industry and
// whether one exists.
func DefaultIndustry(industry string) ([]Question, bool) {
	qs, ok := defaults.Industries[industry]
	return clone(qs), ok
}

func clone(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}
