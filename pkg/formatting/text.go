package formatting

import (
	"strings"
	"unicode"
)

// Humanize turns a snake_case key into Title Case words: "waste_management"
// becomes "Waste Management".
func Humanize(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
