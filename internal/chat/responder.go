// Package chat answers free-text questions from a fixed keyword table. It is
// a lookup, not a model: the first entry whose keyword appears as a whole
// word in the input wins.
package chat

import (
	"strings"
	"unicode"
)

type entry struct {
	keyword  string
	response string
}

// Scanned in order; earlier entries take precedence when several keywords
// appear in the same question.
var responses = []entry{
	{"warfarin", "Warfarin interacts with medications; increases bleeding risk."},
	{"aki", "AKI risk is increased by ACEi/ARB, diuretics, and contrast."},
	{"insulin", "Insulin raises hypoglycemia risk, especially with impaired renal function."},
	{"bleeding", "Bleeding risk rises with anticoagulants, antiplatelets, and elevated INR."},
	{"interaction", "Use the medication checker to screen a specific drug pair."},
}

const fallback = "Provide more clinical context."

// Respond returns the canned answer for the first keyword found as a whole
// word in text, or the generic fallback. Matching is case-insensitive; a
// keyword buried inside a longer word does not count.
func Respond(text string) string {
	tokens := tokenize(text)
	for _, e := range responses {
		if tokens[e.keyword] {
			return e.response
		}
	}
	return fallback
}

func tokenize(text string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		out[tok] = true
	}
	return out
}
