package words

import (
	"strings"

	"github.com/samber/lo"
)

// Clean lowercases s, collapses internal whitespace runs to one space and
// trims the ends. It is the single equality rule for list entries and
// full-word guesses.
func Clean(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Normalize cleans every entry, drops blanks and removes duplicates keeping
// the first occurrence. Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw []string) []string {
	cleaned := lo.Map(raw, func(s string, _ int) string { return Clean(s) })
	cleaned = lo.Filter(cleaned, func(s string, _ int) bool { return s != "" })
	return lo.Uniq(cleaned)
}
