package scoring

import "strings"

// Normalize prepares a cell or key value for exact comparison:
// surrounding whitespace is dropped. Comparison stays case-sensitive
// because plate answers are digits.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeUpper additionally case-folds, for option-letter answers
// where "a" and "A " both mean option A.
func NormalizeUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
