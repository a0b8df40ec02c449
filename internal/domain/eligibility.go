package domain

import "unicode/utf8"

const (
	minTitleLength       = 3
	minDescriptionLength = 5
)

// Eligible reports whether debounced form values should trigger an analysis.
// Either field can satisfy the length gate on its own, and both bounds are
// strict: a 4-character title passes, a 5-character description does not.
// Lengths count runes, not bytes.
func Eligible(title, description string) bool {
	if title == "" && description == "" {
		return false
	}

	return utf8.RuneCountInString(title) > minTitleLength ||
		utf8.RuneCountInString(description) > minDescriptionLength
}
