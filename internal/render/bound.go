package render

import (
	"fmt"
	"unicode/utf8"
)

// CharacterLimit is the default maximum length of a tool response, in runes.
const CharacterLimit = 25000

// Bound truncates text to limit runes and appends a notice stating how many
// runes were dropped. Text at or under the limit is returned unchanged. A
// non-positive limit selects CharacterLimit.
func Bound(text string, limit int) string {
	if limit <= 0 {
		limit = CharacterLimit
	}
	total := utf8.RuneCountInString(text)
	if total <= limit {
		return text
	}

	cut, n := 0, 0
	for i := range text {
		if n == limit {
			cut = i
			break
		}
		n++
	}
	return text[:cut] + fmt.Sprintf("\n\n... (truncated, %d characters omitted)", total-limit)
}
