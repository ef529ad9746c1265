package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/teemow/clickup-mcp/internal/document"
)

const (
	missingID       = "N/A"
	maxConfigShown  = 5
	maxFieldsShown  = 5
	maxAssignees    = 3
	valuePreviewLen = 50
	descPreviewLen  = 100
)

// writer accumulates markdown. Formatting into a strings.Builder cannot fail.
type writer struct {
	strings.Builder
}

func (w *writer) line(format string, args ...any) {
	fmt.Fprintf(&w.Builder, format, args...)
	w.WriteByte('\n')
}

func (w *writer) blank() {
	w.WriteByte('\n')
}

// id renders the "id" field of v as a code token.
func id(v document.Value) string {
	return code(v.Get("id").Str(missingID))
}

func code(s string) string {
	return "`" + s + "`"
}

func text(v document.Value, key, placeholder string) string {
	return v.Get(key).Str(placeholder)
}

func flag(v document.Value, key string) string {
	return strconv.FormatBool(v.Get(key).Bool(false))
}

func count(v document.Value, key string) string {
	return strconv.FormatInt(v.Get(key).Int(0), 10)
}

// inline renders any value on one line: strings verbatim, everything else
// as compact JSON.
func inline(v document.Value) string {
	if v.Kind() == document.String {
		return v.Str("")
	}
	return v.JSON()
}

// summarize renders a custom field value for a task listing.
func summarize(v document.Value) string {
	switch v.Kind() {
	case document.Missing, document.Null:
		return "Empty"
	case document.Array:
		return fmt.Sprintf("[%d items]", v.Len())
	case document.Object:
		return truncateRunes(v.JSON(), valuePreviewLen)
	default:
		return v.Str("")
	}
}

// preview flattens a description to a single line of at most
// descPreviewLen runes followed by an ellipsis.
func preview(s string) string {
	return strings.ReplaceAll(truncateRunes(s, descPreviewLen), "\n", " ") + "..."
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest. A Caser is stateful, so one is built per call.
// Underscores separate words, so "doc_view" becomes "Doc_View".
func titleCase(s string) string {
	caser := cases.Title(language.Und)
	words := strings.Split(s, "_")
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, "_")
}
