package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBound(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{
			name:  "short text unchanged",
			text:  "hello",
			limit: 10,
			want:  "hello",
		},
		{
			name:  "exactly at limit",
			text:  "hello",
			limit: 5,
			want:  "hello",
		},
		{
			name:  "one over",
			text:  "hello!",
			limit: 5,
			want:  "hello\n\n... (truncated, 1 characters omitted)",
		},
		{
			name:  "counts runes not bytes",
			text:  "📁📁📁📋",
			limit: 3,
			want:  "📁📁📁\n\n... (truncated, 1 characters omitted)",
		},
		{
			name:  "empty",
			text:  "",
			limit: 1,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bound(tt.text, tt.limit))
		})
	}
}

func TestBound_DefaultLimit(t *testing.T) {
	long := strings.Repeat("a", CharacterLimit+250)

	got := Bound(long, 0)

	assert.True(t, strings.HasPrefix(got, strings.Repeat("a", CharacterLimit)+"\n\n..."))
	assert.True(t, strings.HasSuffix(got, "(truncated, 250 characters omitted)"))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), CharacterLimit+len("\n\n... (truncated, 250 characters omitted)"))
}

func TestBound_IdempotentOnShortText(t *testing.T) {
	text := Spaces(spacesDoc)
	once := Bound(text, CharacterLimit)
	assert.Equal(t, text, once)
	assert.Equal(t, once, Bound(once, CharacterLimit))
}
