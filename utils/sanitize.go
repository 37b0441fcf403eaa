package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// The forum stores plain text only, so the strict policy strips markup
// entirely rather than allowing a UGC subset.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips markup from user-submitted text. bluemonday
// entity-escapes the text it keeps, so the result is unescaped again:
// stored content is the literal text the user typed, minus any tags.
// Escaping for display is the renderer's job.
func Sanitize(input string) string {
	return html.UnescapeString(sanitizer.Sanitize(input))
}
