// Package sanitize normalizes rich-text fields before they are persisted.
// Tool descriptions are authored in a constrained HTML editor on the UI side;
// everything outside the allow-list below is stripped server-side.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var richTextPolicy = buildRichTextPolicy()

func buildRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "strong", "em",
		"ul", "ol", "li", "br",
		"a", "code", "pre", "blockquote",
		"h1", "h2", "h3", "h4",
	)
	p.AllowAttrs("href", "title").OnElements("a")
	// Anchors keep exactly href and title; AllowStandardURLs would inject
	// rel="nofollow" on top of them, so allow the schemes directly.
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	return p
}

// RichText strips all HTML outside the allowed tag set and drops every
// attribute except href/title on anchors. The operation is idempotent:
// sanitizing already-sanitized text is a no-op.
func RichText(value string) string {
	if value == "" {
		return ""
	}
	return richTextPolicy.Sanitize(value)
}
