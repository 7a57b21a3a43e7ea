// Package sanitizer strips dangerous markup from HTML destined for
// templates that opt out of auto-escaping.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	notesPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// Formatting markdown produces for task notes; scripts, event
		// handlers and javascript: URLs are stripped.
		notesPolicy = bluemonday.NewPolicy()
		notesPolicy.AllowStandardURLs()
		notesPolicy.AllowElements(
			"p", "br",
			"h1", "h2", "h3", "h4",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		notesPolicy.AllowAttrs("href").OnElements("a")
		notesPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps the safe formatting subset used for task notes and
// removes everything else.
func SanitizeHTML(s string) string {
	initPolicy()
	return notesPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a caller-supplied bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
