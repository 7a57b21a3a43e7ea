package view

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/taskboardhq/taskboard/pkg/sanitizer"
)

var markdown = goldmark.New()

// RenderMarkdown converts user-authored markdown to sanitized HTML.
// The result is the only value templates mark |safe, so everything
// reaching that opt-out has passed through the sanitizer. Conversion
// failures degrade to empty output; notes are optional UI state, not
// worth failing a response over.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return ""
	}

	return sanitizer.SanitizeHTML(buf.String())
}
