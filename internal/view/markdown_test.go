package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboardhq/taskboard/internal/view"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("formats markdown", func(t *testing.T) {
		t.Parallel()

		out := view.RenderMarkdown("some **bold** text")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, view.RenderMarkdown(""))
	})

	t.Run("raw html is sanitized", func(t *testing.T) {
		t.Parallel()

		out := view.RenderMarkdown(`note <script>alert(1)</script>`)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		t.Parallel()

		out := view.RenderMarkdown("[site](https://example.com)")
		assert.Contains(t, out, `href="https://example.com"`)
		assert.Contains(t, out, "nofollow")
	})
}
