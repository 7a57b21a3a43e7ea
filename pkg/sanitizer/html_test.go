package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/taskboardhq/taskboard/pkg/sanitizer"
)

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps formatting tags",
			input: "<p>buy <strong>milk</strong></p>",
			want:  "<p>buy <strong>milk</strong></p>",
		},
		{
			name:  "strips script",
			input: `<p>hi</p><script>alert(1)</script>`,
			want:  "<p>hi</p>",
		},
		{
			name:  "strips event handlers",
			input: `<p onclick="steal()">hi</p>`,
			want:  "<p>hi</p>",
		},
		{
			name:  "strips javascript urls",
			input: `<a href="javascript:alert(1)">x</a>`,
			want:  "x",
		},
		{
			name:  "keeps lists and code",
			input: "<ul><li><code>go test</code></li></ul>",
			want:  "<ul><li><code>go test</code></li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.SanitizeHTML(tt.input))
		})
	}
}

func TestSanitizeHTMLCustom(t *testing.T) {
	t.Parallel()

	t.Run("nil policy passes through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<script>x</script>", sanitizer.SanitizeHTMLCustom("<script>x</script>", nil))
	})

	t.Run("strict policy strips everything", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.SanitizeHTMLCustom("<p>hi</p>", bluemonday.StrictPolicy())
		assert.Equal(t, "hi", got)
	})
}
