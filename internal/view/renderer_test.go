package view_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboardhq/taskboard/internal/view"
)

// writeTemplates lays out a template namespace in a temp dir.
func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	dir := writeTemplates(t, map[string]string{
		"hello.html":        "Hello {{ name }}!",
		"tasks/_list.html":  "<ul>{% for t in tasks %}<li>{{ t }}</li>{% endfor %}</ul>",
		"_layout/base.html": "<html>{% block content %}{% endblock %}</html>",
		"page.html":         `{% extends "_layout/base.html" %}{% block content %}<p>{{ body }}</p>{% endblock %}`,
	})

	r, err := view.NewRenderer(dir)
	require.NoError(t, err)

	t.Run("renders with context", func(t *testing.T) {
		out, err := r.Render("hello", view.Context{"name": "world"})
		require.NoError(t, err)
		assert.Equal(t, "Hello world!", out)
	})

	t.Run("extension may be explicit", func(t *testing.T) {
		out, err := r.Render("hello.html", view.Context{"name": "world"})
		require.NoError(t, err)
		assert.Equal(t, "Hello world!", out)
	})

	t.Run("missing variable renders empty", func(t *testing.T) {
		out, err := r.Render("hello", view.Context{})
		require.NoError(t, err)
		assert.Equal(t, "Hello !", out)
	})

	t.Run("values are auto-escaped", func(t *testing.T) {
		out, err := r.Render("hello", view.Context{"name": "<script>x</script>"})
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
	})

	t.Run("partial renders without layout", func(t *testing.T) {
		out, err := r.Render("tasks/_list", view.Context{"tasks": []string{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", out)
	})

	t.Run("page composes layout", func(t *testing.T) {
		out, err := r.Render("page", view.Context{"body": "content"})
		require.NoError(t, err)
		assert.Equal(t, "<html><p>content</p></html>", out)
	})

	t.Run("missing template is fatal", func(t *testing.T) {
		_, err := r.Render("nope/missing", view.Context{})
		require.Error(t, err)
		assert.ErrorIs(t, err, view.ErrTemplateNotFound)
	})
}

func TestRendererCachePolicy(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, dir, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "x.html"), []byte(content), 0o644))
	}

	t.Run("no cache re-reads source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		write(t, dir, "one")

		r, err := view.NewRenderer(dir)
		require.NoError(t, err)

		out, err := r.Render("x", nil)
		require.NoError(t, err)
		assert.Equal(t, "one", out)

		write(t, dir, "two")

		out, err = r.Render("x", nil)
		require.NoError(t, err)
		assert.Equal(t, "two", out)
	})

	t.Run("cache reuses compiled template", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		write(t, dir, "one")

		r, err := view.NewRenderer(dir, view.WithCache())
		require.NoError(t, err)

		out, err := r.Render("x", nil)
		require.NoError(t, err)
		assert.Equal(t, "one", out)

		write(t, dir, "two")

		out, err = r.Render("x", nil)
		require.NoError(t, err)
		assert.Equal(t, "one", out)
	})
}

func TestRendererGlobals(t *testing.T) {
	t.Parallel()

	dir := writeTemplates(t, map[string]string{
		"g.html": "{{ appName }}",
	})

	r, err := view.NewRenderer(dir, view.WithGlobals(map[string]any{"appName": "taskboard"}))
	require.NoError(t, err)

	out, err := r.Render("g", nil)
	require.NoError(t, err)
	assert.Equal(t, "taskboard", out)
}

func TestIsPartial(t *testing.T) {
	t.Parallel()

	assert.True(t, view.IsPartial("tasks/_list"))
	assert.True(t, view.IsPartial("_nav"))
	assert.False(t, view.IsPartial("tasks/index"))
	assert.False(t, view.IsPartial("_layout/base"))
}
