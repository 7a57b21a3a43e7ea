package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboardhq/taskboard/pkg/htmx"
)

func TestIsRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		value  string
		want   bool
	}{
		{name: "no header", want: false},
		{name: "exact true", header: "HX-Request", value: "true", want: true},
		{name: "lowercase header name", header: "hx-request", value: "true", want: true},
		{name: "capitalized value", header: "HX-Request", value: "True", want: false},
		{name: "other value", header: "HX-Request", value: "1", want: false},
		{name: "empty value", header: "HX-Request", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(tt.header, tt.value)
			}
			assert.Equal(t, tt.want, htmx.IsRequest(r))
		})
	}
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("standard navigation gets 303", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/tasks", nil)
		w := httptest.NewRecorder()

		htmx.Redirect(w, r, "/tasks")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/tasks", w.Header().Get("Location"))
	})

	t.Run("htmx request gets HX-Redirect with 200", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/tasks", nil)
		r.Header.Set(htmx.HeaderHXRequest, "true")
		w := httptest.NewRecorder()

		htmx.Redirect(w, r, "/tasks")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/tasks", w.Header().Get(htmx.HeaderHXRedirect))
		assert.Empty(t, w.Header().Get("Location"))
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	htmx.Refresh(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(htmx.HeaderHXRefresh))
}
