package middlewares_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboardhq/taskboard/middlewares"
	"github.com/taskboardhq/taskboard/pkg/logger"
)

func TestAccessLog(t *testing.T) {
	t.Parallel()

	t.Run("records method path and status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middlewares.AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("body"))
		}))

		r := httptest.NewRequest(http.MethodPost, "/tasks", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "POST", entry["method"])
		assert.Equal(t, "/tasks", entry["path"])
		assert.Equal(t, float64(http.StatusCreated), entry["status"])
		assert.Equal(t, float64(4), entry["bytes"])
	})

	t.Run("does not alter the response", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.AccessLog(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "short and stout", w.Body.String())
	})

	t.Run("nil logger passes through", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.AccessLog(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middlewares.GetRequestID(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("preserves upstream id", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middlewares.GetRequestID(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "upstream-42")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "upstream-42", seen)
		assert.Equal(t, "upstream-42", w.Header().Get("X-Request-ID"))
	})

	t.Run("extractor adds request_id attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewContextHandler(
			slog.NewJSONHandler(&buf, nil),
			middlewares.RequestIDExtractor(),
		))

		handler := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.InfoContext(r.Context(), "hello")
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "rid-1")
		handler.ServeHTTP(httptest.NewRecorder(), r)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "rid-1", entry["request_id"])
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes error response", func(t *testing.T) {
		t.Parallel()

		onError := func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("something went wrong"))
		}

		handler := middlewares.Recover(logger.NewNope(), onError)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "something went wrong")
	})

	t.Run("panic is logged with stack", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middlewares.Recover(log, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "boom", entry["panic"])
		assert.NotEmpty(t, entry["stack"])
	})

	t.Run("no panic passes through", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.Recover(logger.NewNope(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
