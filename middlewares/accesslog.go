package middlewares

import (
	"log/slog"
	"net/http"
	"time"
)

// responseRecorder captures the status code and body size so the access
// log can report them after the response is finalized.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.written {
		return
	}
	w.written = true
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

func (w *responseRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AccessLog returns middleware that records method, path, status, body
// size and duration for every completed response. It is purely
// observational: it never alters the response, and a nil logger
// disables it entirely.
func AccessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if log == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.size),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
