package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"
)

// recoverStackSize caps the stack trace captured on panic.
const recoverStackSize = 4096

// Recover returns middleware that turns handler panics into logged 500
// responses. onError renders the error response (typically the
// templated error page); a nil onError falls back to http.Error.
func Recover(log *slog.Logger, onError http.HandlerFunc) func(http.Handler) http.Handler {
	if onError == nil {
		onError = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, recoverStackSize)
					n := runtime.Stack(stack, false)

					if log != nil {
						log.ErrorContext(r.Context(), "panic recovered",
							slog.Any("panic", rec),
							slog.String("stack", string(stack[:n])),
						)
					}

					onError(w, r)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
