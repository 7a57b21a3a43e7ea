// Package middlewares provides the HTTP middleware stack: request ID
// assignment, access logging, and panic recovery. All middlewares are
// standard func(http.Handler) http.Handler wrappers compatible with
// chi's Use().
package middlewares
