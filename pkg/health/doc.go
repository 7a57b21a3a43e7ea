// Package health provides liveness and readiness HTTP handlers.
// Liveness always reports OK; readiness runs named dependency probes
// in parallel under a shared timeout.
package health
