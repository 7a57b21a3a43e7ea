// Package view is the template rendering core: a pongo2-backed
// renderer over the templates/ namespace, the context enricher that
// injects session identity and the enhancement-mode flag, and the
// markdown-to-sanitized-HTML helper for task notes.
package view
