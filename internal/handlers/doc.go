// Package handlers contains the HTTP route handlers. Handlers delegate
// persistence to the task store, ask the negotiator for the response
// shape, and hand template names plus raw context to the rendering
// pipeline.
package handlers
