package view

import "maps"

// Reserved context keys, injected exclusively by Enrich. Caller-supplied
// values under these keys are overwritten.
const (
	KeySessionID = "sessionId"
	KeyIsHtmx    = "isHtmx"
)

// AnonymousSession is the sessionId value rendered when no session
// identity could be established. A fallback, not an error.
const AnonymousSession = "anonymous"

// Context is the mapping a handler supplies to template evaluation.
type Context map[string]any

// Enrich returns a copy of ctx with session identity and the
// enhancement-mode flag injected. Enrichment always wins: any caller
// values under the reserved keys are silently replaced, so the function
// is idempotent and templates can rely on both keys being present and
// trustworthy.
func Enrich(ctx Context, sessionID string, enhanced bool) Context {
	out := make(Context, len(ctx)+2)
	maps.Copy(out, ctx)

	if sessionID == "" {
		sessionID = AnonymousSession
	}
	out[KeySessionID] = sessionID
	out[KeyIsHtmx] = enhanced

	return out
}
