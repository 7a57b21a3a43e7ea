// Package session issues and rehydrates anonymous session identities.
//
// An identity is an opaque random token carried in an HMAC-signed,
// HttpOnly, SameSite=Strict cookie with no explicit expiry, so it lives
// exactly as long as the browser session. Nothing is persisted server
// side and the token carries no meaning beyond correlating requests
// from the same client.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/taskboardhq/taskboard/pkg/cookie"
)

// DefaultCookieName is used when no name is configured.
const DefaultCookieName = "taskboard_session"

// tokenBytes is the entropy of a freshly minted identity token.
const tokenBytes = 32

// Identity is an anonymous session identity.
type Identity struct {
	// ID is the opaque token. It never changes for the lifetime of the
	// browser session.
	ID string
	// New reports whether the identity was minted for this request.
	New bool
}

// Provider pairs requests with session identities.
// It is stateless per call and safe for concurrent use.
type Provider struct {
	cookies    *cookie.Manager
	cookieName string
}

// NewProvider creates a Provider writing identities through the given
// cookie manager. The manager must be configured with a secret; the
// signed-cookie transport is what makes tampering detectable.
func NewProvider(cookies *cookie.Manager, cookieName string) *Provider {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Provider{cookies: cookies, cookieName: cookieName}
}

// GetOrCreate returns the identity carried by the request cookie, or
// mints a fresh one and sets its cookie on the response. Any anomaly on
// the way in (missing cookie, bad signature, malformed value) falls
// back to minting; identity resolution never fails a request.
func (p *Provider) GetOrCreate(w http.ResponseWriter, r *http.Request) Identity {
	if token, err := p.cookies.GetSigned(r, p.cookieName); err == nil && token != "" {
		return Identity{ID: token}
	}

	token := newToken()
	// maxAge 0: no expiry attribute, the cookie dies with the browser
	// session. If even writing the cookie fails, the request is still
	// served with a single-request identity.
	if err := p.cookies.SetSigned(w, p.cookieName, token, 0); err != nil {
		return Identity{}
	}

	return Identity{ID: token, New: true}
}

// newToken returns a cryptographically random opaque token.
func newToken() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; an empty
		// token degrades to the anonymous fallback downstream.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
