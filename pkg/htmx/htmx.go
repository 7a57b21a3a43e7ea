package htmx

import "net/http"

// IsRequest reports whether the request originated from htmx.
// True only when the HX-Request header carries the exact value "true";
// absence or any other value means standard navigation.
func IsRequest(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted reports whether the request came from an hx-boost element.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}
