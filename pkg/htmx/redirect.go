package htmx

import "net/http"

// Redirect sends the client to url in the way appropriate for the
// request. Standard navigation gets a 303 See Other, so a reload after
// a POST never re-submits the mutation (POST-redirect-GET). htmx
// requests get HX-Redirect with a 200, because htmx follows redirects
// from the header rather than the status line.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusSeeOther)
}

// RedirectWithStatus is Redirect with a caller-chosen status code for
// the non-enhanced branch.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, url string, status int) {
	if IsRequest(r) {
		w.Header().Set(HeaderHXRedirect, url)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, url, status)
}

// Refresh instructs an htmx client to do a full page reload.
func Refresh(w http.ResponseWriter) {
	w.Header().Set(HeaderHXRefresh, "true")
	w.WriteHeader(http.StatusOK)
}
