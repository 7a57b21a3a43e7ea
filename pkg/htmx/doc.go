// Package htmx implements content negotiation for progressively
// enhanced pages.
//
// An enhanced client announces itself with the HX-Request header;
// [IsRequest] is the single signal handlers use to choose between
// returning an HTML fragment and a full page or redirect. [Redirect]
// picks the right redirect mechanism for either kind of client.
//
// The negotiation is stateless: the decision derives purely from the
// request headers, never from server-side state.
package htmx
