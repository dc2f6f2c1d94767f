package middleware

import "net/http"

// Chain wraps a handler with middlewares so that the first listed
// runs first. Authorization is composed per-route with this; order
// matters (Authenticate before a role check).
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
