package testutil

import (
	"net/http"

	"phonebookd/pkg/requestcontext"
)

// WithActor marks the request as issued by an authenticated subject, the way
// the auth middleware does after validating a bearer token. An empty actor
// leaves the request anonymous.
func WithActor(req *http.Request, actor string) *http.Request {
	if actor == "" {
		return req
	}
	return req.WithContext(requestcontext.WithActorID(req.Context(), actor))
}

// AsActor wraps next so every request it serves carries actor.
func AsActor(actor string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, WithActor(r, actor))
	})
}
