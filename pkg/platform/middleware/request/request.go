// Package request stamps every request with an ID and a single "now" so
// logs, audit events and domain timestamps agree.
package request

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"phonebookd/pkg/requestcontext"
)

// HeaderRequestID carries a caller-supplied request ID and is echoed back.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLength = 128

// Middleware assigns the request ID (reusing a sane inbound one) and the
// request time.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
