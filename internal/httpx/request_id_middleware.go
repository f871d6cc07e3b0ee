package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const headerXRequestID = "X-Request-Id"

// RequestIDMiddleware tags every request with an id, minting one when the
// client did not send its own.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerXRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(headerXRequestID, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}
