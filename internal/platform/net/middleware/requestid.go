package middleware

import (
	"net/http"
	"strings"

	pnet "stopwords/internal/platform/net"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from callers
const maxRequestIDLen = 128

// newID is a seam for tests
var newID = uuid.NewString

// RequestID propagates a caller supplied X-Request-ID or mints a UUID,
// stores it on the context and echoes it in the response header
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if id == "" || len(id) > maxRequestIDLen {
				id = newID()
			}
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
		})
	}
}
