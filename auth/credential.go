package auth

import (
	"net/http"
	"strings"
)

// HeaderAuthToken is the legacy header some clients still send the token in.
const HeaderAuthToken = "x-auth-token"

// CredentialFromRequest extracts the token from, in order, the Authorization
// header ("Bearer <token>"), the x-auth-token header and, when allowQuery is
// set, the "token" query parameter. Browsers cannot set headers on a
// WebSocket handshake, hence the query fallback.
func CredentialFromRequest(r *http.Request, allowQuery bool) string {
	if header := r.Header.Get("Authorization"); header != "" {
		// Expecting the standard "Bearer <token>" format
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if token := r.Header.Get(HeaderAuthToken); token != "" {
		return strings.TrimSpace(token)
	}
	if allowQuery {
		return r.URL.Query().Get("token")
	}
	return ""
}
