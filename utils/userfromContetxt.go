package utils

import (
	"net/http"

	"cookbook/globals"
)

// GetUserIDFromRequest returns the caller identified by middleware.OptionalAuth,
// or "" for anonymous requests.
func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return requestingUserID
}
