package utils

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ParseIntParam reads a numeric path parameter.
func ParseIntParam(ps httprouter.Params, name string) (int, error) {
	raw := strings.TrimSpace(ps.ByName(name))
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Invalid("Invalid %s: %q", name, raw)
	}
	return id, nil
}

// Query returns the trimmed query-string value for key.
func Query(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
