package binder

import (
	"net/http"
	"strings"
)

const dataStarRequestHeader = "Datastar-Request"

func isDataStar(r *http.Request) bool {
	return r.Header.Get(dataStarRequestHeader) == "true"
}

// mediaType returns the lowercased media type without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
