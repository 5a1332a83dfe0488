package adapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Classify maps an HTTP status to an [ErrorKind]. Status 0 means no response
// was received. Classify has no side effects.
func Classify(status int) ErrorKind {
	switch status {
	case 0:
		return KindNetwork
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusInternalServerError:
		return KindServer
	default:
		return KindOther
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// errorMessage returns the "message" field of a JSON error body, or "".
func errorMessage(body []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	msg, ok := payload.Message.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(msg)
}
