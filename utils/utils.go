package utils

import (
	"net/http"
	"regexp"
	"strconv"

	"velour/globals"
)

// --- Email Validation ---

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail checks email syntax only; deliverability is out of scope.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// --- Request Helpers ---

func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

// ParseLimit reads ?limit= with a default and hard cap.
func ParseLimit(r *http.Request, def, max int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
