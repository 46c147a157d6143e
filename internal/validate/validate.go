package validate

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for client input problems. Handlers map these to 400
// responses; anything else surfaces as a server error.
var (
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidID     = errors.New("invalid identifier")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidNumber = errors.New("invalid number")
)

// dateLayouts are tried in order when parsing client-supplied dates.
// ISO-8601 forms first, then the human-readable forms the service itself
// emits or that callers commonly paste in.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Mon Jan 02 2006",
	"January 2, 2006",
	"01/02/2006",
}

// UserID checks that s is a syntactically well-formed record identifier.
// Identifiers are UUIDs assigned by the persistence layer.
func UserID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return ErrInvalidID
	}
	return nil
}

// RequiredString trims s and fails if nothing remains.
func RequiredString(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrMissingField
	}
	return trimmed, nil
}

// Date parses a client-supplied date string. An empty value resolves to
// fallback (the current instant at the call site); a present but
// unparseable value is an error.
func Date(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// LenientInt parses the leading integer prefix of s, so "30abc" yields 30.
// This mirrors the permissive number handling of the service this one
// replaces; callers that can afford strict parsing should use strconv
// directly. A value with no leading digits is an error.
func LenientInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == end {
		return 0, ErrInvalidNumber
	}
	n, err := strconv.Atoi(s[:digits])
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}
