package models

import "time"

// Exercise is a single timed log entry belonging to one user. Entries are
// immutable once created; ordering is applied at query time, not stored.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"-"`
}

// LogEntry is the projection of an Exercise returned by the logs endpoint.
// The internal id is deliberately not exposed.
type LogEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

// LogResult pairs the (possibly capped) entries with the total number of
// matches ignoring any limit, so callers can page through a known-size set.
type LogResult struct {
	Count   int
	Entries []LogEntry
}
