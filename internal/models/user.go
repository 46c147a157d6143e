package models

import "time"

// User represents a registered account. Usernames are unique across the
// system; the uniqueness is enforced by the database.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}
