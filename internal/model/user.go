package model

import "time"

// User represents a customer record. Users are auto-provisioned as
// guests on first cart or checkout interaction; the ID doubles as the
// session identifier carried in the session cookie.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
