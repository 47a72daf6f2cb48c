package models

import "time"

// User is an editor account. PasswordHash is a bcrypt digest and never
// leaves the server.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	IsAdmin      bool
	CreatedAt    time.Time
}
