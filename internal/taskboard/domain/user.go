package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt encoded, never serialized to clients
	CreatedAt    time.Time
}
