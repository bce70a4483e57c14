package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // unique across all users
	PasswordHash string // argon2id encoded, never the plaintext
	CreatedAt    time.Time
}
