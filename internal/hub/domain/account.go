package domain

import "time"

// DefaultTokenBalance is the balance every new account starts with.
const DefaultTokenBalance = 100

type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded, never serialized
	TokenBalance int64
	LastClaimed  *time.Time // nil until the first daily claim
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
