package domain

import "time"

type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Claims identify the caller of an authenticated request.
type Claims struct {
	UserID uint64
	Email  string
}

type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}
