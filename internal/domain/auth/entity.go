package auth

import "time"

// Account is the single administrator credential. The password is stored as
// a bcrypt hash; there is no plaintext comparison anywhere.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
