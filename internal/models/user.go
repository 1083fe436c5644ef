package models

import "time"

type User struct {
	ID       string
	Email    string
	FullName string
	// PasswordDigest is empty for accounts created through Google login.
	PasswordDigest string
	CreatedAt      time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (u User) HasPassword() bool {
	return u.PasswordDigest != ""
}

type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
