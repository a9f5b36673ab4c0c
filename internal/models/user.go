package models

import (
	"time"
)

// User is an account in the token auth variant. The password is stored only as
// a bcrypt hash and never serialized.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterInput is the inbound payload for POST /api/auth/register.
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginInput is the inbound payload for POST /api/auth/login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UploadResult is the response for a stored image upload.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
