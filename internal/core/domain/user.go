package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAvatar is assigned when a registration omits the avatar URL.
const DefaultAvatar = "https://avatar.iran.liara.run/public/boy"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidID          = errors.New("invalid identifier format")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// User models a registered account. The password digest never leaves the server:
// it is excluded from JSON and from every response mapping.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate carries the mutable profile fields. Nil means "leave unchanged".
// The password digest is deliberately absent: there is no reset flow.
type UserUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
	Role   *string
}
