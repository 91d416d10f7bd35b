package user

import (
	"fmt"
	"net/mail"
	"time"
)

// Role controls what a registered account may do outside of match play.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// User is a registered player account.
type User struct {
	ID          string
	DisplayName string
	Email       string
	Role        Role
	CreatedAt   time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.DisplayName == "" {
		return fmt.Errorf("user display name is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("invalid user email %q", u.Email)
	}
	switch u.Role {
	case RolePlayer, RoleAdmin:
	default:
		return fmt.Errorf("invalid user role: %s", u.Role)
	}

	return nil
}
