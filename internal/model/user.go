package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleAnalyst       Role = "ANALYST"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdministrator, RoleAnalyst:
		return r, nil
	default:
		return "", NewInvalidDataError("role", "must be ADMINISTRATOR or ANALYST")
	}
}

type User struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Username     string `json:"username" db:"username"`
	FullName     string `json:"fullName" db:"full_name"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         Role   `json:"role" db:"role"`
	Active       bool   `json:"active" db:"active"`
}

type LoginRecord struct {
	ID         ID        `json:"id" db:"id"`
	UserID     ID        `json:"userId" db:"user_id"`
	Username   string    `json:"username" db:"username"`
	IP         string    `json:"ip" db:"ip"`
	LoggedInAt time.Time `json:"loggedInAt" db:"logged_in_at"`
}
