package models

import (
	"strconv"
	"time"
)

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

var Roles = []string{RoleAdmin, RoleManager, RoleStaff}

type User struct {
	ID          int64     `json:"id,omitempty"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined,omitzero"`
}

func (u User) RowKey() string { return strconv.FormatInt(u.ID, 10) }

// Me is the /api/users/me/ payload.
type Me struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
