package models

import (
	"strconv"
	"time"
)

type AuditLog struct {
	ID         int64     `json:"id"`
	User       Ref       `json:"user"`
	Action     string    `json:"action"`
	ObjectType string    `json:"object_type"`
	ObjectID   Ref       `json:"object_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a AuditLog) RowKey() string { return strconv.FormatInt(a.ID, 10) }

// Actor is the user shown for the entry; entries without one were written by
// the system.
func (a AuditLog) Actor() string {
	if a.User == "" {
		return "System"
	}
	return a.User.String()
}

// SystemAction reports whether the entry was not caused by a user.
func (a AuditLog) SystemAction() bool {
	return a.User == "" || a.User == "System"
}
