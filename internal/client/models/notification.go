package models

import (
	"strconv"
	"time"
)

const (
	NotificationInfo    = "INFO"
	NotificationWarning = "WARNING"
	NotificationAlert   = "ALERT"
)

type Notification struct {
	ID        int64     `json:"id"`
	User      Ref       `json:"user"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (n Notification) RowKey() string { return strconv.FormatInt(n.ID, 10) }
