package domain

import (
	"strconv"
	"strings"
	"time"
)

type Level string

const (
	LevelError   Level = "error"
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
)

// NotificationTTL is how long a toast stays on screen.
const NotificationTTL = 3 * time.Second

type Notification struct {
	Level   Level         `json:"level"`
	Message string        `json:"message"`
	TTL     time.Duration `json:"ttl"`
}

func NewNotification(level Level, message string) Notification {
	switch level {
	case LevelError, LevelSuccess:
	default:
		level = LevelInfo
	}
	return Notification{Level: level, Message: message, TTL: NotificationTTL}
}

// ParseID reads an identifier carried as text. Only positive integers are valid.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
