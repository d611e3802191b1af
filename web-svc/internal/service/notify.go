package service

import (
	"context"
	"strings"

	"overcooked-simplified/web-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Notifications carries toasts across redirects for one browser session.
// Nothing is merged or suppressed: every pushed toast is shown once, in order.
type Notifications struct {
	store FlashStore
}

func NewNotifications(store FlashStore) *Notifications {
	return &Notifications{store: store}
}

func (n *Notifications) Push(ctx context.Context, session string, level domain.Level, message string) {
	if session == "" || strings.TrimSpace(message) == "" {
		return
	}
	if err := n.store.Push(ctx, session, domain.NewNotification(level, message)); err != nil {
		log.WithError(err).WithField("session", session).Warn("failed to store notification")
	}
}

func (n *Notifications) Error(ctx context.Context, session, message string) {
	n.Push(ctx, session, domain.LevelError, message)
}

func (n *Notifications) Success(ctx context.Context, session, message string) {
	n.Push(ctx, session, domain.LevelSuccess, message)
}

// Drain returns and forgets the pending toasts of a session.
func (n *Notifications) Drain(ctx context.Context, session string) []domain.Notification {
	if session == "" {
		return nil
	}
	list, err := n.store.Drain(ctx, session)
	if err != nil {
		log.WithError(err).WithField("session", session).Warn("failed to read notifications")
		return nil
	}
	return list
}
