package service

import (
	"context"
	"time"

	"overcooked-simplified/web-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

// publish never fails the user action; a nil publisher disables events.
func publish(ctx context.Context, publisher EventPublisher, event domain.UIEvent) {
	if publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event", event.Type).Warn("failed to publish ui event")
	}
}
