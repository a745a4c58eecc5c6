// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/domain/entity"
)

// AlertRegistry holds the session's transient alerts. Alerts expire on their
// own after their duration; Dismiss cancels one early and never fails when
// the alert is already gone.
type AlertRegistry interface {
	// Show stores an alert until its duration elapses.
	Show(ctx context.Context, alert *entity.Alert) error

	// Dismiss removes an alert before expiry. Idempotent.
	Dismiss(ctx context.Context, id uuid.UUID) error

	// Active lists the alerts that have not yet expired, oldest first.
	Active(ctx context.Context) ([]*entity.Alert, error)
}
