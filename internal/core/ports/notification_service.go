package ports

import (
	"context"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// NotificationInput carries the fields of a new notification. An empty
// Username makes the notification global.
type NotificationInput struct {
	Message  string
	Severity domain.NotificationSeverity
	Username string
}

// NotificationService defines use-case operations for notifications.
type NotificationService interface {
	Create(ctx context.Context, input NotificationInput) (*domain.Notification, error)
	ListMine(ctx context.Context, actor *domain.User, unreadOnly bool) ([]*domain.Notification, error)
	// MarkRead marks a notification read. Non-admin actors may only mark
	// their own or global notifications.
	MarkRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error)
	Delete(ctx context.Context, id string) error
}
