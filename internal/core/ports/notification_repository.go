package ports

import (
	"context"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// NotificationRepository defines persistence for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	// ListForUser returns notifications targeted at username plus global ones,
	// newest first.
	ListForUser(ctx context.Context, username string, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	Delete(ctx context.Context, id string) error
}
