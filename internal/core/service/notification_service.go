package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// NotificationService implements notification delivery and lifecycle.
type NotificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

func (s *NotificationService) Create(ctx context.Context, input ports.NotificationInput) (*domain.Notification, error) {
	severity := input.Severity
	if severity == "" {
		severity = domain.SeverityInfo
	}
	n := &domain.Notification{
		Message:   input.Message,
		Severity:  severity,
		Username:  input.Username,
		Read:      false,
		Timestamp: time.Now().UTC(),
	}
	return s.repo.Create(ctx, n)
}

func (s *NotificationService) ListMine(ctx context.Context, actor *domain.User, unreadOnly bool) ([]*domain.Notification, error) {
	return s.repo.ListForUser(ctx, actor.Username, unreadOnly)
}

// MarkRead marks a notification read. A targeted notification belonging to a
// different user looks like a missing one to non-admin actors.
func (s *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Username != "" && n.Username != actor.Username && !actor.HasAnyRole(domain.RoleAdmin) {
		return nil, domain.ErrNotificationNotFound
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
