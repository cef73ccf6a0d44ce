package notification

import (
	"context"

	"gigbook/internal/domain"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetUserNotifications returns every notification of the user, newest first,
// together with the unread count.
func (s *Service) GetUserNotifications(ctx context.Context, userID int64) ([]domain.Notification, int64, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	var unread int64
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
	}
	return list, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
