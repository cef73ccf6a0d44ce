package notification

import (
	"context"
	"testing"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) MarkRead(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_GetUserNotifications_CountsUnread(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("ListByUser", mock.Anything, int64(3)).Return([]domain.Notification{
		{ID: 3, IsRead: false},
		{ID: 2, IsRead: true},
		{ID: 1, IsRead: false},
	}, nil)

	list, unread, err := svc.GetUserNotifications(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, int64(2), unread)
}

func TestService_MarkAsRead_DelegatesOwnership(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("MarkRead", mock.Anything, int64(9), int64(3)).Return(nil)

	require.NoError(t, svc.MarkAsRead(context.Background(), 9, 3))
	repo.AssertExpectations(t)
}
