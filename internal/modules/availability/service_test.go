package availability

import (
	"context"
	"testing"
	"time"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Upsert(ctx context.Context, a *domain.Availability) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) ListByArtist(ctx context.Context, artistID int64) ([]domain.Availability, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]domain.Availability), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func TestService_Set(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *domain.Availability) bool {
		return a.ArtistID == 2 && a.Date.Format(domain.DateLayout) == "2025-10-01" && !a.IsAvailable
	})).Return(nil)

	err := svc.Set(context.Background(), 2, SetRequest{Date: "2025-10-01", IsAvailable: boolPtr(false)})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Set_Validation(t *testing.T) {
	svc := NewService(new(mockRepo))

	cases := map[string]SetRequest{
		"missing date":   {IsAvailable: boolPtr(true)},
		"bad date":       {Date: "01.10.2025", IsAvailable: boolPtr(true)},
		"missing flag":   {Date: "2025-10-01"},
		"impossible day": {Date: "2025-02-30", IsAvailable: boolPtr(true)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Set(context.Background(), 1, req), ErrValidation)
		})
	}
}

func TestService_List(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("ListByArtist", mock.Anything, int64(1)).Return([]domain.Availability{
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), IsAvailable: true},
	}, nil)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Date: "2025-01-02", IsAvailable: true}}, list)
}
