package organizer

import (
	"context"
	"testing"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) UpdateBio(ctx context.Context, id int64, bio string) error {
	return m.Called(ctx, id, bio).Error(0)
}

func newUsers() *mockUsers {
	users := new(mockUsers)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Username: "club", Role: domain.RoleOrganizer, Bio: "old"}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Username: "dj", Role: domain.RoleArtist}, nil)
	users.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)
	return users
}

func TestService_UpdateProfile(t *testing.T) {
	users := newUsers()
	svc := NewService(users)
	bio := "We host raves"

	users.On("UpdateBio", mock.Anything, int64(1), bio).Return(nil)

	require.NoError(t, svc.UpdateProfile(context.Background(), 1, &bio))
	require.NoError(t, svc.UpdateProfile(context.Background(), 1, nil))
	users.AssertNumberOfCalls(t, "UpdateBio", 1)

	assert.ErrorIs(t, svc.UpdateProfile(context.Background(), 2, &bio), ErrOrganizerNotFound)
	assert.ErrorIs(t, svc.UpdateProfile(context.Background(), 3, &bio), ErrOrganizerNotFound)
}

func TestService_Get(t *testing.T) {
	svc := NewService(newUsers())

	p, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "club", p.Name)
	assert.Equal(t, "old", p.Bio)
	assert.Nil(t, p.ProfilePicURL)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, ErrOrganizerNotFound)
}
