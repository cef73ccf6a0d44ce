package artist

import (
	"context"
	"testing"
	"time"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockProfiles struct{ mock.Mock }

func (m *mockProfiles) Upsert(ctx context.Context, p *domain.ArtistProfile) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfiles) GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistProfile, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtistProfile), args.Error(1)
}

func (m *mockProfiles) ListArtists(ctx context.Context) ([]domain.ArtistListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ArtistListing), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) ListByArtistWithOrganizer(ctx context.Context, artistID int64) ([]domain.BookingWithOrganizer, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]domain.BookingWithOrganizer), args.Error(1)
}

type mockReviews struct{ mock.Mock }

func (m *mockReviews) ListByArtist(ctx context.Context, artistID int64) ([]domain.ReviewWithAuthor, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]domain.ReviewWithAuthor), args.Error(1)
}

func TestService_List_NullPictureWhenMissing(t *testing.T) {
	profiles := new(mockProfiles)
	svc := NewService(profiles, nil, nil, nil)

	profiles.On("ListArtists", mock.Anything).Return([]domain.ArtistListing{
		{ID: 1, Name: "dj", Genre: "house", ProfilePic: "/static/profile_pics/1_me.png"},
		{ID: 2, Name: "band", Genre: "rock"},
	}, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].ProfilePicURL)
	assert.Equal(t, "/static/profile_pics/1_me.png", *list[0].ProfilePicURL)
	assert.Nil(t, list[1].ProfilePicURL)
}

func TestService_Get_NotFound(t *testing.T) {
	profiles := new(mockProfiles)
	users := new(mockUsers)
	svc := NewService(profiles, users, nil, nil)

	profiles.On("GetByArtistID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)
	profiles.On("GetByArtistID", mock.Anything, int64(4)).Return(&domain.ArtistProfile{ArtistID: 4}, nil)
	users.On("GetByID", mock.Anything, int64(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 3)
	assert.ErrorIs(t, err, ErrArtistNotFound)

	_, err = svc.Get(context.Background(), 4)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestService_Get_Success(t *testing.T) {
	profiles := new(mockProfiles)
	users := new(mockUsers)
	svc := NewService(profiles, users, nil, nil)

	profiles.On("GetByArtistID", mock.Anything, int64(5)).Return(&domain.ArtistProfile{
		ArtistID: 5, Bio: "bio", Genres: "jazz", MediaLinks: "yt", PricingInfo: "500",
	}, nil)
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Username: "sax"}, nil)

	d, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "sax", d.Name)
	assert.Equal(t, "jazz", d.Genres)
	assert.Nil(t, d.ProfilePicURL)
}

func TestService_UpsertProfile_PassesCallerID(t *testing.T) {
	profiles := new(mockProfiles)
	svc := NewService(profiles, nil, nil, nil)

	profiles.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.ArtistProfile) bool {
		return p.ArtistID == 9 && p.Genres == "pop"
	})).Return(true, nil)

	created, err := svc.UpsertProfile(context.Background(), 9, UpsertProfileRequest{Genres: "pop"})
	require.NoError(t, err)
	assert.True(t, created)
	profiles.AssertExpectations(t)
}

func TestService_Dashboard(t *testing.T) {
	bookings := new(mockBookings)
	reviews := new(mockReviews)
	svc := NewService(nil, nil, bookings, reviews)

	bookings.On("ListByArtistWithOrganizer", mock.Anything, int64(1)).Return([]domain.BookingWithOrganizer{{
		Booking: domain.Booking{
			ID: 3, EventDate: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
			Status: domain.BookingConfirmed, Paid: true,
		},
		OrganizerName:  "club",
		OrganizerEmail: "club@example.com",
	}}, nil)
	reviews.On("ListByArtist", mock.Anything, int64(1)).Return([]domain.ReviewWithAuthor{{
		Review:          domain.Review{Rating: 4, Comment: "nice"},
		CounterpartName: "club",
	}}, nil)

	d, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, d.Bookings, 1)
	assert.Equal(t, "2025-05-04", d.Bookings[0].Date)
	assert.True(t, d.Bookings[0].Paid)
	require.Len(t, d.Reviews, 1)
	assert.Equal(t, "club", d.Reviews[0].By)
}
