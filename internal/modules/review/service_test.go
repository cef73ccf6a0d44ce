package review

import (
	"context"
	"testing"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockReviews struct{ mock.Mock }

func (m *mockReviews) CreateWithNotification(ctx context.Context, r *domain.Review, n *domain.Notification) error {
	return m.Called(ctx, r, n).Error(0)
}

func (m *mockReviews) ListByArtist(ctx context.Context, artistID int64) ([]domain.ReviewWithAuthor, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]domain.ReviewWithAuthor), args.Error(1)
}

func (m *mockReviews) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.ReviewWithAuthor, error) {
	args := m.Called(ctx, organizerID)
	return args.Get(0).([]domain.ReviewWithAuthor), args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService() (*Service, *mockReviews) {
	reviews := new(mockReviews)
	bookings := new(mockBookings)
	users := new(mockUsers)

	bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, ArtistID: 10, OrganizerID: 20, Status: domain.BookingCompleted}, nil)
	bookings.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Booking{ID: 2, ArtistID: 10, OrganizerID: 20, Status: domain.BookingConfirmed}, nil)
	bookings.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByID", mock.Anything, int64(20)).Return(&domain.User{ID: 20, Username: "venue"}, nil)

	return NewService(reviews, bookings, users), reviews
}

func TestService_Create_Success(t *testing.T) {
	svc, reviews := newTestService()

	reviews.On("CreateWithNotification", mock.Anything,
		mock.MatchedBy(func(r *domain.Review) bool {
			return r.ArtistID == 10 && r.OrganizerID == 20 && r.BookingID == 1 && r.Rating == 5
		}),
		mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == 10 && n.Content == "You received a new review from venue."
		}),
	).Return(nil)

	_, err := svc.Create(context.Background(), 20, 1, CreateReviewRequest{Rating: 5, Comment: "tight set"})
	require.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestService_Create_Rejections(t *testing.T) {
	svc, reviews := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 20, 3, CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.Create(ctx, 21, 1, CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.Create(ctx, 20, 2, CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrReviewNotAllowed)

	_, err = svc.Create(ctx, 20, 1, CreateReviewRequest{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Create(ctx, 20, 1, CreateReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	reviews.AssertNotCalled(t, "CreateWithNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Lists(t *testing.T) {
	svc, reviews := newTestService()

	reviews.On("ListByArtist", mock.Anything, int64(10)).Return([]domain.ReviewWithAuthor{
		{Review: domain.Review{ID: 1, Rating: 4, Comment: "ok"}, CounterpartName: "venue"},
	}, nil)
	reviews.On("ListByOrganizer", mock.Anything, int64(20)).Return([]domain.ReviewWithAuthor{
		{Review: domain.Review{ID: 1, Rating: 4, Comment: "ok"}, CounterpartName: "dj"},
	}, nil)

	byArtist, err := svc.ListForArtist(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []ArtistReviewView{{ID: 1, Rating: 4, Comment: "ok", By: "venue"}}, byArtist)

	byOrg, err := svc.ListForOrganizer(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, []OrganizerReviewView{{ID: 1, Rating: 4, Comment: "ok", Artist: "dj"}}, byOrg)
}
