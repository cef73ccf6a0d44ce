package review

import (
	"context"
	"errors"
	"fmt"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateWithNotification(ctx context.Context, r *domain.Review, n *domain.Notification) error
	ListByArtist(ctx context.Context, artistID int64) ([]domain.ReviewWithAuthor, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.ReviewWithAuthor, error)
}

type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	users    UserReader
}

func NewService(reviews ReviewRepository, bookings BookingGate, users UserReader) *Service {
	return &Service{reviews: reviews, bookings: bookings, users: users}
}

// Create stores an organizer's review of one of their completed bookings and
// notifies the artist. The caller's role is checked by the route.
func (s *Service) Create(ctx context.Context, organizerID, bookingID int64, req CreateReviewRequest) (*domain.Review, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.OrganizerID != organizerID {
		return nil, ErrBookingNotFound
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrReviewNotAllowed
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	organizer, err := s.users.GetByID(ctx, organizerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewerNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		ArtistID:    b.ArtistID,
		OrganizerID: organizerID,
		BookingID:   b.ID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	n := &domain.Notification{
		UserID:  b.ArtistID,
		Type:    domain.NotifNewReview,
		Content: fmt.Sprintf("You received a new review from %s.", organizer.Username),
	}
	if err := s.reviews.CreateWithNotification(ctx, rv, n); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListForArtist(ctx context.Context, artistID int64) ([]ArtistReviewView, error) {
	rows, err := s.reviews.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	out := make([]ArtistReviewView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArtistReviewView{ID: r.ID, Rating: r.Rating, Comment: r.Comment, By: r.CounterpartName})
	}
	return out, nil
}

func (s *Service) ListForOrganizer(ctx context.Context, organizerID int64) ([]OrganizerReviewView, error) {
	rows, err := s.reviews.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	out := make([]OrganizerReviewView, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrganizerReviewView{ID: r.ID, Rating: r.Rating, Comment: r.Comment, Artist: r.CounterpartName})
	}
	return out, nil
}
