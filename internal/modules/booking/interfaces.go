package booking

import (
	"context"

	"gigbook/internal/domain"
)

// BookingRepository writes a booking and its notification in one transaction.
type BookingRepository interface {
	CreateWithNotification(ctx context.Context, b *domain.Booking, n *domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Booking, error)
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Booking, error)
	UpdateStatusWithNotification(ctx context.Context, bookingID, artistID int64, status domain.BookingStatus, n *domain.Notification) error
	MarkPaidWithNotification(ctx context.Context, bookingID, artistID int64, n *domain.Notification) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
