package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gigbook/internal/domain"
	"gigbook/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	users    UserReader
}

func NewService(bookings BookingRepository, users UserReader) *Service {
	return &Service{bookings: bookings, users: users}
}

// CreateBooking files a request from organizerID to an artist and notifies the artist.
func (s *Service) CreateBooking(ctx context.Context, organizerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}
	eventDate, err := time.Parse(domain.DateLayout, strings.TrimSpace(req.EventDate))
	if err != nil {
		return nil, ErrValidation
	}

	artist, err := s.users.GetByID(ctx, req.ArtistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	if artist.Role != domain.RoleArtist {
		return nil, ErrArtistNotFound
	}

	organizer, err := s.caller(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ArtistID:    artist.ID,
		OrganizerID: organizerID,
		EventDate:   eventDate,
		Status:      domain.BookingRequested,
		Price:       req.Price,
		Message:     req.Message,
		Paid:        false,
	}
	n := &domain.Notification{
		UserID:  artist.ID,
		Type:    domain.NotifBookingRequested,
		Content: fmt.Sprintf("New booking request from %s", organizer.Username),
	}
	if err := s.bookings.CreateWithNotification(ctx, b, n); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListForOrganizer(ctx context.Context, organizerID int64) ([]OrganizerBookingView, error) {
	rows, err := s.bookings.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	out := make([]OrganizerBookingView, 0, len(rows))
	for _, b := range rows {
		out = append(out, OrganizerBookingView{
			ID:        b.ID,
			ArtistID:  b.ArtistID,
			EventDate: b.EventDate.Format(domain.DateLayout),
			Status:    string(b.Status),
			Price:     b.Price,
			Message:   b.Message,
			Paid:      b.Paid,
		})
	}
	return out, nil
}

func (s *Service) ListForArtist(ctx context.Context, artistID int64) ([]ArtistBookingView, error) {
	rows, err := s.bookings.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	out := make([]ArtistBookingView, 0, len(rows))
	for _, b := range rows {
		out = append(out, ArtistBookingView{
			ID:          b.ID,
			OrganizerID: b.OrganizerID,
			EventDate:   b.EventDate.Format(domain.DateLayout),
			Status:      string(b.Status),
			Price:       b.Price,
			Message:     b.Message,
			Paid:        b.Paid,
		})
	}
	return out, nil
}

// UpdateStatus lets the owning artist move a booking to any status in the fixed
// set. The current status is not consulted.
func (s *Service) UpdateStatus(ctx context.Context, artistID, bookingID int64, status string) error {
	newStatus := domain.BookingStatus(status)
	if !newStatus.Valid() {
		return ErrInvalidStatus
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if b.ArtistID != artistID {
		return ErrBookingNotFound
	}

	artist, err := s.caller(ctx, artistID)
	if err != nil {
		return err
	}

	n := &domain.Notification{
		UserID:  b.OrganizerID,
		Type:    domain.NotifBookingStatus,
		Content: fmt.Sprintf("Your booking with artist %s was %s.", artist.Username, newStatus),
	}
	err = s.bookings.UpdateStatusWithNotification(ctx, bookingID, artistID, newStatus, n)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookingNotFound
	}
	return err
}

// MarkPaid flips the paid flag. Only the booking's artist may do this.
func (s *Service) MarkPaid(ctx context.Context, callerID, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if b.ArtistID != callerID {
		return ErrForbidden
	}

	artist, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}

	n := &domain.Notification{
		UserID:  b.OrganizerID,
		Type:    domain.NotifBookingPaid,
		Content: fmt.Sprintf("Artist %s marked booking %d as paid.", artist.Username, b.ID),
	}
	// a booking reassigned after the check matches no row
	err = s.bookings.MarkPaidWithNotification(ctx, bookingID, callerID, n)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrForbidden
	}
	return err
}

func (s *Service) caller(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCallerNotFound
		}
		return nil, err
	}
	return u, nil
}
