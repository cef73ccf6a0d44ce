package repository

import (
	"context"
	"time"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ArtistID    int64     `gorm:"column:artist_id;not null;index"`
	OrganizerID int64     `gorm:"column:organizer_id;not null;index"`
	EventDate   string    `gorm:"column:event_date;size:10;not null"`
	Status      string    `gorm:"column:status;size:20;not null"`
	Price       int64     `gorm:"column:price;not null"`
	Message     *string   `gorm:"column:message"`
	Paid        bool      `gorm:"column:paid;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	d, _ := time.Parse(domain.DateLayout, m.EventDate)
	return &domain.Booking{
		ID:          m.ID,
		ArtistID:    m.ArtistID,
		OrganizerID: m.OrganizerID,
		EventDate:   d,
		Status:      domain.BookingStatus(m.Status),
		Price:       m.Price,
		Message:     deref(m.Message),
		Paid:        m.Paid,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		ArtistID:    b.ArtistID,
		OrganizerID: b.OrganizerID,
		EventDate:   b.EventDate.Format(domain.DateLayout),
		Status:      string(b.Status),
		Price:       b.Price,
		Message:     ptrOrNil(b.Message),
		Paid:        b.Paid,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// CreateWithNotification inserts the booking and the artist's notification
// atomically.
func (r *BookingRepository) CreateWithNotification(ctx context.Context, b *domain.Booking, n *domain.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if err := insertNotification(tx, n); err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Booking, error) {
	return r.list(ctx, "organizer_id = ?", organizerID)
}

func (r *BookingRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Booking, error) {
	return r.list(ctx, "artist_id = ?", artistID)
}

func (r *BookingRepository) list(ctx context.Context, where string, arg int64) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := r.db.WithContext(ctx).Where(where, arg).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListByArtistWithOrganizer joins each of the artist's bookings with the
// organizer's username and email.
func (r *BookingRepository) ListByArtistWithOrganizer(ctx context.Context, artistID int64) ([]domain.BookingWithOrganizer, error) {
	type row struct {
		ID             int64     `gorm:"column:id"`
		ArtistID       int64     `gorm:"column:artist_id"`
		OrganizerID    int64     `gorm:"column:organizer_id"`
		EventDate      string    `gorm:"column:event_date"`
		Status         string    `gorm:"column:status"`
		Price          int64     `gorm:"column:price"`
		Message        *string   `gorm:"column:message"`
		Paid           bool      `gorm:"column:paid"`
		CreatedAt      time.Time `gorm:"column:created_at"`
		UpdatedAt      time.Time `gorm:"column:updated_at"`
		OrganizerName  string    `gorm:"column:organizer_name"`
		OrganizerEmail string    `gorm:"column:organizer_email"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("bookings AS b").
		Select("b.id, b.artist_id, b.organizer_id, b.event_date, b.status, b.price, b.message, b.paid, " +
			"b.created_at, b.updated_at, u.username AS organizer_name, u.email AS organizer_email").
		Joins("JOIN users u ON u.id = b.organizer_id").
		Where("b.artist_id = ?", artistID).
		Order("b.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.BookingWithOrganizer, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.BookingWithOrganizer{
			Booking: *toDomainBooking(bookingModel{
				ID:          rw.ID,
				ArtistID:    rw.ArtistID,
				OrganizerID: rw.OrganizerID,
				EventDate:   rw.EventDate,
				Status:      rw.Status,
				Price:       rw.Price,
				Message:     rw.Message,
				Paid:        rw.Paid,
				CreatedAt:   rw.CreatedAt,
				UpdatedAt:   rw.UpdatedAt,
			}),
			OrganizerName:  rw.OrganizerName,
			OrganizerEmail: rw.OrganizerEmail,
		})
	}
	return out, nil
}

// UpdateStatusWithNotification changes the status of a booking owned by artistID
// and notifies the organizer in the same transaction. A booking that does not
// exist or belongs to another artist yields gorm.ErrRecordNotFound.
func (r *BookingRepository) UpdateStatusWithNotification(
	ctx context.Context,
	bookingID, artistID int64,
	status domain.BookingStatus,
	n *domain.Notification,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookingModel{}).
			Where("id = ? AND artist_id = ?", bookingID, artistID).
			Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return insertNotification(tx, n)
	})
}

// MarkPaidWithNotification sets paid=true on a booking owned by artistID and
// notifies the organizer atomically. No matching row yields gorm.ErrRecordNotFound.
func (r *BookingRepository) MarkPaidWithNotification(ctx context.Context, bookingID, artistID int64, n *domain.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookingModel{}).
			Where("id = ? AND artist_id = ?", bookingID, artistID).
			Updates(map[string]any{"paid": true, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return insertNotification(tx, n)
	})
}
