package repository

import (
	"context"
	"time"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ArtistID    int64     `gorm:"column:artist_id;not null;index"`
	OrganizerID int64     `gorm:"column:organizer_id;not null;index"`
	BookingID   int64     `gorm:"column:booking_id;not null"`
	Rating      int       `gorm:"column:rating;not null"`
	Comment     *string   `gorm:"column:comment"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:          m.ID,
		ArtistID:    m.ArtistID,
		OrganizerID: m.OrganizerID,
		BookingID:   m.BookingID,
		Rating:      m.Rating,
		Comment:     deref(m.Comment),
		CreatedAt:   m.CreatedAt,
	}
}

// CreateWithNotification inserts the review and the artist's notification atomically.
func (r *ReviewRepository) CreateWithNotification(ctx context.Context, rv *domain.Review, n *domain.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := reviewModel{
			ArtistID:    rv.ArtistID,
			OrganizerID: rv.OrganizerID,
			BookingID:   rv.BookingID,
			Rating:      rv.Rating,
			Comment:     ptrOrNil(rv.Comment),
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if err := insertNotification(tx, n); err != nil {
			return err
		}
		*rv = *toDomainReview(m)
		return nil
	})
}

// ListByArtist returns reviews received by the artist with the organizer's username.
func (r *ReviewRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.ReviewWithAuthor, error) {
	return r.listJoined(ctx, "r.artist_id = ?", artistID, "r.organizer_id")
}

// ListByOrganizer returns reviews written by the organizer with the artist's username.
func (r *ReviewRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.ReviewWithAuthor, error) {
	return r.listJoined(ctx, "r.organizer_id = ?", organizerID, "r.artist_id")
}

func (r *ReviewRepository) listJoined(ctx context.Context, where string, arg int64, counterpartCol string) ([]domain.ReviewWithAuthor, error) {
	type row struct {
		ID              int64     `gorm:"column:id"`
		ArtistID        int64     `gorm:"column:artist_id"`
		OrganizerID     int64     `gorm:"column:organizer_id"`
		BookingID       int64     `gorm:"column:booking_id"`
		Rating          int       `gorm:"column:rating"`
		Comment         *string   `gorm:"column:comment"`
		CreatedAt       time.Time `gorm:"column:created_at"`
		CounterpartName string    `gorm:"column:counterpart_name"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.id, r.artist_id, r.organizer_id, r.booking_id, r.rating, r.comment, r.created_at, " +
			"u.username AS counterpart_name").
		Joins("JOIN users u ON u.id = "+counterpartCol).
		Where(where, arg).
		Order("r.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ReviewWithAuthor, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.ReviewWithAuthor{
			Review: *toDomainReview(reviewModel{
				ID:          rw.ID,
				ArtistID:    rw.ArtistID,
				OrganizerID: rw.OrganizerID,
				BookingID:   rw.BookingID,
				Rating:      rw.Rating,
				Comment:     rw.Comment,
				CreatedAt:   rw.CreatedAt,
			}),
			CounterpartName: rw.CounterpartName,
		})
	}
	return out, nil
}
