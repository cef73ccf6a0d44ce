package repository

import (
	"context"
	"time"

	"gigbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type availabilityModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ArtistID    int64     `gorm:"column:artist_id;not null;uniqueIndex:uq_availability_artist_date"`
	Date        string    `gorm:"column:date;size:10;not null;uniqueIndex:uq_availability_artist_date"`
	IsAvailable bool      `gorm:"column:is_available;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (availabilityModel) TableName() string { return "availabilities" }

func toDomainAvailability(m availabilityModel) domain.Availability {
	d, _ := time.Parse(domain.DateLayout, m.Date)
	return domain.Availability{
		ID:          m.ID,
		ArtistID:    m.ArtistID,
		Date:        d,
		IsAvailable: m.IsAvailable,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Upsert writes the flag for (artist, date). The unique index makes concurrent
// writers converge on a single row.
func (r *AvailabilityRepository) Upsert(ctx context.Context, a *domain.Availability) error {
	now := time.Now()
	m := availabilityModel{
		ArtistID:    a.ArtistID,
		Date:        a.Date.Format(domain.DateLayout),
		IsAvailable: a.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "artist_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
	}).Create(&m).Error
}

func (r *AvailabilityRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Availability, error) {
	var rows []availabilityModel
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Availability, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainAvailability(m))
	}
	return out, nil
}
