package repository

import (
	"context"
	"errors"
	"time"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type ArtistProfileRepository struct {
	db *gorm.DB
}

func NewArtistProfileRepository(db *gorm.DB) *ArtistProfileRepository {
	return &ArtistProfileRepository{db: db}
}

type artistProfileModel struct {
	ArtistID    int64     `gorm:"column:artist_id;primaryKey;autoIncrement:false"`
	Bio         string    `gorm:"column:bio"`
	Genres      string    `gorm:"column:genres"`
	MediaLinks  string    `gorm:"column:media_links"`
	PricingInfo string    `gorm:"column:pricing_info"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (artistProfileModel) TableName() string { return "artist_profiles" }

func toDomainArtistProfile(m artistProfileModel) *domain.ArtistProfile {
	return &domain.ArtistProfile{
		ArtistID:    m.ArtistID,
		Bio:         m.Bio,
		Genres:      m.Genres,
		MediaLinks:  m.MediaLinks,
		PricingInfo: m.PricingInfo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Upsert creates the caller's profile or overwrites all its text fields.
// created reports which of the two happened.
func (r *ArtistProfileRepository) Upsert(ctx context.Context, p *domain.ArtistProfile) (created bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m artistProfileModel
		findErr := tx.Where("artist_id = ?", p.ArtistID).First(&m).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			m = artistProfileModel{
				ArtistID:    p.ArtistID,
				Bio:         p.Bio,
				Genres:      p.Genres,
				MediaLinks:  p.MediaLinks,
				PricingInfo: p.PricingInfo,
			}
			if err := tx.Create(&m).Error; err != nil {
				return translate(err)
			}
			created = true
		case findErr != nil:
			return findErr
		default:
			m.Bio = p.Bio
			m.Genres = p.Genres
			m.MediaLinks = p.MediaLinks
			m.PricingInfo = p.PricingInfo
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		}
		*p = *toDomainArtistProfile(m)
		return nil
	})
	return created, err
}

func (r *ArtistProfileRepository) GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistProfile, error) {
	var m artistProfileModel
	if err := r.db.WithContext(ctx).Where("artist_id = ?", artistID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainArtistProfile(m), nil
}

// ListArtists returns one row per artist profile joined with its user.
func (r *ArtistProfileRepository) ListArtists(ctx context.Context) ([]domain.ArtistListing, error) {
	type row struct {
		ID         int64
		Username   string
		Genres     string
		ProfilePic *string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("artist_profiles AS ap").
		Select("u.id, u.username, ap.genres, u.profile_pic").
		Joins("JOIN users u ON u.id = ap.artist_id").
		Order("u.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ArtistListing, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.ArtistListing{
			ID:         rw.ID,
			Name:       rw.Username,
			Genre:      rw.Genres,
			ProfilePic: deref(rw.ProfilePic),
		})
	}
	return out, nil
}
