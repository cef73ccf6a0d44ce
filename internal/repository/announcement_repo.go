package repository

import (
	"context"
	"time"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

type announcementModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ArtistID  int64     `gorm:"column:artist_id;not null;index"`
	Title     string    `gorm:"column:title;size:200;not null"`
	Content   string    `gorm:"column:content;not null"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (announcementModel) TableName() string { return "announcements" }

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	m := announcementModel{
		ArtistID: a.ArtistID,
		Title:    a.Title,
		Content:  a.Content,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	return nil
}

// ListAll returns every announcement, newest first.
func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	return r.list(ctx, nil)
}

// ListByArtist returns the artist's announcements, newest first.
func (r *AnnouncementRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Announcement, error) {
	return r.list(ctx, &artistID)
}

func (r *AnnouncementRepository) list(ctx context.Context, artistID *int64) ([]domain.Announcement, error) {
	type row struct {
		ID         int64     `gorm:"column:id"`
		ArtistID   int64     `gorm:"column:artist_id"`
		Title      string    `gorm:"column:title"`
		Content    string    `gorm:"column:content"`
		CreatedAt  time.Time `gorm:"column:created_at"`
		ArtistName *string   `gorm:"column:artist_name"`
	}

	q := r.db.WithContext(ctx).
		Table("announcements AS a").
		Select("a.id, a.artist_id, a.title, a.content, a.created_at, u.username AS artist_name").
		Joins("LEFT JOIN users u ON u.id = a.artist_id")
	if artistID != nil {
		q = q.Where("a.artist_id = ?", *artistID)
	}

	var rows []row
	if err := q.Order("a.created_at DESC").Order("a.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Announcement, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.Announcement{
			ID:         rw.ID,
			ArtistID:   rw.ArtistID,
			ArtistName: deref(rw.ArtistName),
			Title:      rw.Title,
			Content:    rw.Content,
			CreatedAt:  rw.CreatedAt,
		})
	}
	return out, nil
}
