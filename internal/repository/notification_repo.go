package repository

import (
	"context"
	"time"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_notifications_user_created,priority:1"`
	Type      string    `gorm:"column:type;size:50;not null"`
	Content   string    `gorm:"column:content;not null"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_notifications_user_created,priority:2"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	return &domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      domain.NotificationType(m.Type),
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// insertNotification writes n using tx so callers can bundle it with the
// state change that caused it.
func insertNotification(tx *gorm.DB, n *domain.Notification) error {
	m := notificationModel{
		UserID:  n.UserID,
		Type:    string(n.Type),
		Content: n.Content,
		IsRead:  false,
	}
	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return insertNotification(r.db.WithContext(ctx), n)
}

// ListByUser returns the user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var rows []notificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&cnt).Error
	return cnt, err
}

// MarkRead flags a single notification owned by userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return tx.RowsAffected, tx.Error
}

// DeleteReadBefore removes read notifications created before cutoff. Unread
// ones are kept regardless of age.
func (r *NotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&notificationModel{})
	return tx.RowsAffected, tx.Error
}
