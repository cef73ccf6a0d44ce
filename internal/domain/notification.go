package domain

import "time"

type NotificationType string

const (
	NotifBookingRequested NotificationType = "booking_requested"
	NotifBookingStatus    NotificationType = "booking_status_changed"
	NotifBookingPaid      NotificationType = "booking_paid"
	NotifNewReview        NotificationType = "new_review"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Content   string           `json:"content"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
