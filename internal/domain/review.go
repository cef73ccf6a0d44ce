package domain

import "time"

type Review struct {
	ID          int64     `json:"id"`
	ArtistID    int64     `json:"artist_id"`
	OrganizerID int64     `json:"organizer_id"`
	BookingID   int64     `json:"booking_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewWithAuthor carries the username of the other party of a review:
// the organizer when listing by artist, the artist when listing by organizer.
type ReviewWithAuthor struct {
	Review
	CounterpartName string
}
