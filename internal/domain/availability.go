package domain

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

type Availability struct {
	ID          int64     `json:"id"`
	ArtistID    int64     `json:"artist_id"`
	Date        time.Time `json:"date"`
	IsAvailable bool      `json:"is_available"`
	UpdatedAt   time.Time `json:"updated_at"`
}
