package domain

import "time"

type Announcement struct {
	ID         int64     `json:"id"`
	ArtistID   int64     `json:"artist_id"`
	ArtistName string    `json:"artist_name,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
