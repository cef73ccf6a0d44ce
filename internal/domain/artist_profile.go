package domain

import "time"

// ArtistProfile extends a User with role artist. ArtistID is the user's id.
type ArtistProfile struct {
	ArtistID    int64     `json:"artist_id"`
	Bio         string    `json:"bio"`
	Genres      string    `json:"genres"`
	MediaLinks  string    `json:"media_links"`
	PricingInfo string    `json:"pricing_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArtistListing is one row of the public artist catalogue.
type ArtistListing struct {
	ID         int64
	Name       string
	Genre      string
	ProfilePic string
}
