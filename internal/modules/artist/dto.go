package artist

type UpsertProfileRequest struct {
	Bio         string `json:"bio"`
	Genres      string `json:"genres"`
	MediaLinks  string `json:"media_links"`
	PricingInfo string `json:"pricing_info"`
}

type ArtistSummary struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Genre         string  `json:"genre"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

type ArtistDetail struct {
	ArtistID      int64   `json:"artist_id"`
	Name          string  `json:"name"`
	Bio           string  `json:"bio"`
	Genres        string  `json:"genres"`
	MediaLinks    string  `json:"media_links"`
	PricingInfo   string  `json:"pricing_info"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

type DashboardBooking struct {
	ID             int64  `json:"id"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerEmail string `json:"organizer_email"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	Paid           bool   `json:"paid"`
}

type DashboardReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	By      string `json:"by"`
}

type Dashboard struct {
	Bookings []DashboardBooking `json:"bookings"`
	Reviews  []DashboardReview  `json:"reviews"`
}
