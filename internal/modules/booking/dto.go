package booking

import "gigbook/internal/domain"

type CreateBookingRequest struct {
	ArtistID  int64  `json:"artist_id" validate:"required"`
	EventDate string `json:"event_date" validate:"required,isodate"`
	Price     int64  `json:"price" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrganizerBookingView struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artist_id"`
	EventDate string `json:"event_date"`
	Status    string `json:"status"`
	Price     int64  `json:"price"`
	Message   string `json:"message"`
	Paid      bool   `json:"paid"`
}

type ArtistBookingView struct {
	ID          int64  `json:"id"`
	OrganizerID int64  `json:"organizer_id"`
	EventDate   string `json:"event_date"`
	Status      string `json:"status"`
	Price       int64  `json:"price"`
	Message     string `json:"message"`
	Paid        bool   `json:"paid"`
}

type BookingView struct {
	ID          int64  `json:"id"`
	ArtistID    int64  `json:"artist_id"`
	OrganizerID int64  `json:"organizer_id"`
	EventDate   string `json:"event_date"`
	Status      string `json:"status"`
	Price       int64  `json:"price"`
	Message     string `json:"message"`
	Paid        bool   `json:"paid"`
}

func toBookingView(b *domain.Booking) BookingView {
	return BookingView{
		ID:          b.ID,
		ArtistID:    b.ArtistID,
		OrganizerID: b.OrganizerID,
		EventDate:   b.EventDate.Format(domain.DateLayout),
		Status:      string(b.Status),
		Price:       b.Price,
		Message:     b.Message,
		Paid:        b.Paid,
	}
}
