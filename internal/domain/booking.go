package domain

import "time"

type BookingStatus string

const (
	BookingRequested BookingStatus = "requested"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports membership in the fixed status set. It does not check
// whether a transition from the current status makes sense.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingRequested, BookingConfirmed, BookingRejected, BookingCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID          int64         `json:"id"`
	ArtistID    int64         `json:"artist_id"`
	OrganizerID int64         `json:"organizer_id"`
	EventDate   time.Time     `json:"event_date"`
	Status      BookingStatus `json:"status"`
	Price       int64         `json:"price"`
	Message     string        `json:"message"`
	Paid        bool          `json:"paid"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BookingWithOrganizer is a booking joined with the organizer's contact data.
type BookingWithOrganizer struct {
	Booking
	OrganizerName  string
	OrganizerEmail string
}
