package artist

import (
	"context"
	"errors"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	profiles ProfileRepository
	users    UserReader
	bookings BookingReader
	reviews  ReviewReader
}

func NewService(profiles ProfileRepository, users UserReader, bookings BookingReader, reviews ReviewReader) *Service {
	return &Service{
		profiles: profiles,
		users:    users,
		bookings: bookings,
		reviews:  reviews,
	}
}

func (s *Service) List(ctx context.Context) ([]ArtistSummary, error) {
	rows, err := s.profiles.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ArtistSummary, 0, len(rows))
	for _, r := range rows {
		u := domain.User{ProfilePic: r.ProfilePic}
		out = append(out, ArtistSummary{
			ID:            r.ID,
			Name:          r.Name,
			Genre:         r.Genre,
			ProfilePicURL: u.ProfilePicURL(),
		})
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, artistID int64) (*ArtistDetail, error) {
	profile, err := s.profiles.GetByArtistID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	user, err := s.users.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	return &ArtistDetail{
		ArtistID:      profile.ArtistID,
		Name:          user.Username,
		Bio:           profile.Bio,
		Genres:        profile.Genres,
		MediaLinks:    profile.MediaLinks,
		PricingInfo:   profile.PricingInfo,
		ProfilePicURL: user.ProfilePicURL(),
	}, nil
}

// UpsertProfile writes every field of the caller's profile. created is true when
// no profile existed before.
func (s *Service) UpsertProfile(ctx context.Context, artistID int64, req UpsertProfileRequest) (bool, error) {
	return s.profiles.Upsert(ctx, &domain.ArtistProfile{
		ArtistID:    artistID,
		Bio:         req.Bio,
		Genres:      req.Genres,
		MediaLinks:  req.MediaLinks,
		PricingInfo: req.PricingInfo,
	})
}

func (s *Service) Dashboard(ctx context.Context, artistID int64) (*Dashboard, error) {
	bookings, err := s.bookings.ListByArtistWithOrganizer(ctx, artistID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Bookings: make([]DashboardBooking, 0, len(bookings)),
		Reviews:  make([]DashboardReview, 0, len(reviews)),
	}
	for _, b := range bookings {
		d.Bookings = append(d.Bookings, DashboardBooking{
			ID:             b.ID,
			OrganizerName:  b.OrganizerName,
			OrganizerEmail: b.OrganizerEmail,
			Date:           b.EventDate.Format(domain.DateLayout),
			Status:         string(b.Status),
			Paid:           b.Paid,
		})
	}
	for _, r := range reviews {
		d.Reviews = append(d.Reviews, DashboardReview{
			Rating:  r.Rating,
			Comment: r.Comment,
			By:      r.CounterpartName,
		})
	}
	return d, nil
}
