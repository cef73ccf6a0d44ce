package artist

import (
	"context"

	"gigbook/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, p *domain.ArtistProfile) (bool, error)
	GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistProfile, error)
	ListArtists(ctx context.Context) ([]domain.ArtistListing, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type BookingReader interface {
	ListByArtistWithOrganizer(ctx context.Context, artistID int64) ([]domain.BookingWithOrganizer, error)
}

type ReviewReader interface {
	ListByArtist(ctx context.Context, artistID int64) ([]domain.ReviewWithAuthor, error)
}
