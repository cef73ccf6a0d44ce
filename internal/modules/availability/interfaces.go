package availability

import (
	"context"

	"gigbook/internal/domain"
)

type Repository interface {
	Upsert(ctx context.Context, a *domain.Availability) error
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Availability, error)
}
