package availability

import (
	"context"
	"strings"
	"time"

	"gigbook/internal/domain"
	"gigbook/internal/pkg/validator"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Set records whether the artist is free on the given day. Repeated calls for
// the same day overwrite the previous value.
func (s *Service) Set(ctx context.Context, artistID int64, req SetRequest) error {
	if errs := validator.Validate(req); errs != nil {
		return ErrValidation
	}

	day, err := time.Parse(domain.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return ErrValidation
	}

	return s.repo.Upsert(ctx, &domain.Availability{
		ArtistID:    artistID,
		Date:        day,
		IsAvailable: *req.IsAvailable,
	})
}

func (s *Service) List(ctx context.Context, artistID int64) ([]Entry, error) {
	rows, err := s.repo.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(rows))
	for _, a := range rows {
		out = append(out, Entry{
			Date:        a.Date.Format(domain.DateLayout),
			IsAvailable: a.IsAvailable,
		})
	}
	return out, nil
}
