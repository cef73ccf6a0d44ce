package announcement

import (
	"context"
	"errors"
	"strings"

	"gigbook/internal/domain"
)

var ErrValidation = errors.New("title and content are required")

type Repository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	ListAll(ctx context.Context) ([]domain.Announcement, error)
	ListByArtist(ctx context.Context, artistID int64) ([]domain.Announcement, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, artistID int64, req CreateRequest) (*domain.Announcement, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrValidation
	}

	a := &domain.Announcement{ArtistID: artistID, Title: title, Content: content}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByArtist(ctx context.Context, artistID int64) ([]domain.Announcement, error) {
	return s.repo.ListByArtist(ctx, artistID)
}
