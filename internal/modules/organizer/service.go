package organizer

import (
	"context"
	"errors"

	"gigbook/internal/domain"

	"gorm.io/gorm"
)

var ErrOrganizerNotFound = errors.New("organizer not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateBio(ctx context.Context, id int64, bio string) error
}

type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// UpdateProfile sets the organizer's bio. A nil bio leaves the stored value.
func (s *Service) UpdateProfile(ctx context.Context, organizerID int64, bio *string) error {
	if _, err := s.getOrganizer(ctx, organizerID); err != nil {
		return err
	}
	if bio == nil {
		return nil
	}
	return s.users.UpdateBio(ctx, organizerID, *bio)
}

func (s *Service) Get(ctx context.Context, id int64) (*ProfileResponse, error) {
	u, err := s.getOrganizer(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{
		OrganizerID:   u.ID,
		Bio:           u.Bio,
		Name:          u.Username,
		ProfilePicURL: u.ProfilePicURL(),
	}, nil
}

func (s *Service) getOrganizer(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizerNotFound
		}
		return nil, err
	}
	if u.Role != domain.RoleOrganizer {
		return nil, ErrOrganizerNotFound
	}
	return u, nil
}
