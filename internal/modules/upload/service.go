package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"gigbook/internal/domain"
	"gigbook/internal/pkg/logger"

	"gorm.io/gorm"
)

const (
	// MultipartMemory bounds in-memory buffering of uploads; larger parts spill to
	// temp files. Upload size itself is not limited.
	MultipartMemory = 10 << 20
	profilePicsDir  = "profile_pics"
	defaultFilename = "picture"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfilePic(ctx context.Context, id int64, url string) error
}

// Service stores profile pictures on local disk under baseDir/profile_pics and
// records their public URL on the user row.
type Service struct {
	users      UserStore
	baseDir    string
	staticBase string
}

func NewService(users UserStore, baseDir, staticBase string) *Service {
	return &Service{
		users:      users,
		baseDir:    baseDir,
		staticBase: "/" + strings.Trim(staticBase, "/"),
	}
}

// UploadProfilePicture replaces the caller's picture. Any role may call it.
func (s *Service) UploadProfilePicture(ctx context.Context, userID int64, fh *multipart.FileHeader) (string, error) {
	return s.upload(ctx, userID, fh, "")
}

// UploadOrganizerPicture is UploadProfilePicture restricted to organizers.
func (s *Service) UploadOrganizerPicture(ctx context.Context, userID int64, fh *multipart.FileHeader) (string, error) {
	return s.upload(ctx, userID, fh, domain.RoleOrganizer)
}

func (s *Service) upload(ctx context.Context, userID int64, fh *multipart.FileHeader, requiredRole domain.UserRole) (string, error) {
	if requiredRole != "" {
		if _, err := s.lookup(ctx, userID, requiredRole); err != nil {
			return "", err
		}
	}

	if fh == nil || fh.Filename == "" {
		return "", ErrNoFile
	}
	if !allowedExtension(fh.Filename) {
		return "", ErrInvalidFileType
	}

	if requiredRole == "" {
		if _, err := s.lookup(ctx, userID, ""); err != nil {
			return "", err
		}
	}

	safe := SanitizeFilename(fh.Filename)
	if safe == "" {
		safe = defaultFilename
	}
	finalName := fmt.Sprintf("%d_%s", userID, safe)

	absDir := filepath.Join(s.baseDir, profilePicsDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	absPath := filepath.Join(absDir, finalName)
	if err := saveFile(fh, absPath); err != nil {
		return "", err
	}

	url := s.staticBase + "/" + profilePicsDir + "/" + finalName
	if err := s.users.UpdateProfilePic(ctx, userID, url); err != nil {
		if rmErr := os.Remove(absPath); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", absPath).Msg("remove orphaned upload")
		}
		return "", err
	}

	logger.Info().Int64("user_id", userID).Str("url", url).Msg("profile picture stored")
	return url, nil
}

func (s *Service) lookup(ctx context.Context, userID int64, role domain.UserRole) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if role != "" && u.Role != role {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func saveFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
