package upload

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"gigbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) UpdateProfilePic(ctx context.Context, id int64, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("picture", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["picture"][0]
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Photo.png":         "My_Photo.png",
		"../../etc/passwd.jpg": "passwd.jpg",
		`C:\Users\me\pic.gif`:  "pic.gif",
		"Café au lait.jpeg":    "Cafe_au_lait.jpeg",
		"._hidden.png_":        "hidden.png",
		"weird$%name!.png":     "weirdname.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, allowedExtension("a.PNG"))
	assert.True(t, allowedExtension("a.b.jpeg"))
	assert.False(t, allowedExtension("a.webp"))
	assert.False(t, allowedExtension("noext"))
}

func TestService_UploadProfilePicture(t *testing.T) {
	dir := t.TempDir()
	users := new(mockUsers)
	svc := NewService(users, dir, "/static/")

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Role: domain.RoleArtist}, nil)
	users.On("UpdateProfilePic", mock.Anything, int64(5), "/static/profile_pics/5_me_on_stage.png").Return(nil)

	url, err := svc.UploadProfilePicture(context.Background(), 5, fileHeader(t, "me on stage.png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "/static/profile_pics/5_me_on_stage.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "profile_pics", "5_me_on_stage.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestService_UploadProfilePicture_NoSizeCap(t *testing.T) {
	dir := t.TempDir()
	users := new(mockUsers)
	svc := NewService(users, dir, "/static")

	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleArtist}, nil)
	users.On("UpdateProfilePic", mock.Anything, int64(3), "/static/profile_pics/3_poster.png").Return(nil)

	big := bytes.Repeat([]byte{0x89}, 11<<20)
	fh := fileHeader(t, "poster.png", big)
	require.Greater(t, fh.Size, int64(MultipartMemory))

	_, err := svc.UploadProfilePicture(context.Background(), 3, fh)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "profile_pics", "3_poster.png"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(big)), info.Size())
}

func TestService_UploadProfilePicture_Rejections(t *testing.T) {
	dir := t.TempDir()
	users := new(mockUsers)
	svc := NewService(users, dir, "/static")

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UploadProfilePicture(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = svc.UploadProfilePicture(context.Background(), 1, fileHeader(t, "doc.pdf", []byte("x")))
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = svc.UploadProfilePicture(context.Background(), 404, fileHeader(t, "a.png", []byte("x")))
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "profile_pics", "404_a.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestService_UploadOrganizerPicture_RequiresOrganizer(t *testing.T) {
	users := new(mockUsers)
	svc := NewService(users, t.TempDir(), "/static")

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleArtist}, nil)

	_, err := svc.UploadOrganizerPicture(context.Background(), 2, fileHeader(t, "a.png", []byte("x")))
	assert.ErrorIs(t, err, ErrUserNotFound)
	users.AssertNotCalled(t, "UpdateProfilePic", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Upload_RemovesFileWhenDBFails(t *testing.T) {
	dir := t.TempDir()
	users := new(mockUsers)
	svc := NewService(users, dir, "/static")

	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleOrganizer}, nil)
	users.On("UpdateProfilePic", mock.Anything, int64(3), mock.Anything).Return(errors.New("db locked"))

	_, err := svc.UploadOrganizerPicture(context.Background(), 3, fileHeader(t, "a.gif", []byte("gif")))
	assert.EqualError(t, err, "db locked")

	_, statErr := os.Stat(filepath.Join(dir, "profile_pics", "3_a.gif"))
	assert.True(t, os.IsNotExist(statErr))
}
