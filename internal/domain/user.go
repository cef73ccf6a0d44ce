package domain

import "time"

type UserRole string

const (
	RoleArtist    UserRole = "artist"
	RoleOrganizer UserRole = "organizer"
)

func (r UserRole) Valid() bool {
	return r == RoleArtist || r == RoleOrganizer
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name,omitempty"`
	ProfilePic   string    `json:"profile_pic,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfilePicURL returns the stored picture URL or nil when none was uploaded.
func (u *User) ProfilePicURL() *string {
	if u.ProfilePic == "" {
		return nil
	}
	url := u.ProfilePic
	return &url
}
