package organizer

type UpdateProfileRequest struct {
	Bio *string `json:"bio"`
}

type ProfileResponse struct {
	OrganizerID   int64   `json:"organizer_id"`
	Bio           string  `json:"bio"`
	Name          string  `json:"name"`
	ProfilePicURL *string `json:"profile_pic_url"`
}
