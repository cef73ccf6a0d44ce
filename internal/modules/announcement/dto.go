package announcement

import (
	"time"

	"gigbook/internal/domain"
)

type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AnnouncementResponse struct {
	ID         int64  `json:"id"`
	ArtistID   int64  `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

func toResponses(list []domain.Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(list))
	for _, a := range list {
		name := a.ArtistName
		if name == "" {
			name = "Unknown"
		}
		out = append(out, AnnouncementResponse{
			ID:         a.ID,
			ArtistID:   a.ArtistID,
			ArtistName: name,
			Title:      a.Title,
			Content:    a.Content,
			CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
