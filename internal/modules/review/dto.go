package review

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ArtistReviewView struct {
	ID      int64  `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	By      string `json:"by"`
}

type OrganizerReviewView struct {
	ID      int64  `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Artist  string `json:"artist"`
}
