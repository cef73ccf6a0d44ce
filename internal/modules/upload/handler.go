package upload

import (
	"errors"
	"net/http"

	"gigbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler handles profile picture uploads.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/api/profile/picture", h.UploadProfilePicture)
	r.POST("/api/organizer/profile/picture", h.UploadOrganizerPicture)
}

func (h *Handler) UploadProfilePicture(c *gin.Context) {
	// a missing part is reported by the service as ErrNoFile
	fh, _ := c.FormFile("picture")
	url, err := h.service.UploadProfilePicture(c.Request.Context(), c.GetInt64("user_id"), fh)
	h.respond(c, url, err)
}

func (h *Handler) UploadOrganizerPicture(c *gin.Context) {
	fh, _ := c.FormFile("picture")
	url, err := h.service.UploadOrganizerPicture(c.Request.Context(), c.GetInt64("user_id"), fh)
	h.respond(c, url, err)
}

func (h *Handler) respond(c *gin.Context, url string, err error) {
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile):
			response.Error(c, http.StatusBadRequest, "NO_FILE", "No file part")
		case errors.Is(err, ErrInvalidFileType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Invalid file type")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		default:
			response.PersistenceError(c, err)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile_pic_url": url})
}
