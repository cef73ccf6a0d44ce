package organizer

import (
	"errors"
	"net/http"
	"strconv"

	"gigbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/organizer/profile", h.UpdateProfile)
	r.GET("/api/organizers/:id", h.Get)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req.Bio); err != nil {
		if errors.Is(err, ErrOrganizerNotFound) {
			response.Error(c, http.StatusNotFound, "ORGANIZER_NOT_FOUND", "Organizer not found")
			return
		}
		response.PersistenceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Organizer profile updated successfully"})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid organizer ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOrganizerNotFound) {
			response.Error(c, http.StatusNotFound, "ORGANIZER_NOT_FOUND", "Organizer not found")
			return
		}
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"organizer": p})
}
