package artist

import (
	"errors"
	"io"
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

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/artists", h.List)
	r.GET("/api/artists/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/artist/profile", h.UpsertProfile)
	r.GET("/artist/dashboard", h.Dashboard)
}

func (h *Handler) List(c *gin.Context) {
	artists, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artists": artists})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}

	artist, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			response.Error(c, http.StatusNotFound, "ARTIST_NOT_FOUND", "Artist not found")
			return
		}
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist": artist})
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	// an empty body clears the profile fields
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.UpsertProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.PersistenceError(c, err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, gin.H{"message": "Artist profile created successfully"})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Artist profile updated successfully"})
}

func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}
