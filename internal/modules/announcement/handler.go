package announcement

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"gigbook/internal/middleware"
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
	r.GET("/announcements", h.ListAll)
	r.GET("/announcements/artist/:id", h.ListByArtist)
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/announcements", middleware.ArtistOnly(), h.Create)
	r.GET("/announcements/my", middleware.ArtistOnly(), h.ListMine)
}

func (h *Handler) Create(c *gin.Context) {
	// an empty body is reported by the service as missing fields
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and content are required")
			return
		}
		response.PersistenceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":         "Announcement created successfully",
		"announcement_id": a.ID,
	})
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": toResponses(list)})
}

func (h *Handler) ListMine(c *gin.Context) {
	list, err := h.service.ListByArtist(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": toResponses(list)})
}

func (h *Handler) ListByArtist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}
	list, err := h.service.ListByArtist(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": toResponses(list)})
}
