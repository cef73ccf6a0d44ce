package availability

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

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/artist/:id/availability", h.List)
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/artist/availability", h.Set)
}

func (h *Handler) Set(c *gin.Context) {
	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Set(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date (YYYY-MM-DD) and is_available are required")
			return
		}
		response.PersistenceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Availability updated"})
}

func (h *Handler) List(c *gin.Context) {
	artistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}

	entries, err := h.service.List(c.Request.Context(), artistID)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"availability": entries})
}
