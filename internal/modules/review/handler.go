package review

import (
	"errors"
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
	r.GET("/reviews/artist/:id", h.ListForArtist)
	r.GET("/reviews/organizer/:id", h.ListForOrganizer)
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/reviews/:booking_id", middleware.OrganizerOnly(), h.Create)
}

// Create godoc
// @Summary		Review a completed booking
// @Tags		Reviews
// @Security	BearerAuth
// @Param		booking_id	path	int					true	"Booking ID"
// @Param		request		body	CreateReviewRequest	true	"rating (1-5), comment"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Booking not completed or rating out of range"
// @Failure		404	{object}	map[string]interface{}	"Booking not found or unauthorized"
// @Router		/reviews/{booking_id} [POST]
func (h *Handler) Create(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	// a missing or malformed body leaves rating at 0, which fails the range check
	// after the booking checks
	var req CreateReviewRequest
	_ = c.ShouldBindJSON(&req)

	if _, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), bookingID, req); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found or unauthorized")
		case errors.Is(err, ErrReviewerNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		case errors.Is(err, ErrReviewNotAllowed):
			response.Error(c, http.StatusBadRequest, "REVIEW_NOT_ALLOWED", "You can only review completed bookings")
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		default:
			response.PersistenceError(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Review posted successfully"})
}

func (h *Handler) ListForArtist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}
	list, err := h.service.ListForArtist(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": list})
}

func (h *Handler) ListForOrganizer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid organizer ID")
		return
	}
	list, err := h.service.ListForOrganizer(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": list})
}
