package booking

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

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/book", h.CreateBooking)
	rg.GET("/organizer/bookings", h.ListForOrganizer)
	rg.GET("/artist/bookings", h.ListForArtist)
	rg.PUT("/artist/bookings/:id/status", h.UpdateStatus)
	rg.PATCH("/bookings/:id/mark_paid", h.MarkPaid)
}

// CreateBooking godoc
// @Summary		Book an artist
// @Description	Creates a booking in status requested and notifies the artist.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		request	body	CreateBookingRequest	true	"artist_id, event_date, price, message"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Failure		404	{object}	map[string]interface{}	"Artist not found"
// @Router		/book [POST]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Artist booked successfully",
		"booking": toBookingView(b),
	})
}

func (h *Handler) ListForOrganizer(c *gin.Context) {
	list, err := h.service.ListForOrganizer(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) ListForArtist(c *gin.Context) {
	list, err := h.service.ListForArtist(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

// UpdateStatus godoc
// @Summary		Change booking status
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id		path	int					true	"Booking ID"
// @Param		request	body	UpdateStatusRequest	true	"status"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Invalid status"
// @Failure		404	{object}	map[string]interface{}	"Booking not found or not owned by caller"
// @Router		/artist/bookings/{id}/status [PUT]
func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	// an empty body falls through to the status check
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.GetInt64("user_id"), bookingID, req.Status); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking status updated to " + req.Status})
}

// MarkPaid godoc
// @Summary		Mark booking as paid
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		403	{object}	map[string]interface{}	"Caller is not the booked artist"
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/bookings/{id}/mark_paid [PATCH]
func (h *Handler) MarkPaid(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.service.MarkPaid(c.Request.Context(), c.GetInt64("user_id"), bookingID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking marked as paid"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "artist_id, event_date (YYYY-MM-DD), price and message are required")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be one of requested, confirmed, rejected, completed")
	case errors.Is(err, ErrArtistNotFound):
		response.Error(c, http.StatusNotFound, "ARTIST_NOT_FOUND", "Artist not found")
	case errors.Is(err, ErrCallerNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Unauthorized")
	default:
		response.PersistenceError(c, err)
	}
}

func bookingIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}
