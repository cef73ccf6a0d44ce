package notification

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gigbook/internal/domain"
	"gigbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type NotificationResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func toResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Content:   n.Content,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) RegisterRoutes(protected gin.IRouter) {
	g := protected.Group("/notifications")
	{
		g.GET("", h.GetNotifications)
		g.GET("/unread-count", h.GetUnreadCount)
		g.PATCH("/:id/read", h.MarkAsRead)
		g.PATCH("/read-all", h.MarkAllAsRead)
	}
}

func (h *Handler) GetNotifications(c *gin.Context) {
	list, unread, err := h.service.GetUserNotifications(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}

	items := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toResponse(n))
	}
	response.Success(c, http.StatusOK, gin.H{
		"notifications": items,
		"unread_count":  unread,
	})
}

func (h *Handler) GetUnreadCount(c *gin.Context) {
	cnt, err := h.service.UnreadCount(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": cnt})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.PersistenceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	n, err := h.service.MarkAllAsRead(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.PersistenceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": n})
}
