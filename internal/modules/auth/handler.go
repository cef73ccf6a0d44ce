package auth

import (
	"errors"
	"net/http"

	"gigbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}

// Register godoc
// @Summary		Register a user
// @Description	Creates an artist or organizer account. The password is stored as a bcrypt hash.
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"username, email, password, role"
// @Success		201	{object}	map[string]interface{}	"User registered"
// @Failure		400	{object}	map[string]interface{}	"Missing fields, invalid role or user already exists"
// @Failure		422	{object}	map[string]interface{}	"Persistence error"
// @Router		/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Role must be 'artist' or 'organizer'")
		case errors.Is(err, ErrUserAlreadyExists):
			response.Error(c, http.StatusBadRequest, "USER_EXISTS", "User already exists")
		default:
			response.PersistenceError(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": UserPublic{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	})
}

// Login godoc
// @Summary		Log in
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"username, password"
// @Success		200	{object}	map[string]interface{}	"access_token"
// @Failure		401	{object}	map[string]interface{}	"Invalid credentials"
// @Router		/login [POST]
func (h *Handler) Login(c *gin.Context) {
	// missing credentials are treated like wrong ones
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		return
	}

	token, _, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		response.Internal(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"access_token": token})
}
