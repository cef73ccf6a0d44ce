package router

import (
	"net/http"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/middleware"
	"gigbook/internal/modules/announcement"
	"gigbook/internal/modules/artist"
	"gigbook/internal/modules/auth"
	"gigbook/internal/modules/availability"
	"gigbook/internal/modules/booking"
	"gigbook/internal/modules/notification"
	"gigbook/internal/modules/organizer"
	"gigbook/internal/modules/review"
	"gigbook/internal/modules/upload"
	jwtsvc "gigbook/internal/pkg/jwt"
	"gigbook/internal/pkg/logger"
	"gigbook/internal/pkg/response"
	"gigbook/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers into a gin engine.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewArtistProfileRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwt))
	artistHandler := artist.NewHandler(artist.NewService(profileRepo, userRepo, bookingRepo, reviewRepo))
	availabilityHandler := availability.NewHandler(availability.NewService(availabilityRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, userRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, bookingRepo, userRepo))
	announcementHandler := announcement.NewHandler(announcement.NewService(announcementRepo))
	organizerHandler := organizer.NewHandler(organizer.NewService(userRepo))
	notificationHandler := notification.NewHandler(notification.NewService(notificationRepo))
	uploadHandler := upload.NewHandler(upload.NewService(userRepo, cfg.UploadDir, cfg.StaticURLPrefix))

	r := gin.New()
	r.MaxMultipartMemory = upload.MultipartMemory
	r.Use(
		middleware.RequestID(),
		logger.GinLogger(),
		logger.GinRecovery(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Static(cfg.StaticURLPrefix, cfg.UploadDir)
	r.GET("/health", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", err.Error())
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// public
	authHandler.RegisterPublicRoutes(r)
	artistHandler.RegisterPublicRoutes(r)
	availabilityHandler.RegisterPublicRoutes(r)
	reviewHandler.RegisterPublicRoutes(r)
	announcementHandler.RegisterPublicRoutes(r)

	protected := r.Group("")
	protected.Use(middleware.JWTAuth(jwt))
	{
		artistHandler.RegisterProtectedRoutes(protected)
		availabilityHandler.RegisterProtectedRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
		reviewHandler.RegisterProtectedRoutes(protected)
		announcementHandler.RegisterProtectedRoutes(protected)
		organizerHandler.RegisterProtectedRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
		uploadHandler.RegisterRoutes(protected)
	}

	return r
}
