package main

import (
	"context"
	"time"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/domain"
	"gigbook/internal/pkg/logger"
	"gigbook/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Quiet: true})
	if err != nil {
		logger.Fatal().Err(err).Msg("DB connection failed")
	}
	defer database.Close(db)

	logger.Info().Msg("running AutoMigrate")
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	logger.Info().Msg("cleaning old data")
	if err := wipe(db); err != nil {
		logger.Fatal().Err(err).Msg("cleanup failed")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	// ================== USERS ==================
	artist := mustCreateUser(ctx, users, "demo_artist", "artist@gigbook.local", "artist123", domain.RoleArtist)
	organizer := mustCreateUser(ctx, users, "demo_organizer", "organizer@gigbook.local", "organizer123", domain.RoleOrganizer)
	if err := users.UpdateBio(ctx, organizer.ID, "We run rooftop parties every summer."); err != nil {
		logger.Fatal().Err(err).Msg("organizer bio")
	}

	// ================== PROFILE ==================
	_, err = repository.NewArtistProfileRepository(db).Upsert(ctx, &domain.ArtistProfile{
		ArtistID:    artist.ID,
		Bio:         "Five-piece funk band from the coast.",
		Genres:      "funk, soul",
		MediaLinks:  "https://example.com/demo-band",
		PricingInfo: "from 1500 per evening",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("artist profile")
	}

	// ================== AVAILABILITY ==================
	availability := repository.NewAvailabilityRepository(db)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 1; i <= 14; i++ {
		err := availability.Upsert(ctx, &domain.Availability{
			ArtistID:    artist.ID,
			Date:        today.AddDate(0, 0, i),
			IsAvailable: i%3 != 0,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("availability")
		}
	}

	// ================== ANNOUNCEMENTS ==================
	err = repository.NewAnnouncementRepository(db).Create(ctx, &domain.Announcement{
		ArtistID: artist.ID,
		Title:    "Booking the autumn season",
		Content:  "Weekends in October are open. Send a request with your event date.",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("announcement")
	}

	logger.Info().
		Str("artist", "demo_artist / artist123").
		Str("organizer", "demo_organizer / organizer123").
		Msg("seed completed")
}

func wipe(db *gorm.DB) error {
	// children first
	for _, table := range []string{
		"notifications", "reviews", "bookings", "announcements",
		"availabilities", "artist_profiles", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func mustCreateUser(ctx context.Context, users *repository.UserRepository, username, email, password string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash password")
	}
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := users.Create(ctx, u); err != nil {
		logger.Fatal().Err(err).Str("username", username).Msg("create user")
	}
	logger.Info().Str("username", username).Str("role", string(role)).Int64("id", u.ID).Msg("user created")
	return u
}
