package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vivekd2000/Be-fit/internal/catalog"
	"github.com/vivekd2000/Be-fit/internal/config"
	"github.com/vivekd2000/Be-fit/internal/handlers"
	"github.com/vivekd2000/Be-fit/internal/middleware"
	"github.com/vivekd2000/Be-fit/internal/repository"
	"github.com/vivekd2000/Be-fit/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)

	var sender services.OTPSender
	if cfg.ResendAPIKey != "" && cfg.EmailFrom != "" {
		sender = services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		sender = services.NewLogSender()
	}

	otpService := services.NewOTPService(userRepo, sender)
	recommendationService := services.NewRecommendationService(catalog.New())

	authHandler := handlers.NewAuthHandler(otpService, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userRepo, recommendationService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify-otp", authHandler.VerifyOTP)

	user := api.Group("/user", middleware.AuthRequired(cfg.JWTSecret))
	user.Get("/profile", userHandler.GetProfile)
	user.Post("/update", userHandler.UpdateProfile)
	user.Get("/recommendations", userHandler.GetRecommendations)
}
