package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/vivekd2000/Be-fit/internal/models"
	"github.com/vivekd2000/Be-fit/internal/repository"
)

type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, input repository.UpdateProfileInput) (*models.User, error)
	AppendSuggestionHistory(ctx context.Context, userID int64, entry models.SuggestionEntry) error
}

type recommender interface {
	Recommend(user *models.User) []models.Supplement
}

type UserHandler struct {
	userRepo              userStore
	recommendationService recommender
}

func NewUserHandler(userRepo userStore, recommendationService recommender) *UserHandler {
	return &UserHandler{
		userRepo:              userRepo,
		recommendationService: recommendationService,
	}
}

type updateProfileRequest struct {
	HealthMetrics         models.HealthMetrics         `json:"healthMetrics"`
	FitnessProfile        models.FitnessProfile        `json:"fitnessProfile"`
	DietaryPreferences    models.DietaryPreferences    `json:"dietaryPreferences"`
	SupplementPreferences models.SupplementPreferences `json:"supplementPreferences"`
	OtherPreferences      models.OtherPreferences      `json:"otherPreferences"`
	Consent               *bool                        `json:"consent"`
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return c.JSON(user)
}

// UpdateProfile replaces every profile section with the submitted document.
// There is no partial merge: a valid update overwrites all sections at once,
// and any validation error rejects the whole update.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if errs := validateUserProfile(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, err := h.userRepo.UpdateProfile(c.Context(), userID, repository.UpdateProfileInput{
		HealthMetrics:         req.HealthMetrics,
		FitnessProfile:        req.FitnessProfile,
		DietaryPreferences:    req.DietaryPreferences,
		SupplementPreferences: req.SupplementPreferences,
		OtherPreferences:      req.OtherPreferences,
		Consent:               *req.Consent,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return c.JSON(user)
}

func (h *UserHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	matches := h.recommendationService.Recommend(user)
	recommendations := make([]models.Recommendation, 0, len(matches))
	names := make([]string, 0, len(matches))
	for _, supp := range matches {
		recommendations = append(recommendations, models.Recommendation{
			Supplement:          supp,
			ScientificReasoning: scientificReasoning(supp),
		})
		names = append(names, supp.Name)
	}

	entry := models.SuggestionEntry{Supplements: names, SuggestedAt: time.Now().UTC()}
	if err := h.userRepo.AppendSuggestionHistory(c.Context(), userID, entry); err != nil {
		// The suggestion log is best-effort; the response still goes out.
		log.Printf("failed to append suggestion history for user %d: %v", userID, err)
	}

	return c.JSON(fiber.Map{"recommendations": recommendations})
}

func scientificReasoning(supp models.Supplement) string {
	if supp.ScientificBacking {
		return "This supplement is supported by credible research. " + supp.Description
	}
	return "Caution: This supplement lacks credible scientific backing. " + supp.Description
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, errors.New("missing user_id")
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
