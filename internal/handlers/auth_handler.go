package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vivekd2000/Be-fit/internal/models"
	"github.com/vivekd2000/Be-fit/internal/services"
	"github.com/vivekd2000/Be-fit/pkg/utils"
)

type otpFlow interface {
	IssueForRegistration(ctx context.Context, email string) error
	IssueForLogin(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) (*models.User, error)
}

type AuthHandler struct {
	otpService otpFlow
	jwtSecret  string
}

func NewAuthHandler(otpService otpFlow, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		otpService: otpService,
		jwtSecret:  jwtSecret,
	}
}

type otpRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Register creates the account on first contact and emails a fresh OTP.
// Calling it again for the same email just issues a new code.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req otpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}

	if err := h.otpService.IssueForRegistration(c.Context(), req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "OTP sent to email"})
}

// Login issues an OTP for an existing account.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req otpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}

	if err := h.otpService.IssueForLogin(c.Context(), req.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"message": "User not found, please register."})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "OTP sent to email"})
}

// VerifyOTP exchanges a pending code for a session token. The stored hash is
// cleared on success, so a code verifies at most once.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.Email == "" || req.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and OTP are required"})
	}

	user, err := h.otpService.Verify(c.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoPendingOTP):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request"})
		case errors.Is(err, services.ErrOTPMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid OTP"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"token": token})
}
