package handler

import (
	"time"

	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	staffRepo repository.StaffRepository
}

func NewAuthHandler(staffRepo repository.StaffRepository) *AuthHandler {
	return &AuthHandler{staffRepo: staffRepo}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	// 1. Look up the account
	staff, err := h.staffRepo.FindByUsername(req.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	// 2. Check the password
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	// 3. Mint the JWT
	token, err := generateToken(staff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"data": fiber.Map{
			"username": staff.Username,
			"name":     staff.Name,
			"role":     staff.Role,
		},
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	staff, err := h.staffRepo.FindByUsername(actor.Username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"message": "Profile retrieved",
		"data":    staff,
	})
}

func generateToken(staff *model.Staff) (string, error) {
	claims := jwt.MapClaims{
		"username": staff.Username,
		"name":     staff.Name,
		"role":     staff.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}
