package handler

import (
	"time"

	"shiftportal/internal/access"
	"shiftportal/internal/geocode"
	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShiftHandler struct {
	repo       repository.ShiftRepository
	branchRepo repository.BranchRepository
	roleRepo   repository.RoleRepository
	geocoder   geocode.Geocoder
}

func NewShiftHandler(repo repository.ShiftRepository, branchRepo repository.BranchRepository, roleRepo repository.RoleRepository, geocoder geocode.Geocoder) *ShiftHandler {
	return &ShiftHandler{repo: repo, branchRepo: branchRepo, roleRepo: roleRepo, geocoder: geocoder}
}

type ClockInRequest struct {
	Branch    string  `json:"branch"`
	Role      string  `json:"role"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *ShiftHandler) ClockIn(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	// 1. Resolve branch and role display names; unknown ids degrade to
	// "Unknown" rather than blocking the clock-in
	branchName := "Unknown"
	if branch, err := h.branchRepo.GetByID(req.Branch); err == nil {
		branchName = branch.Name
	}
	roleName := "Unknown"
	if role, err := h.roleRepo.GetByID(req.Role); err == nil {
		roleName = role.Name
	}

	// 2. Best-effort address lookup, never fails the clock-in
	address := h.geocoder.ReverseGeocode(c.UserContext(), req.Latitude, req.Longitude)

	shift := model.Shift{
		ID:           uuid.NewString(),
		Username:     actor.Username,
		Name:         actor.Name,
		Branch:       branchName,
		Role:         roleName,
		ClockInTime:  time.Now().Format(model.TimeLayout),
		ClockOutTime: nil,
		ClockInLocation: model.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Address:   address,
		},
		ClockOutLocation: nil,
	}

	if err := h.repo.Create(&shift); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save shift"})
	}

	return c.JSON(fiber.Map{
		"message": "Clock-in successful",
		"shift":   shift,
	})
}

type ClockOutRequest struct {
	ShiftID   string  `json:"shift_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *ShiftHandler) ClockOut(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req ClockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	// Match by id AND owner: nobody closes someone else's shift
	shift, err := h.repo.GetByIDAndOwner(req.ShiftID, actor.Username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	// Clocking out twice re-stamps the record. Known permissive behavior.
	now := time.Now().Format(model.TimeLayout)
	address := h.geocoder.ReverseGeocode(c.UserContext(), req.Latitude, req.Longitude)
	shift.ClockOutTime = &now
	shift.ClockOutLocation = &model.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   address,
	}

	if err := h.repo.Update(shift); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save shift"})
	}

	return c.JSON(fiber.Map{
		"message": "Clock-out successful",
		"shift":   shift,
	})
}

func (h *ShiftHandler) GetShifts(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	shifts, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load shifts"})
	}

	visible := access.Visible(shifts, actor, func(s model.Shift) string { return s.Username })

	return c.JSON(fiber.Map{
		"message": "Shifts retrieved",
		"shifts":  visible,
	})
}
