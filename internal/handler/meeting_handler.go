package handler

import (
	"time"

	"shiftportal/internal/meeting"
	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type MeetingHandler struct {
	linker    meeting.LinkGenerator
	staffRepo repository.StaffRepository
}

func NewMeetingHandler(linker meeting.LinkGenerator, staffRepo repository.StaffRepository) *MeetingHandler {
	return &MeetingHandler{linker: linker, staffRepo: staffRepo}
}

type CreateMeetingRequest struct {
	MeetingType  string   `json:"meeting_type"` // "instant" or "scheduled"
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Duration     string   `json:"duration"`
	Participants []string `json:"participants"`
	Description  string   `json:"description"`
}

// CreateMeeting hands out a join link. Meetings are not persisted; the link
// itself is the product.
func (h *MeetingHandler) CreateMeeting(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	now := time.Now().Format(model.TimeLayout)

	switch req.MeetingType {
	case "instant":
		id, url := h.linker.NewLink()
		return c.JSON(fiber.Map{
			"message": "Meeting created",
			"meeting": fiber.Map{
				"id":         id,
				"url":        url,
				"type":       "instant",
				"created_by": actor.Username,
				"created_on": now,
			},
		})

	case "scheduled":
		if req.Title == "" || req.Date == "" || req.Time == "" || req.Duration == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
		}
		id, url := h.linker.NewLink()
		participants := req.Participants
		if participants == nil {
			participants = []string{}
		}
		return c.JSON(fiber.Map{
			"message": "Meeting created",
			"meeting": fiber.Map{
				"id":              id,
				"url":             url,
				"type":            "scheduled",
				"title":           req.Title,
				"date":            req.Date,
				"time":            req.Time,
				"duration":        req.Duration,
				"participants":    participants,
				"description":     req.Description,
				"created_by":      actor.Username,
				"created_by_name": actor.Name,
				"created_on":      now,
				"status":          "scheduled",
			},
		})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meeting type"})
	}
}

// GetStaffList feeds participant pickers and swap-partner dropdowns.
func (h *MeetingHandler) GetStaffList(c *fiber.Ctx) error {
	staff, err := h.staffRepo.ListByRole(model.RoleStaff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load staff list"})
	}

	list := make([]fiber.Map, 0, len(staff))
	for _, s := range staff {
		list = append(list, fiber.Map{
			"username": s.Username,
			"name":     s.Name,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Staff list retrieved",
		"staff":   list,
	})
}
