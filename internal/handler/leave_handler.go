package handler

import (
	"time"

	"shiftportal/internal/access"
	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LeaveHandler struct {
	repo repository.LeaveRepository
}

func NewLeaveHandler(repo repository.LeaveRepository) *LeaveHandler {
	return &LeaveHandler{repo: repo}
}

type LeaveSubmitRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req LeaveSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}

	// Dates are taken as submitted; start after end has always been accepted
	request := model.LeaveRequest{
		ID:          uuid.NewString(),
		Username:    actor.Username,
		Name:        actor.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Status:      model.LeavePending,
		SubmittedOn: time.Now().Format(model.TimeLayout),
	}

	if err := h.repo.Create(&request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit leave request"})
	}

	return c.JSON(fiber.Map{
		"message":       "Leave request submitted",
		"leave_request": request,
	})
}

func (h *LeaveHandler) GetLeaveRequests(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	requests, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load leave requests"})
	}

	visible := access.Visible(requests, actor, func(r model.LeaveRequest) string { return r.Username })

	return c.JSON(fiber.Map{
		"message":        "Leave requests retrieved",
		"leave_requests": visible,
	})
}

type LeaveApprovalRequest struct {
	LeaveID string `json:"leave_id"`
	Status  string `json:"status"` // "approved" or "rejected"
}

func (h *LeaveHandler) ProcessApproval(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req LeaveApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}
	if req.Status != model.LeaveApproved && req.Status != model.LeaveRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid approval status"})
	}

	request, err := h.repo.GetByID(req.LeaveID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}

	// Re-deciding an already-decided request is allowed; last write wins
	now := time.Now().Format(model.TimeLayout)
	request.Status = req.Status
	request.ReviewedBy = &actor.Username
	request.ReviewedOn = &now

	if err := h.repo.Update(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave request"})
	}

	return c.JSON(fiber.Map{
		"message":       "Leave request updated",
		"leave_request": request,
	})
}
