package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftportal/internal/access"
	"shiftportal/internal/mailer"
	"shiftportal/internal/middleware"
	"shiftportal/internal/model"
	"shiftportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShiftChangeHandler struct {
	repo      repository.ShiftChangeRepository
	shiftRepo repository.ShiftRepository
	staffRepo repository.StaffRepository
	notifier  mailer.Mailer
}

func NewShiftChangeHandler(repo repository.ShiftChangeRepository, shiftRepo repository.ShiftRepository, staffRepo repository.StaffRepository, notifier mailer.Mailer) *ShiftChangeHandler {
	return &ShiftChangeHandler{repo: repo, shiftRepo: shiftRepo, staffRepo: staffRepo, notifier: notifier}
}

type ShiftChangeCreateRequest struct {
	ShiftID        string  `json:"shift_id"`
	TargetUsername string  `json:"target_username"`
	TargetShiftID  *string `json:"target_shift_id"`
	Reason         string  `json:"reason"`
}

func (h *ShiftChangeHandler) Create(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req ShiftChangeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}
	if req.ShiftID == "" || req.TargetUsername == "" || req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	// 1. The swap partner has to exist
	target, err := h.staffRepo.FindByUsername(req.TargetUsername)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Target staff not found"})
	}

	// 2. So does the requester's own shift
	requestingShift, err := h.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	// 3. And, if named, the shift being asked for in return
	var targetDetails *model.ShiftDetails
	if req.TargetShiftID != nil && *req.TargetShiftID != "" {
		targetShift, err := h.shiftRepo.GetByID(*req.TargetShiftID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Target shift not found"})
		}
		details := snapshotShift(targetShift)
		targetDetails = &details
	} else {
		req.TargetShiftID = nil
	}

	// Snapshots taken here are what reviewers see later, even if the live
	// shift records change in the meantime
	request := model.ShiftChangeRequest{
		ID:                 uuid.NewString(),
		RequestingUsername: actor.Username,
		RequestingName:     actor.Name,
		ShiftID:            req.ShiftID,
		ShiftDetails:       snapshotShift(requestingShift),
		TargetUsername:     req.TargetUsername,
		TargetName:         target.Name,
		TargetShiftID:      req.TargetShiftID,
		TargetShiftDetails: targetDetails,
		Reason:             req.Reason,
		Status:             model.ChangePending,
		TargetAccepted:     false,
		AdminApproved:      false,
		SubmittedOn:        time.Now().Format(model.TimeLayout),
	}

	if err := h.repo.Create(&request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save shift change request"})
	}

	go h.notifier.Notify(target.Email, "Shift change requested",
		fmt.Sprintf("%s asked to swap a shift with you: %s", actor.Name, request.Reason))

	return c.JSON(fiber.Map{
		"message":              "Shift change request submitted",
		"shift_change_request": request,
	})
}

func (h *ShiftChangeHandler) GetShiftChangeRequests(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	requests, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load shift change requests"})
	}

	// Staff see a request when they are on either side of the swap
	visible := access.Visible(requests, actor,
		func(r model.ShiftChangeRequest) string { return r.RequestingUsername },
		func(r model.ShiftChangeRequest) string { return r.TargetUsername },
	)

	return c.JSON(fiber.Map{
		"message":               "Shift change requests retrieved",
		"shift_change_requests": visible,
	})
}

type ShiftChangeRespondRequest struct {
	RequestID string `json:"request_id"`
	Accept    *bool  `json:"accept"`
}

func (h *ShiftChangeHandler) Respond(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req ShiftChangeRespondRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}
	if req.Accept == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid response parameter"})
	}

	// A request that exists but targets someone else is reported exactly
	// like a missing one
	request, err := h.repo.GetByIDAndTarget(req.RequestID, actor.Username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift change request not found or not targeted at you"})
	}

	now := time.Now().Format(model.TimeLayout)
	if err := request.ApplyTargetResponse(*req.Accept, now); err != nil {
		if errors.Is(err, model.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Shift change request already resolved"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update shift change request"})
	}

	if err := h.repo.Update(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update shift change request"})
	}

	h.notifyRequester(request, fmt.Sprintf("%s responded to your shift change request: %s", request.TargetName, request.Status))

	return c.JSON(fiber.Map{
		"message":              "Response recorded",
		"shift_change_request": request,
	})
}

type ShiftChangeApprovalRequest struct {
	RequestID string `json:"request_id"`
	Approve   *bool  `json:"approve"`
}

func (h *ShiftChangeHandler) ProcessApproval(c *fiber.Ctx) error {
	actor := middleware.ActorFromContext(c)

	var req ShiftChangeApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request data"})
	}
	if req.Approve == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid approval parameter"})
	}

	request, err := h.repo.GetByID(req.RequestID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift change request not found"})
	}

	// Admin decision requires prior target acceptance; note the approval
	// never rewrites the underlying shift assignments
	now := time.Now().Format(model.TimeLayout)
	if err := request.ApplyAdminDecision(actor.Username, *req.Approve, now); err != nil {
		if errors.Is(err, model.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Shift change request is not awaiting admin approval"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update shift change request"})
	}

	if err := h.repo.Update(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update shift change request"})
	}

	h.notifyRequester(request, fmt.Sprintf("An administrator marked your shift change request as %s", request.Status))

	return c.JSON(fiber.Map{
		"message":              "Decision recorded",
		"shift_change_request": request,
	})
}

func (h *ShiftChangeHandler) notifyRequester(request *model.ShiftChangeRequest, body string) {
	requester, err := h.staffRepo.FindByUsername(request.RequestingUsername)
	if err != nil {
		return
	}
	go h.notifier.Notify(requester.Email, "Shift change request update", body)
}

// snapshotShift freezes the display fields of a shift into the request.
// Clock-in times are stored as "YYYY-MM-DD HH:MM:SS", so the date is the
// first word and the time the second.
func snapshotShift(shift *model.Shift) model.ShiftDetails {
	details := model.ShiftDetails{
		Branch: shift.Branch,
		Role:   shift.Role,
	}
	parts := strings.SplitN(shift.ClockInTime, " ", 2)
	if len(parts) == 2 {
		details.Date = parts[0]
		details.Time = parts[1]
	} else {
		details.Date = shift.ClockInTime
	}
	return details
}
