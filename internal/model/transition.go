package model

import "errors"

const (
	ChangePending         = "pending"
	ChangeAwaitingAdmin   = "awaiting_admin"
	ChangeRejectedByStaff = "rejected_by_staff"
	ChangeApproved        = "approved"
	ChangeRejectedByAdmin = "rejected_by_admin"
)

const (
	ActionRespond = "respond"
	ActionDecide  = "decide"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var transitionMap = map[string][]string{
	ActionRespond: {ChangePending},
	ActionDecide:  {ChangeAwaitingAdmin},
}

func ValidTransition(action, fromStatus string) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

// ApplyTargetResponse records the target staff member's accept/decline.
// Only legal while the request is still pending; terminal requests stay
// terminal.
func (r *ShiftChangeRequest) ApplyTargetResponse(accept bool, respondedOn string) error {
	if !ValidTransition(ActionRespond, r.Status) {
		return ErrInvalidTransition
	}
	r.TargetAccepted = accept
	r.TargetRespondedOn = &respondedOn
	if accept {
		r.Status = ChangeAwaitingAdmin
	} else {
		r.Status = ChangeRejectedByStaff
	}
	return nil
}

// ApplyAdminDecision records the admin's approve/reject. Only legal once the
// target has accepted, so an admin can never decide a request the target
// declined or has not seen yet.
func (r *ShiftChangeRequest) ApplyAdminDecision(adminUsername string, approve bool, respondedOn string) error {
	if !ValidTransition(ActionDecide, r.Status) {
		return ErrInvalidTransition
	}
	r.AdminApproved = approve
	r.AdminUsername = &adminUsername
	r.AdminRespondedOn = &respondedOn
	if approve {
		r.Status = ChangeApproved
	} else {
		r.Status = ChangeRejectedByAdmin
	}
	return nil
}
