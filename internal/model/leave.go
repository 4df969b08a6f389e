package model

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest is a single-gate request: one admin decision and done.
// Start/end dates are stored exactly as submitted; the portal has never
// validated their ordering and callers depend on the permissive behavior.
type LeaveRequest struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Username    string  `gorm:"index;size:64" json:"username"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	SubmittedOn string  `json:"submitted_on"`
	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	ReviewedOn  *string `json:"reviewed_on,omitempty"`
}
