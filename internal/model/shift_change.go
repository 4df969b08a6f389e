package model

import (
	"database/sql/driver"
	"encoding/json"
)

// ShiftDetails is the snapshot of a shift taken when a change request is
// created. It is the system of record for display from then on, even if the
// live shift record later changes.
type ShiftDetails struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Branch string `json:"branch"`
	Role   string `json:"role"`
}

func (d ShiftDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ShiftDetails) Scan(value interface{}) error {
	raw, err := asBytes(value)
	if err != nil {
		return err
	}
	if json.Unmarshal(raw, d) != nil {
		*d = ShiftDetails{}
	}
	return nil
}

// ShiftChangeRequest is the two-gate swap workflow record: the target staff
// member accepts first, then an admin decides. Status is only ever written
// through the transition table in transition.go.
type ShiftChangeRequest struct {
	ID                 string        `gorm:"primaryKey;size:36" json:"id"`
	RequestingUsername string        `gorm:"index;size:64" json:"requesting_username"`
	RequestingName     string        `json:"requesting_name"`
	ShiftID            string        `gorm:"size:36" json:"shift_id"`
	ShiftDetails       ShiftDetails  `gorm:"type:text" json:"shift_details"`
	TargetUsername     string        `gorm:"index;size:64" json:"target_username"`
	TargetName         string        `json:"target_name"`
	TargetShiftID      *string       `gorm:"size:36" json:"target_shift_id"`
	TargetShiftDetails *ShiftDetails `gorm:"type:text" json:"target_shift_details"`
	Reason             string        `json:"reason"`
	Status             string        `json:"status"`
	TargetAccepted     bool          `json:"target_accepted"`
	AdminApproved      bool          `json:"admin_approved"`
	SubmittedOn        string        `json:"submitted_on"`
	TargetRespondedOn  *string       `json:"target_responded_on,omitempty"`
	AdminUsername      *string       `json:"admin_username,omitempty"`
	AdminRespondedOn   *string       `json:"admin_responded_on,omitempty"`
}
