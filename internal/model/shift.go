package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const TimeLayout = "2006-01-02 15:04:05"

// Location is where a clock event happened. Stored as a JSON column; a
// payload that no longer parses loads as the zero value instead of failing
// the whole query, so one bad row never takes down a listing.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	raw, err := asBytes(value)
	if err != nil {
		return err
	}
	if json.Unmarshal(raw, l) != nil {
		*l = Location{}
	}
	return nil
}

// Shift is one clock-in/clock-out interval. Created on clock-in, updated
// once on clock-out, never deleted.
type Shift struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Username         string    `gorm:"index;size:64" json:"username"`
	Name             string    `json:"name"`
	Branch           string    `json:"branch"` // display name resolved at clock-in
	Role             string    `json:"role"`
	ClockInTime      string    `json:"clock_in_time"`
	ClockOutTime     *string   `json:"clock_out_time"`
	ClockInLocation  Location  `gorm:"type:text" json:"clock_in_location"`
	ClockOutLocation *Location `gorm:"type:text" json:"clock_out_location"`
}

func asBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return []byte("null"), nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}
