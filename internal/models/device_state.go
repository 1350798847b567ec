package models

import "time"

// DeviceState is the persisted snapshot of the engine, one row per device.
type DeviceState struct {
	ID         int       `json:"id"`
	State      string    `json:"state"`
	PrevState  string    `json:"prev_state,omitempty"`
	LastValid  string    `json:"last_valid_state,omitempty"`
	LastEvent  string    `json:"last_event,omitempty"`
	Screen     string    `json:"screen,omitempty"`
	Group      string    `json:"group,omitempty"`
	Processing string    `json:"processing,omitempty"`
	ScaleGrams float64   `json:"scale_grams"`
	Meal       Meal      `json:"meal"`
	Diary      Diary     `json:"diary"`
	StickyErr  bool      `json:"sticky_error,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
