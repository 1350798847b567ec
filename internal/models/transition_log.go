package models

import "time"

// TransitionLog is a single entry of the engine's transition history.
type TransitionLog struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // TRANSITION | ERROR | WARNING | CANCEL | SAVE | MAINTENANCE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
