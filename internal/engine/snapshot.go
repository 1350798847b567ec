package engine

import (
	"time"

	"smartcloth/internal/models"
)

// Snapshot is a consistent copy of the engine taken at the end of a poll.
type Snapshot struct {
	Context
	Queue      []Event           `json:"queue"`
	Pending    []Event           `json:"pending,omitempty"`
	Weights    Weights           `json:"weights"`
	Group      models.FoodGroup  `json:"group"`
	Processing models.Processing `json:"processing,omitempty"`
	Plate      models.Plate      `json:"plate"`
	Meal       models.Meal       `json:"meal"`
	LastMeal   models.Meal       `json:"last_meal"`
	Diary      models.Diary      `json:"diary"`
	Product    *models.Product   `json:"product,omitempty"`
	LastSave   SaveOutcome       `json:"last_save,omitempty"`
	View       View              `json:"view"`
	Seq        uint64            `json:"seq"`
	At         time.Time         `json:"at"`
}

func (e *Engine) publish() {
	s := &Snapshot{
		Context:    e.ctx,
		Queue:      e.queue.Events(),
		Pending:    append([]Event(nil), e.raised...),
		Weights:    e.weights,
		Group:      e.group,
		Processing: e.processing,
		Plate:      e.plate.Clone(),
		Meal:       e.meal.Clone(),
		LastMeal:   e.mealCopy.Clone(),
		Diary:      e.diary,
		LastSave:   e.lastSave,
		View:       e.view,
		Seq:        e.seq,
		At:         e.clock.Now(),
	}
	if e.product != nil {
		p := *e.product
		s.Product = &p
	}
	e.snap.Store(s)
}

// Snapshot returns the state published by the last poll. It is safe to call
// from any goroutine. ok is false before the engine booted.
func (e *Engine) Snapshot() (Snapshot, bool) {
	s := e.snap.Load()
	if s == nil {
		return Snapshot{}, false
	}
	return *s, true
}

// State returns the current state as of the last poll.
func (e *Engine) State() State {
	s, ok := e.Snapshot()
	if !ok {
		return StateNone
	}
	return s.Actual
}
