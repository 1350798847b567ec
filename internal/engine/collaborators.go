package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartcloth/internal/models"
)

// Errors reported by the network collaborator. The engine turns each of
// them into a warning event; none is returned to the caller of Poll.
var (
	ErrNoConnectivity = errors.New("no connectivity")
	ErrTimeout        = errors.New("network timeout")
	ErrNotRead        = errors.New("barcode not read")
	ErrNotFound       = errors.New("product not found")
	ErrInterrupted    = errors.New("interrupted by button press")
)

// HTTPError is a failed remote call reported with its HTTP status.
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string { return fmt.Sprintf("remote http error %d", e.Code) }

// Display renders what the engine wants shown.
type Display interface {
	Show(View)
}

// Store is durable storage for plates and meals.
type Store interface {
	// Check reports whether storage is usable. A failure at boot is fatal.
	Check(ctx context.Context) error
	CommitPlate(ctx context.Context, plate models.Plate) error
	// CommitMeal closes every committed plate into a saved meal and returns its id.
	CommitMeal(ctx context.Context, meal models.Meal) (string, error)
	MarkUploaded(ctx context.Context, mealID string) error
	PendingMeals(ctx context.Context) ([]models.Meal, error)
	DeleteLog(ctx context.Context) error
	DiaryTotals(ctx context.Context) (models.Diary, error)
}

// Network is the barcode reader, product lookup and meal upload client.
type Network interface {
	CheckConnectivity(ctx context.Context) error
	// ReadBarcode waits for a scanned code. It returns ErrInterrupted as
	// soon as interrupted reports true.
	ReadBarcode(ctx context.Context, interrupted func() bool) (string, error)
	LookupProduct(ctx context.Context, code string) (models.Product, error)
	UploadMeal(ctx context.Context, meal models.Meal) error
}

// Scale accepts tare requests. Completion is reported back as EvScaleTare.
type Scale interface {
	Tare()
}

// Signal is one classified input: a domain event plus its payload.
type Signal struct {
	Event  Event   `json:"event"`
	Group  int     `json:"group,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// Inputs drains the event sources, at most one signal per call.
type Inputs interface {
	// Next returns the next signal. toRemove is the weight whose removal
	// counts as the container being lifted off the scale.
	Next(toRemove float64) (Signal, bool)
	// ButtonPending reports whether a button press is waiting.
	ButtonPending() bool
}

// Transition describes one move, handed to the Observer.
type Transition struct {
	From      State     `json:"from"`
	To        State     `json:"to"`
	Event     Event     `json:"event"`
	LastValid State     `json:"last_valid"`
	Sticky    bool      `json:"sticky,omitempty"`
	At        time.Time `json:"at"`
}

// Observer is notified after every transition.
type Observer interface {
	Transition(ctx context.Context, t Transition)
}

type nopObserver struct{}

func (nopObserver) Transition(context.Context, Transition) {}

type nopDisplay struct{}

func (nopDisplay) Show(View) {}
