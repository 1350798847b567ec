package service

import (
	"context"
	"errors"
	"time"

	"smartcloth/internal/engine"
	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

// deviceStateRowID is the single snapshot row the schema allows.
const deviceStateRowID = 1

// ErrNotStarted is returned while the engine has not run its first poll.
var ErrNotStarted = errors.New("engine not started")

type MonitoringService struct {
	engine    EngineView
	snapshots repository.SnapshotRepo
	display   *DisplayHub
}

func NewMonitoringService(e EngineView, snapshots repository.SnapshotRepo, display *DisplayHub) *MonitoringService {
	return &MonitoringService{engine: e, snapshots: snapshots, display: display}
}

// GetState returns the live engine state. Before the engine published
// anything it falls back to the persisted snapshot, and to a baseline Init
// row if none was ever saved.
func (s *MonitoringService) GetState(ctx context.Context) (models.DeviceState, error) {
	if snap, ok := s.engine.Snapshot(); ok {
		return deviceState(snap), nil
	}
	state, err := s.snapshots.Load(ctx)
	if err != nil {
		return models.DeviceState{}, err
	}
	if state.ID == 0 {
		return baselineState(), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// Snapshot returns the full engine snapshot.
func (s *MonitoringService) Snapshot(context.Context) (engine.Snapshot, error) {
	snap, ok := s.engine.Snapshot()
	if !ok {
		return engine.Snapshot{}, ErrNotStarted
	}
	return snap, nil
}

// Display returns the view on the screen right now.
func (s *MonitoringService) Display(context.Context) (engine.View, error) {
	if v, ok := s.display.Last(); ok {
		return v, nil
	}
	return engine.View{}, ErrNotStarted
}

func (s *MonitoringService) Subscribe() (<-chan engine.View, func()) {
	return s.display.Subscribe()
}

func deviceState(s engine.Snapshot) models.DeviceState {
	return models.DeviceState{
		ID:         deviceStateRowID,
		State:      s.Actual.String(),
		PrevState:  s.Prev.String(),
		LastValid:  s.LastValid.String(),
		LastEvent:  s.LastEvent.String(),
		Screen:     string(s.View.Screen),
		Group:      s.Group.Name,
		Processing: string(s.Processing),
		ScaleGrams: s.Weights.Scale,
		Meal:       s.Meal,
		Diary:      s.Diary,
		StickyErr:  s.Sticky,
		UpdatedAt:  toUTC(s.At),
	}
}

// baselineState is what a device that never ran reports.
func baselineState() models.DeviceState {
	return models.DeviceState{
		ID:        deviceStateRowID,
		State:     engine.StateInit.String(),
		LastValid: engine.StateInit.String(),
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
