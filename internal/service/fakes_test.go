package service

import (
	"context"
	"time"

	"smartcloth/internal/engine"
	"smartcloth/internal/models"
)

// fakeTransitionRepo satisfies repository.TransitionRepo.
type fakeTransitionRepo struct {
	gotFrom time.Time
	gotTo   time.Time
	gotType string

	entries   []models.TransitionLog
	err       error
	appendErr error

	appended []models.TransitionLog
	calls    int
}

func (f *fakeTransitionRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.TransitionLog, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.entries, f.err
}

func (f *fakeTransitionRepo) Append(_ context.Context, e models.TransitionLog) error {
	f.appended = append(f.appended, e)
	return f.appendErr
}

// fakeSnapshotRepo satisfies repository.SnapshotRepo.
type fakeSnapshotRepo struct {
	loadResp models.DeviceState
	loadErr  error
	saveErr  error
	saved    []models.DeviceState
}

func (s *fakeSnapshotRepo) Load(context.Context) (models.DeviceState, error) {
	return s.loadResp, s.loadErr
}

func (s *fakeSnapshotRepo) Save(_ context.Context, st models.DeviceState) error {
	s.saved = append(s.saved, st)
	return s.saveErr
}

// fakeMealRepo satisfies repository.MealRepo.
type fakeMealRepo struct {
	err error

	plates   []models.Plate
	meals    []models.Meal
	uploaded []string
	deleted  int

	gotFrom time.Time
	gotTo   time.Time
	diary   models.Diary
}

func (f *fakeMealRepo) Ping(context.Context) error { return f.err }

func (f *fakeMealRepo) InsertPlate(_ context.Context, p models.Plate) error {
	if f.err != nil {
		return f.err
	}
	f.plates = append(f.plates, p)
	return nil
}

func (f *fakeMealRepo) InsertMeal(_ context.Context, m models.Meal) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.meals = append(f.meals, m)
	return "meal-1", nil
}

func (f *fakeMealRepo) MarkUploaded(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.uploaded = append(f.uploaded, id)
	return nil
}

func (f *fakeMealRepo) Pending(context.Context) ([]models.Meal, error) { return f.meals, f.err }

func (f *fakeMealRepo) DeleteAll(context.Context) error {
	f.deleted++
	return f.err
}

func (f *fakeMealRepo) List(_ context.Context, from, to time.Time) ([]models.Meal, error) {
	f.gotFrom, f.gotTo = from, to
	return f.meals, f.err
}

func (f *fakeMealRepo) Totals(_ context.Context, from, to time.Time) (models.Diary, error) {
	f.gotFrom, f.gotTo = from, to
	return f.diary, f.err
}

// fakeEngine satisfies Engine. Each Poll runs onPoll, if set.
type fakeEngine struct {
	snap   engine.Snapshot
	booted bool
	polls  int
	onPoll func(*fakeEngine)
}

func (f *fakeEngine) Snapshot() (engine.Snapshot, bool) { return f.snap, f.booted }
func (f *fakeEngine) Rules() []engine.Rule              { return engine.DefaultRules() }
func (f *fakeEngine) Dump() string                      { return "state: INIT\n" }

func (f *fakeEngine) Poll(context.Context) {
	f.polls++
	if f.onPoll != nil {
		f.onPoll(f)
	}
}
