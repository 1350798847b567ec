package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smartcloth/internal/models"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeInputs struct {
	signals []Signal
}

func (f *fakeInputs) Next(float64) (Signal, bool) {
	if len(f.signals) == 0 {
		return Signal{}, false
	}
	s := f.signals[0]
	f.signals = f.signals[1:]
	return s, true
}

func (f *fakeInputs) ButtonPending() bool {
	return len(f.signals) > 0 && f.signals[0].Event.IsButton()
}

type fakeScale struct{ tares int }

func (f *fakeScale) Tare() { f.tares++ }

type fakeStore struct {
	checkErr      error
	commitMealErr error
	deleteErr     error

	plates   []models.Plate
	meals    []models.Meal
	pending  []models.Meal
	uploaded []string
	deleted  int
	diary    models.Diary
}

func (f *fakeStore) Check(context.Context) error { return f.checkErr }

func (f *fakeStore) CommitPlate(_ context.Context, p models.Plate) error {
	f.plates = append(f.plates, p)
	return nil
}

func (f *fakeStore) CommitMeal(_ context.Context, m models.Meal) (string, error) {
	if f.commitMealErr != nil {
		return "", f.commitMealErr
	}
	f.meals = append(f.meals, m)
	return "meal-1", nil
}

func (f *fakeStore) MarkUploaded(_ context.Context, id string) error {
	f.uploaded = append(f.uploaded, id)
	return nil
}

func (f *fakeStore) PendingMeals(context.Context) ([]models.Meal, error) { return f.pending, nil }

func (f *fakeStore) DeleteLog(context.Context) error {
	f.deleted++
	return f.deleteErr
}

func (f *fakeStore) DiaryTotals(context.Context) (models.Diary, error) { return f.diary, nil }

type fakeNetwork struct {
	connErr   error
	code      string
	readErr   error
	product   models.Product
	lookupErr error
	uploadErr error

	uploads []models.Meal
}

func (f *fakeNetwork) CheckConnectivity(context.Context) error { return f.connErr }

func (f *fakeNetwork) ReadBarcode(_ context.Context, interrupted func() bool) (string, error) {
	if interrupted() {
		return "", ErrInterrupted
	}
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.code, nil
}

func (f *fakeNetwork) LookupProduct(context.Context, string) (models.Product, error) {
	if f.lookupErr != nil {
		return models.Product{}, f.lookupErr
	}
	return f.product, nil
}

func (f *fakeNetwork) UploadMeal(_ context.Context, m models.Meal) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, m)
	return nil
}

type fakeDisplay struct{ views []View }

func (f *fakeDisplay) Show(v View) { f.views = append(f.views, v) }

func (f *fakeDisplay) last() View {
	if len(f.views) == 0 {
		return View{}
	}
	return f.views[len(f.views)-1]
}

type recordingObserver struct{ transitions []Transition }

func (o *recordingObserver) Transition(_ context.Context, t Transition) {
	o.transitions = append(o.transitions, t)
}

var errBoom = errors.New("boom")

type harness struct {
	t       *testing.T
	e       *Engine
	clock   *fakeClock
	in      *fakeInputs
	scale   *fakeScale
	store   *fakeStore
	net     *fakeNetwork
	display *fakeDisplay
	obs     *recordingObserver
}

// newHarness builds an engine over fakes, lets setup adjust them, then boots
// and runs the first poll.
func newHarness(t *testing.T, setup ...func(*harness)) *harness {
	t.Helper()
	h := &harness{
		t:       t,
		clock:   &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		in:      &fakeInputs{},
		scale:   &fakeScale{},
		store:   &fakeStore{},
		net:     &fakeNetwork{code: "8410076472885", product: models.Product{Barcode: "8410076472885", Name: "Crackers", PerGram: models.Nutrients{Kcal: 4.5}}},
		display: &fakeDisplay{},
		obs:     &recordingObserver{},
	}
	for _, fn := range setup {
		fn(h)
	}
	e, err := New(DefaultConfig(), Deps{
		Display:  h.display,
		Store:    h.store,
		Network:  h.net,
		Scale:    h.scale,
		Inputs:   h.in,
		Clock:    h.clock,
		Observer: h.obs,
	})
	require.NoError(t, err)
	h.e = e
	h.poll()
	return h
}

func (h *harness) poll() { h.e.Poll(context.Background()) }

// feed queues one signal and runs one poll.
func (h *harness) feed(ev Event, group int, weight float64) {
	h.in.signals = append(h.in.signals, Signal{Event: ev, Group: group, Weight: weight})
	h.poll()
}

func (h *harness) press(ev Event) { h.feed(ev, 0, 0) }

func (h *harness) group(id int) { h.feed(groupEvent(id), id, 0) }

func (h *harness) weigh(ev Event, grams float64) { h.feed(ev, 0, grams) }

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.poll()
}

func (h *harness) snap() Snapshot {
	s, ok := h.e.Snapshot()
	require.True(h.t, ok)
	return s
}

func (h *harness) requireState(want State) {
	h.t.Helper()
	require.Equal(h.t, want, h.snap().Actual, "dump:\n%s", h.e.Dump())
}

func groupEvent(id int) Event {
	if models.IsTypeA(id) {
		return EvGroupA
	}
	return EvGroupB
}

// toWeighed drives the engine from Init to Weighed with grams of raw food of
// group 7 on a 300 g container.
func (h *harness) toWeighed(grams float64) {
	h.weigh(EvScaleIncrement, 300)
	h.group(7)
	h.press(EvRaw)
	h.weigh(EvScaleIncrement, grams)
	h.requireState(StateWeighed)
}
