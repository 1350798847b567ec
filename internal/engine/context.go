package engine

import "time"

// Context is the mutable bookkeeping of the state machine.
type Context struct {
	Actual    State `json:"state"`
	Prev      State `json:"prev"`
	New       State `json:"new"`
	LastValid State `json:"last_valid"`
	LastEvent Event `json:"last_event"`
	EntryDone bool  `json:"entry_done"`
	Sticky    bool  `json:"sticky_error"`
}

// Weights tracks what is on the scale. Scale is the reading relative to the
// last tare; the other fields remember what was tared away so that lifting
// everything off can be recognised.
type Weights struct {
	Scale        float64 `json:"scale"`
	Container    float64 `json:"container"`
	ContainerSet bool    `json:"container_set"`
	Food         float64 `json:"food"`
	LastFood     float64 `json:"last_food"`
}

// ToRemove is the weight that must leave the scale for a release.
func (w Weights) ToRemove() float64 { return w.Container + w.Food + w.LastFood }

// saturate clamps readings under one gram to zero.
func saturate(grams float64) float64 {
	if grams < 1 {
		return 0
	}
	return grams
}

// page is one step of a display rotation.
type page struct {
	screen Screen
	hold   time.Duration
}

// rotation cycles through pages. After the last page it wraps to loopFrom,
// so leading pages are shown only once.
type rotation struct {
	pages    []page
	loopFrom int
	current  int
	since    time.Time
}

// timers is the per-visit timing state, reset on every non-self transition.
type timers struct {
	entered  time.Time
	deadline time.Time
	onExpiry Event
	rot      rotation
}

func (t *timers) reset(now time.Time) {
	*t = timers{entered: now}
}

// arm raises ev once d has elapsed since now.
func (t *timers) arm(now time.Time, d time.Duration, ev Event) {
	t.deadline = now.Add(d)
	t.onExpiry = ev
}

func (t *timers) disarm() {
	t.deadline = time.Time{}
	t.onExpiry = EvNone
}

// expired returns the armed event once its deadline has passed.
func (t *timers) expired(now time.Time) (Event, bool) {
	if t.onExpiry == EvNone || now.Before(t.deadline) {
		return EvNone, false
	}
	ev := t.onExpiry
	t.disarm()
	return ev, true
}

// rotate starts a rotation and returns the first screen.
func (t *timers) rotate(now time.Time, loopFrom int, pages ...page) Screen {
	t.rot = rotation{pages: pages, loopFrom: loopFrom, since: now}
	if len(pages) == 0 {
		return ""
	}
	return pages[0].screen
}

// advance moves the rotation on when the current page has been held long
// enough. It reports the new screen, if any.
func (t *timers) advance(now time.Time) (Screen, bool) {
	r := &t.rot
	if len(r.pages) < 2 || now.Sub(r.since) < r.pages[r.current].hold {
		return "", false
	}
	next := r.current + 1
	if next >= len(r.pages) {
		next = r.loopFrom
	}
	r.since = now
	if next == r.current {
		return "", false
	}
	r.current = next
	return r.pages[next].screen, true
}
