package engine

import (
	"context"
	"errors"
	"sync/atomic"

	"smartcloth/internal/logger"
	"smartcloth/internal/models"
)

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("missing engine dependency")

// Deps are the collaborators the engine calls into. Display, Clock, Observer
// and Logger are optional.
type Deps struct {
	Display  Display
	Store    Store
	Network  Network
	Scale    Scale
	Inputs   Inputs
	Clock    Clock
	Observer Observer
	Logger   *logger.Logger
}

// handler is the behaviour of one state. entry runs once per visit; reentry
// runs after a self-loop with the event that caused it. The display rotation
// and the timeout monitor that entry configures are checked on every poll.
type handler struct {
	entry   func(ctx context.Context)
	reentry func(ctx context.Context, ev Event)
}

// Engine is the appliance state machine.
type Engine struct {
	cfg      Config
	index    ruleIndex
	handlers map[State]handler

	display  Display
	store    Store
	network  Network
	scale    Scale
	inputs   Inputs
	clock    Clock
	observer Observer
	log      *logger.Logger

	ctx     Context
	queue   Queue
	timers  timers
	raised  []Event
	reentry Event
	booted  bool
	seq     uint64

	weights      Weights
	group        models.FoodGroup
	processing   models.Processing
	pendingGroup int
	plate        models.Plate
	meal         models.Meal
	mealCopy     models.Meal
	diary        models.Diary
	barcode      string
	product      *models.Product
	lastSave     SaveOutcome
	view         View

	tareRequested    bool
	containerRemoved bool
	mealSaved        bool
	logDeleted       bool

	snap atomic.Pointer[Snapshot]
}

// New builds an engine over the built-in rule table.
func New(cfg Config, deps Deps) (*Engine, error) {
	if deps.Store == nil || deps.Network == nil || deps.Scale == nil || deps.Inputs == nil {
		return nil, ErrMissingDependency
	}
	index, err := buildIndex(transitionsTable)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:      cfg.withDefaults(),
		index:    index,
		display:  deps.Display,
		store:    deps.Store,
		network:  deps.Network,
		scale:    deps.Scale,
		inputs:   deps.Inputs,
		clock:    deps.Clock,
		observer: deps.Observer,
		log:      logger.OrNop(deps.Logger),
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	e.registerHandlers()
	return e, nil
}

// ValidateRules checks a rule table the same way New checks the built-in one.
func ValidateRules(rules []Rule) error {
	_, err := buildIndex(rules)
	return err
}

func (e *Engine) registerHandlers() {
	e.handlers = map[State]handler{
		StateInit:                   {entry: e.enterInit, reentry: e.reenterInit},
		StatePlateWaiting:           {entry: e.enterPlateWaiting, reentry: e.refresh},
		StateGroupChosen:            {entry: e.enterGroupChosen, reentry: e.reenterGroupChosen},
		StateBarcodeReading:         {entry: e.enterBarcodeReading},
		StateBarcodeSearching:       {entry: e.enterBarcodeSearching},
		StateBarcodeConfirm:         {entry: e.enterBarcodeConfirm},
		StateBarcodeGroup:           {entry: e.enterBarcodeGroup, reentry: e.refresh},
		StateRaw:                    {entry: e.enterProcessing(models.ProcessingRaw), reentry: e.refresh},
		StateCooked:                 {entry: e.enterProcessing(models.ProcessingCooked), reentry: e.refresh},
		StateWeighed:                {entry: e.enterWeighed, reentry: e.refresh},
		StateAddCheck:               {entry: e.enterCheck(ScreenConfirmAdd)},
		StateAdded:                  {entry: e.enterAdded, reentry: e.refresh},
		StateDeleteCheck:            {entry: e.enterCheck(ScreenConfirmDelete)},
		StateDeleted:                {entry: e.enterDeleted, reentry: e.refresh},
		StateSaveCheck:              {entry: e.enterCheck(ScreenConfirmSave)},
		StateSaved:                  {entry: e.enterSaved, reentry: e.refresh},
		StateDeleteLogCheck:         {entry: e.enterDeleteLogCheck},
		StateDeleteLogDone:          {entry: e.enterDeleteLogDone},
		StateCriticalStorageFailure: {entry: e.enterCriticalStorageFailure},
		StateUploadPending:          {entry: e.enterUploadPending},
		StateError:                  {entry: e.enterError},
		StateCancel:                 {entry: e.enterCancel},
		StateWarning:                {entry: e.enterWarning},
	}
}

// Boot picks the starting state from what storage reports. Poll boots the
// engine on its first call if Boot was not called.
func (e *Engine) Boot(ctx context.Context) {
	if e.booted {
		return
	}
	e.booted = true

	start := StateInit
	if err := e.store.Check(ctx); err != nil {
		e.log.Errorw("engine_storage_check_failed", "error", err)
		start = StateCriticalStorageFailure
	} else {
		if d, err := e.store.DiaryTotals(ctx); err != nil {
			e.log.Warnw("engine_diary_load_failed", "error", err)
		} else {
			e.diary = d
		}
		pending, err := e.store.PendingMeals(ctx)
		switch {
		case err != nil:
			e.log.Warnw("engine_pending_meals_failed", "error", err)
		case len(pending) > 0:
			start = StateUploadPending
		}
	}

	now := e.clock.Now()
	e.ctx = Context{Actual: start, New: start, LastValid: StateInit}
	e.timers.reset(now)
	e.seq++
	e.log.Infow("engine_boot", "state", start)
	e.observer.Transition(ctx, Transition{From: StateNone, To: start, LastValid: StateInit, At: now})
	e.publish()
}

// Poll runs one tick: an expired timeout raises its event, at most one event
// is stepped, then the active state's handler runs and a snapshot is
// published.
func (e *Engine) Poll(ctx context.Context) {
	if !e.booted {
		e.Boot(ctx)
	}
	if ev, ok := e.timers.expired(e.clock.Now()); ok {
		e.raise(ev)
	}
	if ev, ok := e.next(); ok {
		e.step(ctx, ev)
	}
	e.dispatch(ctx)
	e.publish()
}

// next returns an event raised by the engine itself, or else the next input.
func (e *Engine) next() (Event, bool) {
	if len(e.raised) > 0 {
		ev := e.raised[0]
		e.raised = e.raised[1:]
		return ev, true
	}
	sig, ok := e.inputs.Next(e.weights.ToRemove())
	if !ok {
		return EvNone, false
	}
	if sig.Event.Kind() != KindDomain {
		e.log.Warnw("engine_input_rejected", "event", sig.Event)
		return EvNone, false
	}
	if e.ctx.Actual.IsTerminal() {
		return sig.Event, true
	}
	return e.ingest(sig), true
}

// ingest records the payload of an input signal and returns the event to
// step on. A few group buttons double as maintenance controls.
func (e *Engine) ingest(sig Signal) Event {
	switch {
	case e.ctx.Actual == StateCancel && sig.Event.IsGroup() && sig.Group == 1:
		return EvDeleteLog
	case e.ctx.Actual == StateDeleteLogCheck && sig.Event.IsGroup() && sig.Group == 20:
		return EvDeleteLog
	}
	switch {
	case sig.Event.IsGroup():
		e.pendingGroup = sig.Group
	case sig.Event.IsScale():
		e.weights.Scale = saturate(sig.Weight)
		if sig.Event == EvScaleRelease {
			e.containerRemoved = true
		}
	}
	return sig.Event
}

// raise queues an event for the next tick.
func (e *Engine) raise(ev Event) {
	e.raised = append(e.raised, ev)
}

// step matches ev against the rule table. An unmatched event becomes a
// synthetic error, except in the terminal state, where everything is dropped,
// and in Error, where the event is evaluated for recovery.
func (e *Engine) step(ctx context.Context, ev Event) {
	e.queue.Push(ev)
	if r, ok := e.index.lookup(e.ctx.Actual, ev); ok {
		if ev == EvScaleTare {
			e.tareRequested = false
		}
		e.transition(ctx, r, ev)
		return
	}

	switch {
	case e.ctx.Actual.IsTerminal():
		e.log.Debugw("engine_event_dropped", "state", e.ctx.Actual, "event", ev)
		return
	case ev == EvScaleTare && e.tareRequested:
		// Late completion of a tare the engine asked for.
		e.tareRequested = false
		return
	case e.ctx.Actual == StateError:
		follow, ok := e.resolveError(ev)
		if !ok {
			e.log.Debugw("engine_event_ignored", "state", e.ctx.Actual, "prev", e.ctx.Prev, "event", ev)
			return
		}
		e.queue.Push(follow)
		if r, ok := e.index.lookup(StateError, follow); ok {
			e.transition(ctx, r, follow)
		}
		return
	}

	e.log.Infow("engine_no_rule", "state", e.ctx.Actual, "event", ev)
	e.queue.Push(EvError)
	r, ok := e.index.lookup(e.ctx.Actual, EvError)
	if !ok {
		e.log.Errorw("engine_no_error_rule", "state", e.ctx.Actual)
		return
	}
	e.transition(ctx, r, EvError)
}

func (e *Engine) transition(ctx context.Context, r Rule, ev Event) {
	now := e.clock.Now()
	from := e.ctx.Actual

	e.ctx.Prev = from
	e.ctx.New = r.To
	e.ctx.Actual = r.To
	e.ctx.LastEvent = ev
	if r.IsSelfLoop() {
		e.reentry = ev
	} else {
		e.ctx.EntryDone = false
		e.reentry = EvNone
		e.raised = e.raised[:0]
		e.timers.reset(now)
	}
	if r.To.IsAnchor() {
		e.ctx.LastValid = r.To
	}
	switch {
	case r.To == StateError && from != StateError:
		e.ctx.Sticky = r.Dismiss == DismissByEvent
	case from == StateError:
		e.ctx.Sticky = false
	}
	if r.To != StateGroupChosen && r.To != StateError {
		e.pendingGroup = 0
	}
	e.seq++

	e.log.Debugw("engine_transition", "from", from, "to", r.To, "event", ev, "last_valid", e.ctx.LastValid)
	e.observer.Transition(ctx, Transition{
		From:      from,
		To:        r.To,
		Event:     ev,
		LastValid: e.ctx.LastValid,
		Sticky:    e.ctx.Sticky,
		At:        now,
	})
}

// dispatch runs the active state's handler and its continuous part.
func (e *Engine) dispatch(ctx context.Context) {
	h := e.handlers[e.ctx.Actual]
	switch {
	case !e.ctx.EntryDone:
		if h.entry != nil {
			h.entry(ctx)
		}
		e.ctx.EntryDone = true
	case e.reentry != EvNone:
		if h.reentry != nil {
			h.reentry(ctx, e.reentry)
		}
	}
	e.reentry = EvNone

	if s, ok := e.timers.advance(e.clock.Now()); ok {
		e.show(s)
	}
}
