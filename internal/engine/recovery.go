package engine

import (
	"context"
	"time"

	"smartcloth/internal/models"
)

var errorMessages = map[State]string{
	StateInit:             "Place a container on the scale first",
	StatePlateWaiting:     "Choose a food group or scan a barcode",
	StateGroupChosen:      "Choose raw or cooked before weighing",
	StateBarcodeGroup:     "Place the product on the scale",
	StateRaw:              "Place food or choose an action",
	StateCooked:           "Place food or choose an action",
	StateWeighed:          "Choose a group, add, delete or save",
	StateAddCheck:         "Press add plate again to confirm",
	StateDeleteCheck:      "Press delete plate again to confirm",
	StateSaveCheck:        "Press save again to confirm",
	StateAdded:            "Plate added, remove the container",
	StateDeleted:          "Plate deleted, remove the container",
	StateSaved:            "Meal saved, remove the container",
	StateBarcodeReading:   "Wait for the barcode to be read",
	StateBarcodeSearching: "Wait for the product search",
	StateBarcodeConfirm:   "Press barcode to accept the product",
}

const (
	defaultErrorMessage = "Unexpected action"
	stickyErrorMessage  = "Choose raw or cooked, or remove the food"
)

var warningMessages = map[Event]string{
	EvWarnPlateEmpty:      "The plate is empty, nothing added",
	EvWarnNothingToDelete: "Nothing to delete",
	EvWarnMealEmpty:       "The meal is empty, not saved",
	EvWarnNoConnectivity:  "No internet connection",
	EvWarnBarcodeNotRead:  "Barcode not read",
	EvWarnProductNotFound: "Product not found",
	EvWarnNetworkTimeout:  "The network did not answer in time",
	EvWarnStorageWrite:    "The meal could not be stored",
}

func (e *Engine) enterError(context.Context) {
	if e.ctx.Sticky {
		e.showMessage(ScreenError, stickyErrorMessage)
		return
	}
	msg, ok := errorMessages[e.ctx.Prev]
	if !ok {
		msg = defaultErrorMessage
	}
	e.showMessage(ScreenError, msg)

	target := e.ctx.Prev
	if !target.IsResumable() {
		target = e.ctx.LastValid
	}
	if ev, ok := ResumeEvent(target); ok {
		e.timers.arm(e.clock.Now(), e.cfg.ErrorTimeout, ev)
	}
}

func (e *Engine) enterCancel(context.Context) {
	e.showMessage(ScreenCancel, "Action cancelled")
	e.armResumeLastValid(e.cfg.CancelTimeout)
}

func (e *Engine) enterWarning(context.Context) {
	e.showMessage(ScreenWarning, warningMessages[e.ctx.LastEvent])
	e.armResumeLastValid(e.cfg.WarningTimeout)
}

func (e *Engine) armResumeLastValid(d time.Duration) {
	if ev, ok := ResumeEvent(e.ctx.LastValid); ok {
		e.timers.arm(e.clock.Now(), d, ev)
	}
}

// resolveError decides what a domain event observed during Error means. It
// returns the resume or cancel event to follow, or false to ignore the input
// and let the error delay run out.
func (e *Engine) resolveError(ev Event) (Event, bool) {
	if ev.Kind() != KindDomain {
		return EvNone, false
	}
	if e.ctx.Sticky {
		return e.recoverSticky(ev)
	}

	prev := e.ctx.Prev
	if ev == EvScaleRelease {
		return EvGoToInit, true
	}
	switch prev {
	case StateInit:
		switch ev {
		case EvScaleIncrement:
			return EvGoToPlateWaiting, true
		case EvSave:
			return EvGoToSaveCheck, true
		}
	case StatePlateWaiting:
		switch {
		case ev == EvScaleIncrement, ev == EvScaleDecrement:
			return EvGoToPlateWaiting, true
		case ev.IsGroup():
			return EvGoToGroupChosen, true
		}
	case StateGroupChosen, StateBarcodeGroup:
		self, _ := ResumeEvent(prev)
		switch {
		case ev == EvScaleDecrement:
			return self, true
		case ev == EvScaleIncrement && prev == StateBarcodeGroup:
			return EvGoToWeighed, true
		case ev == EvRaw:
			return EvGoToRaw, true
		case ev == EvCooked:
			return EvGoToCooked, true
		case ev.IsGroup():
			return EvGoToGroupChosen, true
		}
	case StateRaw, StateCooked, StateWeighed:
		if prev == StateWeighed && (ev == EvScaleIncrement || ev == EvScaleDecrement) {
			return EvGoToWeighed, true
		}
		switch {
		case ev == EvScaleIncrement:
			return EvGoToWeighed, true
		case ev.IsGroup():
			return EvGoToGroupChosen, true
		}
		if follow, ok := actionResume[ev]; ok {
			return follow, true
		}
	case StateAddCheck, StateDeleteCheck, StateSaveCheck:
		if !ev.IsButton() {
			return EvNone, false
		}
		if confirm, done := checkConfirm(prev); ev == confirm {
			return done, true
		}
		return EvCancel, true
	case StateAdded, StateDeleted, StateSaved:
		if ev == EvScaleIncrement {
			self, _ := ResumeEvent(prev)
			return self, true
		}
	}
	return EvNone, false
}

// recoverSticky accepts only the corrective events of an error that waits
// for input: choosing the processing for the food already weighed.
func (e *Engine) recoverSticky(ev Event) (Event, bool) {
	switch ev {
	case EvScaleRelease:
		return EvGoToInit, true
	case EvRaw:
		e.processing = models.ProcessingRaw
		return EvGoToWeighed, true
	case EvCooked:
		e.processing = models.ProcessingCooked
		return EvGoToWeighed, true
	}
	return EvNone, false
}

// actionResume maps the buttons honored over a processing or weighed state.
var actionResume = map[Event]Event{
	EvRaw:         EvGoToRaw,
	EvCooked:      EvGoToCooked,
	EvAddPlate:    EvGoToAddCheck,
	EvDeletePlate: EvGoToDeleteCheck,
	EvSave:        EvGoToSaveCheck,
}

// checkConfirm returns the confirming button of a check state and the
// resume event of the state it leads to.
func checkConfirm(s State) (Event, Event) {
	switch s {
	case StateAddCheck:
		return EvAddPlate, EvGoToAdded
	case StateDeleteCheck:
		return EvDeletePlate, EvGoToDeleted
	default:
		return EvSave, EvGoToSaved
	}
}
