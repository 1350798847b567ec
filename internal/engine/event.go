package engine

import "fmt"

// Event is an input to the state machine.
type Event uint8

// EventKind separates events coming from collaborators from the ones the
// engine raises for its own recovery.
type EventKind uint8

const (
	KindNone EventKind = iota
	// KindDomain events come from buttons, the scale, the network client or
	// the engine's own handlers reporting an outcome.
	KindDomain
	// KindControl events move into the Error and Cancel meta-states.
	KindControl
	// KindResume events re-enter a real state after a meta-state.
	KindResume
)

const (
	EvNone Event = iota

	// buttons
	EvGroupA
	EvGroupB
	EvBarcode
	EvRaw
	EvCooked
	EvAddPlate
	EvDeletePlate
	EvSave

	// scale
	EvScaleIncrement
	EvScaleDecrement
	EvScaleTare
	EvScaleRelease

	// network
	EvBarcodeRead
	EvProductFound

	// maintenance
	EvDeleteLog

	// warnings
	EvWarnPlateEmpty
	EvWarnNothingToDelete
	EvWarnMealEmpty
	EvWarnNoConnectivity
	EvWarnBarcodeNotRead
	EvWarnProductNotFound
	EvWarnNetworkTimeout
	EvWarnStorageWrite

	// control
	EvError
	EvCancel

	// resume
	EvGoToInit
	EvGoToPlateWaiting
	EvGoToGroupChosen
	EvGoToBarcodeGroup
	EvGoToRaw
	EvGoToCooked
	EvGoToWeighed
	EvGoToAddCheck
	EvGoToAdded
	EvGoToDeleteCheck
	EvGoToDeleted
	EvGoToSaveCheck
	EvGoToSaved

	eventCount
)

var eventNames = [eventCount]string{
	EvNone:                "NONE",
	EvGroupA:              "GROUP_A",
	EvGroupB:              "GROUP_B",
	EvBarcode:             "BARCODE",
	EvRaw:                 "RAW",
	EvCooked:              "COOKED",
	EvAddPlate:            "ADD_PLATE",
	EvDeletePlate:         "DELETE_PLATE",
	EvSave:                "SAVE",
	EvScaleIncrement:      "SCALE_INCREMENT",
	EvScaleDecrement:      "SCALE_DECREMENT",
	EvScaleTare:           "SCALE_TARE",
	EvScaleRelease:        "SCALE_RELEASE",
	EvBarcodeRead:         "BARCODE_READ",
	EvProductFound:        "PRODUCT_FOUND",
	EvDeleteLog:           "DELETE_LOG",
	EvWarnPlateEmpty:      "WARN_PLATE_EMPTY",
	EvWarnNothingToDelete: "WARN_NOTHING_TO_DELETE",
	EvWarnMealEmpty:       "WARN_MEAL_EMPTY",
	EvWarnNoConnectivity:  "WARN_NO_CONNECTIVITY",
	EvWarnBarcodeNotRead:  "WARN_BARCODE_NOT_READ",
	EvWarnProductNotFound: "WARN_PRODUCT_NOT_FOUND",
	EvWarnNetworkTimeout:  "WARN_NETWORK_TIMEOUT",
	EvWarnStorageWrite:    "WARN_STORAGE_WRITE",
	EvError:               "ERROR",
	EvCancel:              "CANCEL",
	EvGoToInit:            "GO_TO_INIT",
	EvGoToPlateWaiting:    "GO_TO_PLATE_WAITING",
	EvGoToGroupChosen:     "GO_TO_GROUP_CHOSEN",
	EvGoToBarcodeGroup:    "GO_TO_BARCODE_GROUP",
	EvGoToRaw:             "GO_TO_RAW",
	EvGoToCooked:          "GO_TO_COOKED",
	EvGoToWeighed:         "GO_TO_WEIGHED",
	EvGoToAddCheck:        "GO_TO_ADD_CHECK",
	EvGoToAdded:           "GO_TO_ADDED",
	EvGoToDeleteCheck:     "GO_TO_DELETE_CHECK",
	EvGoToDeleted:         "GO_TO_DELETED",
	EvGoToSaveCheck:       "GO_TO_SAVE_CHECK",
	EvGoToSaved:           "GO_TO_SAVED",
}

// resumeTargets maps each resume event to the state it re-enters.
var resumeTargets = map[Event]State{
	EvGoToInit:         StateInit,
	EvGoToPlateWaiting: StatePlateWaiting,
	EvGoToGroupChosen:  StateGroupChosen,
	EvGoToBarcodeGroup: StateBarcodeGroup,
	EvGoToRaw:          StateRaw,
	EvGoToCooked:       StateCooked,
	EvGoToWeighed:      StateWeighed,
	EvGoToAddCheck:     StateAddCheck,
	EvGoToAdded:        StateAdded,
	EvGoToDeleteCheck:  StateDeleteCheck,
	EvGoToDeleted:      StateDeleted,
	EvGoToSaveCheck:    StateSaveCheck,
	EvGoToSaved:        StateSaved,
}

func (e Event) String() string {
	if e < eventCount {
		return eventNames[e]
	}
	return fmt.Sprintf("EVENT(%d)", uint8(e))
}

// MarshalText renders the event by name in JSON payloads.
func (e Event) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText parses an event name.
func (e *Event) UnmarshalText(b []byte) error {
	v, err := ParseEvent(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseEvent returns the event with the given name.
func ParseEvent(name string) (Event, error) {
	for i, n := range eventNames {
		if n == name {
			return Event(i), nil
		}
	}
	return EvNone, fmt.Errorf("unknown event %q", name)
}

// Kind classifies the event.
func (e Event) Kind() EventKind {
	switch {
	case e == EvNone || e >= eventCount:
		return KindNone
	case e == EvError || e == EvCancel:
		return KindControl
	case e >= EvGoToInit:
		return KindResume
	default:
		return KindDomain
	}
}

// IsGroup reports whether e is a food-group button.
func (e Event) IsGroup() bool { return e == EvGroupA || e == EvGroupB }

// IsButton reports whether e comes from the button matrix.
func (e Event) IsButton() bool { return e >= EvGroupA && e <= EvSave }

// IsScale reports whether e comes from the weight classifier.
func (e Event) IsScale() bool { return e >= EvScaleIncrement && e <= EvScaleRelease }

// IsWarning reports whether e leads to the Warning meta-state.
func (e Event) IsWarning() bool { return e >= EvWarnPlateEmpty && e <= EvWarnStorageWrite }

// ResumeTarget returns the state a resume event re-enters.
func (e Event) ResumeTarget() (State, bool) {
	s, ok := resumeTargets[e]
	return s, ok
}

// ResumeEvent returns the resume event that re-enters s.
func ResumeEvent(s State) (Event, bool) {
	for ev, target := range resumeTargets {
		if target == s {
			return ev, true
		}
	}
	return EvNone, false
}
