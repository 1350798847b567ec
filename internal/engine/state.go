package engine

import "fmt"

// State is a node of the engine's state machine.
type State uint8

const (
	StateNone State = iota
	StateInit
	StatePlateWaiting
	StateGroupChosen
	StateBarcodeReading
	StateBarcodeSearching
	StateBarcodeConfirm
	StateBarcodeGroup
	StateRaw
	StateCooked
	StateWeighed
	StateAddCheck
	StateAdded
	StateDeleteCheck
	StateDeleted
	StateSaveCheck
	StateSaved
	StateDeleteLogCheck
	StateDeleteLogDone
	StateCriticalStorageFailure
	StateUploadPending
	StateError
	StateCancel
	StateWarning

	stateCount
)

var stateNames = [stateCount]string{
	StateNone:                   "NONE",
	StateInit:                   "INIT",
	StatePlateWaiting:           "PLATE_WAITING",
	StateGroupChosen:            "GROUP_CHOSEN",
	StateBarcodeReading:         "BARCODE_READING",
	StateBarcodeSearching:       "BARCODE_SEARCHING",
	StateBarcodeConfirm:         "BARCODE_CONFIRM",
	StateBarcodeGroup:           "BARCODE_GROUP",
	StateRaw:                    "RAW",
	StateCooked:                 "COOKED",
	StateWeighed:                "WEIGHED",
	StateAddCheck:               "ADD_CHECK",
	StateAdded:                  "ADDED",
	StateDeleteCheck:            "DELETE_CHECK",
	StateDeleted:                "DELETED",
	StateSaveCheck:              "SAVE_CHECK",
	StateSaved:                  "SAVED",
	StateDeleteLogCheck:         "DELETE_LOG_CHECK",
	StateDeleteLogDone:          "DELETE_LOG_DONE",
	StateCriticalStorageFailure: "CRITICAL_STORAGE_FAILURE",
	StateUploadPending:          "UPLOAD_PENDING",
	StateError:                  "ERROR",
	StateCancel:                 "CANCEL",
	StateWarning:                "WARNING",
}

func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("STATE(%d)", uint8(s))
}

// MarshalText renders the state by name in JSON payloads.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a state name.
func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseState returns the state with the given name.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateNone, fmt.Errorf("unknown state %q", name)
}

// States lists every state except StateNone, in declaration order.
func States() []State {
	out := make([]State, 0, stateCount-1)
	for s := StateInit; s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// IsAnchor reports whether entering s records it as the last valid state.
// Meta-states, the barcode sub-states and the maintenance states never do.
func (s State) IsAnchor() bool {
	switch s {
	case StateInit, StatePlateWaiting, StateGroupChosen, StateBarcodeGroup,
		StateRaw, StateCooked, StateWeighed:
		return true
	}
	return false
}

// IsResumable reports whether Error can return directly to s.
func (s State) IsResumable() bool {
	if s.IsAnchor() {
		return true
	}
	switch s {
	case StateAddCheck, StateAdded, StateDeleteCheck, StateDeleted, StateSaveCheck, StateSaved:
		return true
	}
	return false
}

// IsMeta reports whether s is one of the recovery states.
func (s State) IsMeta() bool {
	return s == StateError || s == StateCancel || s == StateWarning
}

// IsTerminal reports whether s has no way out.
func (s State) IsTerminal() bool { return s == StateCriticalStorageFailure }
