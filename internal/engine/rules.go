package engine

import (
	"errors"
	"fmt"
)

// Dismissal says how the Error meta-state entered through a rule is left.
type Dismissal uint8

const (
	// DismissByTimeout resumes automatically after the error delay.
	DismissByTimeout Dismissal = iota
	// DismissByEvent keeps Error on screen until a corrective event arrives.
	DismissByEvent
)

func (d Dismissal) String() string {
	if d == DismissByEvent {
		return "event"
	}
	return "timeout"
}

// MarshalText renders the dismissal mode by name.
func (d Dismissal) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses a dismissal mode name.
func (d *Dismissal) UnmarshalText(b []byte) error {
	switch string(b) {
	case "timeout":
		*d = DismissByTimeout
	case "event":
		*d = DismissByEvent
	default:
		return fmt.Errorf("unknown dismissal %q", b)
	}
	return nil
}

// Rule is one legal move: in state From, Event leads to To.
type Rule struct {
	From    State     `json:"from"`
	Event   Event     `json:"event"`
	To      State     `json:"to"`
	Dismiss Dismissal `json:"dismiss"`
}

// IsSelfLoop reports whether the rule re-enters its own state.
func (r Rule) IsSelfLoop() bool { return r.From == r.To }

func (r Rule) String() string {
	return fmt.Sprintf("%s --%s--> %s", r.From, r.Event, r.To)
}

var (
	// ErrDuplicateRule is returned when two rules share a (state, event) key.
	ErrDuplicateRule = errors.New("duplicate transition rule")
	// ErrInvalidRuleTable is returned when the table misses a recovery path.
	ErrInvalidRuleTable = errors.New("invalid transition rule table")
)

type ruleKey struct {
	state State
	event Event
}

// ruleIndex answers (state, event) lookups in O(1).
type ruleIndex map[ruleKey]Rule

func (ix ruleIndex) lookup(s State, ev Event) (Rule, bool) {
	r, ok := ix[ruleKey{s, ev}]
	return r, ok
}

// DefaultRules returns a copy of the built-in transition table.
func DefaultRules() []Rule {
	out := make([]Rule, len(transitionsTable))
	copy(out, transitionsTable)
	return out
}

// buildIndex indexes the table and checks that it is a function of
// (state, event) and that every recovery path exists.
func buildIndex(rules []Rule) (ruleIndex, error) {
	ix := make(ruleIndex, len(rules))
	for i, r := range rules {
		k := ruleKey{r.From, r.Event}
		if prev, ok := ix[k]; ok {
			return nil, fmt.Errorf("%w: rule %d %s conflicts with %s", ErrDuplicateRule, i, r, prev)
		}
		if r.From == StateNone || r.From >= stateCount || r.To == StateNone || r.To >= stateCount {
			return nil, fmt.Errorf("%w: rule %d has an unknown state", ErrInvalidRuleTable, i)
		}
		if r.Event.Kind() == KindNone {
			return nil, fmt.Errorf("%w: rule %d has an unknown event", ErrInvalidRuleTable, i)
		}
		if target, ok := r.Event.ResumeTarget(); ok && target != r.To {
			return nil, fmt.Errorf("%w: rule %s resumes the wrong state", ErrInvalidRuleTable, r)
		}
		if r.Dismiss == DismissByEvent && r.To != StateError {
			return nil, fmt.Errorf("%w: rule %s is dismissible by event but does not enter Error", ErrInvalidRuleTable, r)
		}
		ix[k] = r
	}
	if err := ix.validate(); err != nil {
		return nil, err
	}
	return ix, nil
}

func (ix ruleIndex) validate() error {
	for _, s := range States() {
		if s.IsTerminal() || s == StateError {
			continue
		}
		if _, ok := ix.lookup(s, EvError); !ok {
			return fmt.Errorf("%w: %s has no error rule", ErrInvalidRuleTable, s)
		}
	}
	for _, s := range States() {
		ev, ok := ResumeEvent(s)
		if !ok {
			continue
		}
		if _, ok := ix.lookup(StateError, ev); !ok {
			return fmt.Errorf("%w: Error cannot resume %s", ErrInvalidRuleTable, s)
		}
		if !s.IsAnchor() {
			continue
		}
		for _, meta := range []State{StateCancel, StateWarning} {
			if _, ok := ix.lookup(meta, ev); !ok {
				return fmt.Errorf("%w: %s cannot resume %s", ErrInvalidRuleTable, meta, s)
			}
		}
	}
	return nil
}
