package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Rules returns a copy of the transition table in table order.
func (e *Engine) Rules() []Rule { return DefaultRules() }

// RulesFrom returns the rules leaving s.
func RulesFrom(rules []Rule, s State) []Rule {
	return lo.Filter(rules, func(r Rule, _ int) bool { return r.From == s })
}

// Dump renders the last snapshot as a human-readable block.
func (e *Engine) Dump() string {
	s, ok := e.Snapshot()
	if !ok {
		return "engine not booted\n"
	}
	names := lo.Map(s.Queue, func(ev Event, _ int) string { return ev.String() })

	var b strings.Builder
	fmt.Fprintf(&b, "state:       %s\n", s.Actual)
	fmt.Fprintf(&b, "prev:        %s\n", s.Prev)
	fmt.Fprintf(&b, "last valid:  %s\n", s.LastValid)
	fmt.Fprintf(&b, "last event:  %s\n", s.LastEvent)
	fmt.Fprintf(&b, "entry done:  %t\n", s.EntryDone)
	fmt.Fprintf(&b, "sticky:      %t\n", s.Sticky)
	fmt.Fprintf(&b, "queue:       [%s]\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "scale:       %.1f g (container %.1f, food %.1f, last food %.1f)\n",
		s.Weights.Scale, s.Weights.Container, s.Weights.Food, s.Weights.LastFood)
	fmt.Fprintf(&b, "group:       %d %s %s\n", s.Group.ID, s.Group.Name, s.Processing)
	fmt.Fprintf(&b, "plate:       %d items, %.1f g, %.1f kcal\n", len(s.Plate.Items), s.Plate.Grams, s.Plate.Values.Kcal)
	fmt.Fprintf(&b, "meal:        %d plates, %.1f g, %.1f kcal\n", s.Meal.Plates, s.Meal.Grams, s.Meal.Values.Kcal)
	fmt.Fprintf(&b, "diary:       %d meals, %.1f kcal\n", s.Diary.Meals, s.Diary.Values.Kcal)
	fmt.Fprintf(&b, "screen:      %s\n", s.View.Screen)
	return b.String()
}

// FormatRules renders a rule table one rule per line.
func FormatRules(rules []Rule) string {
	var b strings.Builder
	for _, r := range rules {
		fmt.Fprintf(&b, "%-26s %-24s %-26s", r.From, r.Event, r.To)
		if r.Dismiss == DismissByEvent {
			b.WriteString(" dismiss=event")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
