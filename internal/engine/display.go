package engine

import "context"

// show renders a screen without a message.
func (e *Engine) show(s Screen) { e.showMessage(s, "") }

// showMessage renders a screen from the current bookkeeping.
func (e *Engine) showMessage(s Screen, msg string) {
	v := View{
		Screen:     s,
		State:      e.ctx.Actual,
		Message:    msg,
		Group:      e.group,
		Processing: e.processing,
		Weight:     e.weights.Scale,
		Plate:      e.plate.Values,
		Meal:       e.mealCopy.Clone(),
		Diary:      e.diary,
		Outcome:    e.lastSave,
	}
	if e.product != nil {
		p := *e.product
		v.Product = &p
	}
	e.view = v
	e.display.Show(v)
}

// refresh re-renders the current screen, picking up a new weight.
func (e *Engine) refresh(context.Context, Event) {
	e.showMessage(e.view.Screen, e.view.Message)
}
