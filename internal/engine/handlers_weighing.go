package engine

import (
	"context"
	"time"

	"smartcloth/internal/models"
)

// Rotation holds, in display order.
const (
	containerRemovedHold = 1 * time.Second
	initDashboardHold    = 5 * time.Second
	askContainerHold     = 5 * time.Second

	containerPlacedHold = 1 * time.Second
	plateDashboardHold  = 3 * time.Second
	chooseGroupHold     = 5 * time.Second

	processingDashboardHold = 10 * time.Second
	placeFoodHold           = 5 * time.Second

	weighedDashboardHold = 30 * time.Second
	weighedHintHold      = 15 * time.Second
)

// tare asks the scale to zero itself and treats the reading as zero until
// the scale confirms.
func (e *Engine) tare() {
	e.scale.Tare()
	e.weights.Scale = 0
	e.tareRequested = true
}

// commitItem adds the weighed food to the plate and the meal under the
// current group and processing, then tares. It does nothing when the scale
// is empty or no group was chosen.
func (e *Engine) commitItem() bool {
	grams := e.weights.Scale
	if grams <= 0 || e.group.IsZero() {
		return false
	}
	it := models.NewItem(e.group, e.processing, grams)
	e.plate.Add(it)
	e.meal.AddItem(it)
	e.weights.Food += grams
	e.log.Infow("engine_item_committed", "group", it.GroupID, "processing", it.Processing, "grams", grams)
	e.tare()
	return true
}

// placeOrCommit records the container on its first group choice. Later
// choices confirm the food already on the scale under the previous group.
func (e *Engine) placeOrCommit() {
	if !e.weights.ContainerSet {
		e.weights.Container = e.weights.Scale
		e.weights.ContainerSet = true
		e.tare()
		return
	}
	if e.ctx.Prev != StateError && e.ctx.Prev != StateGroupChosen && e.weights.Scale != 0 {
		e.commitItem()
	}
}

func (e *Engine) applyPendingGroup() {
	if e.pendingGroup == 0 {
		return
	}
	if g, ok := models.LookupGroup(e.pendingGroup); ok {
		e.group = g
		e.processing = models.ProcessingNone
	} else {
		e.log.Warnw("engine_unknown_group", "group", e.pendingGroup)
	}
	e.pendingGroup = 0
}

func (e *Engine) enterInit(context.Context) {
	if e.logDeleted {
		e.mealCopy.Reset()
		e.logDeleted = false
		e.mealSaved = false
	}
	e.tare()
	e.weights = Weights{}
	e.ctx.Sticky = false
	e.group = models.FoodGroup{}
	e.processing = models.ProcessingNone
	e.product = nil
	if !e.plate.Empty() {
		e.log.Infow("engine_plate_discarded", "grams", e.plate.Grams)
		e.meal.DeletePlate(e.plate)
		e.plate.Reset()
	}

	var pages []page
	if e.containerRemoved {
		pages = append(pages, page{ScreenContainerRemoved, containerRemovedHold})
	}
	e.containerRemoved = false
	loop := len(pages)
	pages = append(pages, page{ScreenDashboard, initDashboardHold})
	if !e.mealSaved {
		pages = append(pages, page{ScreenPlaceContainer, askContainerHold})
	}
	e.show(e.timers.rotate(e.clock.Now(), loop, pages...))
}

// reenterInit re-tares when weight leaves the scale while idle, which
// happens when the device starts with something already on it.
func (e *Engine) reenterInit(_ context.Context, ev Event) {
	if ev == EvScaleDecrement || ev == EvScaleRelease {
		e.tare()
		e.weights = Weights{}
		e.containerRemoved = false
	}
}

func (e *Engine) enterPlateWaiting(context.Context) {
	e.mealSaved = false
	var pages []page
	if e.ctx.Prev == StateInit {
		pages = append(pages, page{ScreenContainerPlaced, containerPlacedHold})
	}
	loop := len(pages)
	pages = append(pages,
		page{ScreenDashboard, plateDashboardHold},
		page{ScreenChooseGroup, chooseGroupHold},
	)
	e.show(e.timers.rotate(e.clock.Now(), loop, pages...))
}

func (e *Engine) enterGroupChosen(context.Context) {
	e.placeOrCommit()
	e.applyPendingGroup()
	e.show(ScreenSemiDashboard)
}

func (e *Engine) reenterGroupChosen(ctx context.Context, ev Event) {
	if ev.IsGroup() {
		e.applyPendingGroup()
		e.showMessage(ScreenGroupExamples, e.group.Examples)
		return
	}
	e.refresh(ctx, ev)
}

func (e *Engine) enterBarcodeGroup(context.Context) {
	e.placeOrCommit()
	if e.product != nil {
		e.group = e.product.Group()
		e.processing = models.ProcessingNone
	}
	e.show(ScreenSemiDashboard)
}

// enterProcessing returns the entry part of Raw or Cooked. Switching
// processing straight from Weighed confirms the pending food under the
// previous pairing first.
func (e *Engine) enterProcessing(p models.Processing) func(context.Context) {
	return func(context.Context) {
		if e.ctx.Prev == StateWeighed && e.weights.Scale != 0 {
			e.commitItem()
		}
		e.processing = p
		e.show(e.timers.rotate(e.clock.Now(), 0,
			page{ScreenDashboard, processingDashboardHold},
			page{ScreenPlaceFood, placeFoodHold},
		))
	}
}

func (e *Engine) enterWeighed(context.Context) {
	e.show(e.timers.rotate(e.clock.Now(), 0,
		page{ScreenDashboard, weighedDashboardHold},
		page{ScreenWeighedHint, weighedHintHold},
	))
}
