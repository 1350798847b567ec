package engine

import (
	"context"
	"errors"
)

// enterCheck returns the entry part of a confirmation state: show the
// prompt and cancel when nobody confirms in time.
func (e *Engine) enterCheck(s Screen) func(context.Context) {
	return func(context.Context) {
		e.show(s)
		e.timers.arm(e.clock.Now(), e.cfg.ConfirmTimeout, EvCancel)
	}
}

// closePlate moves the open plate into the meal and storage.
func (e *Engine) closePlate(ctx context.Context) {
	e.meal.AddPlate(e.plate)
	if err := e.store.CommitPlate(ctx, e.plate.Clone()); err != nil {
		e.log.Errorw("engine_plate_store_failed", "error", err)
	}
	e.plate.Reset()
}

func (e *Engine) enterAdded(ctx context.Context) {
	if e.weights.Scale != 0 {
		e.commitItem()
	}
	switch {
	case !e.plate.Empty():
		e.closePlate(ctx)
		e.mealCopy = e.meal.Clone()
		e.show(ScreenPlateAdded)
	case e.ctx.Prev != StateError:
		e.raise(EvWarnPlateEmpty)
	default:
		e.show(ScreenDashboard)
	}
}

func (e *Engine) enterDeleted(context.Context) {
	if e.weights.Scale != 0 {
		e.weights.LastFood = e.weights.Scale
		e.tare()
	}
	switch {
	case !e.plate.Empty():
		e.meal.DeletePlate(e.plate)
		e.plate.Reset()
		e.mealCopy = e.meal.Clone()
		e.show(ScreenPlateDeleted)
	case e.weights.LastFood != 0:
		e.show(ScreenRemoveFood)
	case e.ctx.Prev != StateError:
		e.raise(EvWarnNothingToDelete)
	default:
		e.show(ScreenDashboard)
	}
}

// enterSaved closes the open plate and saves the meal, locally first and
// then remotely when the network allows it.
func (e *Engine) enterSaved(ctx context.Context) {
	if e.weights.Scale != 0 {
		e.commitItem()
	}
	if !e.plate.Empty() {
		e.closePlate(ctx)
	}
	if e.meal.Empty() {
		if e.ctx.Prev != StateError {
			e.raise(EvWarnMealEmpty)
			return
		}
		e.show(ScreenDashboard)
		e.armReturnToInit()
		return
	}

	e.meal.SavedAt = e.clock.Now().UTC()
	id, err := e.store.CommitMeal(ctx, e.meal.Clone())
	if err != nil {
		e.log.Errorw("engine_meal_store_failed", "error", err)
		e.raise(EvWarnStorageWrite)
		return
	}
	e.meal.ID = id

	outcome := e.upload(ctx)
	if outcome == SaveFull {
		if err := e.store.MarkUploaded(ctx, id); err != nil {
			e.log.Warnw("engine_mark_uploaded_failed", "meal_id", id, "error", err)
		} else {
			e.meal.Uploaded = true
		}
	}
	e.lastSave = outcome
	e.log.Infow("engine_meal_saved", "meal_id", id, "outcome", outcome, "kcal", e.meal.Values.Kcal)

	e.diary.AddMeal(e.meal)
	e.mealCopy = e.meal.Clone()
	e.meal.Reset()
	e.mealSaved = true
	e.show(ScreenMealSaved)
	e.armReturnToInit()
}

// armReturnToInit sends Saved back to Init on its own when the save started
// from Init, where no container is left to lift.
func (e *Engine) armReturnToInit() {
	if e.ctx.LastValid == StateInit {
		e.timers.arm(e.clock.Now(), e.cfg.SavedReturnDelay, EvGoToInit)
	}
}

// upload sends the meal being saved after a connectivity check.
func (e *Engine) upload(ctx context.Context) SaveOutcome {
	if err := e.checkConnectivity(ctx); err != nil {
		return SaveLocalNoWifi
	}
	uctx, cancel := context.WithTimeout(ctx, e.cfg.SaveTimeout)
	defer cancel()
	return outcomeOf(e.network.UploadMeal(uctx, e.meal.Clone()))
}

func (e *Engine) checkConnectivity(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, e.cfg.ConnectivityTimeout)
	defer cancel()
	err := e.network.CheckConnectivity(cctx)
	if err != nil {
		e.log.Infow("engine_no_connectivity", "error", err)
	}
	return err
}

func outcomeOf(err error) SaveOutcome {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return SaveFull
	case errors.As(err, &httpErr):
		return SaveLocalHTTPError
	case errors.Is(err, ErrNoConnectivity):
		return SaveLocalNoWifi
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return SaveLocalTimeout
	default:
		return SaveLocalUnknown
	}
}
