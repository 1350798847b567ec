package engine

import (
	"context"
	"fmt"

	"smartcloth/internal/models"
)

func (e *Engine) enterDeleteLogCheck(context.Context) {
	e.showMessage(ScreenDeleteLogConfirm, "Press group 20 to delete every stored meal")
	e.armResumeLastValid(e.cfg.DeleteLogTimeout)
}

func (e *Engine) enterDeleteLogDone(ctx context.Context) {
	msg := "Stored meals deleted"
	if err := e.store.DeleteLog(ctx); err != nil {
		e.log.Errorw("engine_delete_log_failed", "error", err)
		msg = "Stored meals could not be deleted"
	} else {
		e.log.Infow("engine_log_deleted")
		e.diary = models.Diary{}
	}
	e.logDeleted = true
	e.showMessage(ScreenDeleteLogResult, msg)
	e.timers.arm(e.clock.Now(), e.cfg.DeleteLogDoneDelay, EvGoToInit)
}

// enterUploadPending sends the meals stored while the device was offline.
func (e *Engine) enterUploadPending(ctx context.Context) {
	defer e.timers.arm(e.clock.Now(), e.cfg.UploadResultDelay, EvGoToInit)

	e.show(ScreenUploading)
	if err := e.checkConnectivity(ctx); err != nil {
		e.show(ScreenNoInternet)
		return
	}
	pending, err := e.store.PendingMeals(ctx)
	if err != nil {
		e.log.Errorw("engine_pending_meals_failed", "error", err)
		return
	}
	uploaded := 0
	for _, m := range pending {
		uctx, cancel := context.WithTimeout(ctx, e.cfg.SaveTimeout)
		err := e.network.UploadMeal(uctx, m)
		cancel()
		if err != nil {
			e.log.Warnw("engine_pending_upload_failed", "meal_id", m.ID, "outcome", outcomeOf(err), "error", err)
			continue
		}
		if err := e.store.MarkUploaded(ctx, m.ID); err != nil {
			e.log.Warnw("engine_mark_uploaded_failed", "meal_id", m.ID, "error", err)
			continue
		}
		uploaded++
	}
	e.log.Infow("engine_pending_uploaded", "uploaded", uploaded, "total", len(pending))
	e.showMessage(ScreenUploading, fmt.Sprintf("%d of %d meals uploaded", uploaded, len(pending)))
}

func (e *Engine) enterCriticalStorageFailure(context.Context) {
	e.showMessage(ScreenCriticalStorage, "Storage unavailable, restart the device")
}
