package service

import (
	"context"

	"smartcloth/internal/engine"
	"smartcloth/internal/logger"
	"smartcloth/internal/metrics"
	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

// Transition log entry types.
const (
	LogTransition  = "TRANSITION"
	LogError       = "ERROR"
	LogWarning     = "WARNING"
	LogCancel      = "CANCEL"
	LogSave        = "SAVE"
	LogMaintenance = "MAINTENANCE"
)

// RecorderService observes engine transitions: it counts them and appends
// them to the transition log.
type RecorderService struct {
	transitions repository.TransitionRepo
	log         *logger.Logger
}

func NewRecorderService(transitions repository.TransitionRepo, log *logger.Logger) *RecorderService {
	return &RecorderService{transitions: transitions, log: logger.OrNop(log)}
}

// Transition implements engine.Observer. A failed append is logged and dropped.
func (r *RecorderService) Transition(ctx context.Context, t engine.Transition) {
	metrics.Transitions.WithLabelValues(t.From.String(), t.To.String()).Inc()
	typ := logType(t)
	switch typ {
	case LogError:
		metrics.Errors.WithLabelValues(t.From.String()).Inc()
	case LogWarning:
		metrics.Warnings.WithLabelValues(t.Event.String()).Inc()
	case LogCancel:
		metrics.Cancels.Inc()
	}

	entry := models.TransitionLog{
		OccurredAt:  t.At.UTC(),
		Type:        typ,
		Description: t.From.String() + " -> " + t.To.String(),
		Metadata: map[string]any{
			"event":      t.Event.String(),
			"last_valid": t.LastValid.String(),
			"sticky":     t.Sticky,
		},
	}
	if err := r.transitions.Append(ctx, entry); err != nil {
		r.log.Warnw("recorder_append_failed", "from", t.From, "to", t.To, "error", err)
	}
}

func logType(t engine.Transition) string {
	if t.From == t.To {
		return LogTransition
	}
	switch t.To {
	case engine.StateError:
		return LogError
	case engine.StateWarning:
		return LogWarning
	case engine.StateCancel:
		return LogCancel
	case engine.StateSaved:
		return LogSave
	case engine.StateDeleteLogCheck, engine.StateDeleteLogDone,
		engine.StateUploadPending, engine.StateCriticalStorageFailure:
		return LogMaintenance
	}
	return LogTransition
}
