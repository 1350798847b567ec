package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

type EventLogService struct {
	transitions repository.TransitionRepo
}

func NewEventLogService(transitions repository.TransitionRepo) *EventLogService {
	return &EventLogService{transitions: transitions}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
)

// IsInvalidFilter reports whether err was caused by a bad filter.
func IsInvalidFilter(err error) bool { return errors.Is(err, errInvalidTimeRange) }

// normalizeLogType trims spaces and uppercases the type filter.
func normalizeLogType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeRange converts both bounds to UTC and validates their order.
func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	from, to = toUTC(from), toUTC(to)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errInvalidTimeRange
	}
	return from, to, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.TransitionLog, error) {
	from, to, err := normalizeRange(f.From, f.To)
	if err != nil {
		return nil, err
	}
	return s.transitions.List(ctx, from, to, normalizeLogType(f.Type))
}
