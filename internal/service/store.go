package service

import (
	"context"
	"fmt"
	"time"

	"smartcloth/internal/logger"
	"smartcloth/internal/metrics"
	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

// StoreService is the engine's durable storage on top of the meal repository.
type StoreService struct {
	meals repository.MealRepo
	now   func() time.Time
	log   *logger.Logger
}

func NewStoreService(meals repository.MealRepo, log *logger.Logger) *StoreService {
	return &StoreService{meals: meals, now: time.Now, log: logger.OrNop(log)}
}

func (s *StoreService) Check(ctx context.Context) error {
	if err := s.meals.Ping(ctx); err != nil {
		return s.fail("check", err)
	}
	return nil
}

func (s *StoreService) CommitPlate(ctx context.Context, p models.Plate) error {
	if err := s.meals.InsertPlate(ctx, p); err != nil {
		return s.fail("commit_plate", err)
	}
	metrics.PlatesStored.Inc()
	s.log.Infow("store_plate_committed", "items", len(p.Items), "grams", p.Grams)
	return nil
}

func (s *StoreService) CommitMeal(ctx context.Context, m models.Meal) (string, error) {
	id, err := s.meals.InsertMeal(ctx, m)
	if err != nil {
		return "", s.fail("commit_meal", err)
	}
	metrics.MealsStored.Inc()
	s.log.Infow("store_meal_committed", "meal_id", id, "plates", m.Plates, "kcal", m.Values.Kcal)
	return id, nil
}

func (s *StoreService) MarkUploaded(ctx context.Context, id string) error {
	if err := s.meals.MarkUploaded(ctx, id); err != nil {
		return s.fail("mark_uploaded", err)
	}
	metrics.MealsUploaded.Inc()
	return nil
}

func (s *StoreService) PendingMeals(ctx context.Context) ([]models.Meal, error) {
	meals, err := s.meals.Pending(ctx)
	if err != nil {
		return nil, s.fail("pending", err)
	}
	return meals, nil
}

func (s *StoreService) DeleteLog(ctx context.Context) error {
	if err := s.meals.DeleteAll(ctx); err != nil {
		return s.fail("delete_log", err)
	}
	s.log.Warnw("store_log_deleted")
	return nil
}

// DiaryTotals sums the meals saved since local midnight.
func (s *StoreService) DiaryTotals(ctx context.Context) (models.Diary, error) {
	d, err := s.meals.Totals(ctx, startOfDay(s.now()), time.Time{})
	if err != nil {
		return models.Diary{}, s.fail("diary", err)
	}
	return d, nil
}

func (s *StoreService) fail(op string, err error) error {
	metrics.StoreErrors.WithLabelValues(op).Inc()
	s.log.Errorw("store_failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
