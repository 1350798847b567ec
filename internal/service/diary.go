package service

import (
	"context"

	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

// DiaryService reads saved meals back out of storage.
type DiaryService struct {
	meals repository.MealRepo
}

func NewDiaryService(meals repository.MealRepo) *DiaryService {
	return &DiaryService{meals: meals}
}

func (s *DiaryService) List(ctx context.Context, f MealFilter) ([]models.Meal, error) {
	from, to, err := normalizeRange(f.From, f.To)
	if err != nil {
		return nil, err
	}
	return s.meals.List(ctx, from, to)
}

func (s *DiaryService) Totals(ctx context.Context, f MealFilter) (models.Diary, error) {
	from, to, err := normalizeRange(f.From, f.To)
	if err != nil {
		return models.Diary{}, err
	}
	return s.meals.Totals(ctx, from, to)
}
