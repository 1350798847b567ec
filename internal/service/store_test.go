package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcloth/internal/models"
)

func TestStoreService_CommitsDelegate(t *testing.T) {
	repo := &fakeMealRepo{}
	s := NewStoreService(repo, nil)
	ctx := context.Background()

	if err := s.Check(ctx); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if err := s.CommitPlate(ctx, models.Plate{Grams: 150}); err != nil {
		t.Fatalf("CommitPlate: %v", err)
	}
	id, err := s.CommitMeal(ctx, models.Meal{Plates: 1, Grams: 150})
	if err != nil {
		t.Fatalf("CommitMeal: %v", err)
	}
	if id != "meal-1" {
		t.Fatalf("expected meal id from repo, got %q", id)
	}
	if err := s.MarkUploaded(ctx, id); err != nil {
		t.Fatalf("MarkUploaded: %v", err)
	}
	if len(repo.plates) != 1 || len(repo.meals) != 1 || len(repo.uploaded) != 1 {
		t.Fatalf("unexpected repo calls: plates=%d meals=%d uploaded=%d", len(repo.plates), len(repo.meals), len(repo.uploaded))
	}
	if err := s.DeleteLog(ctx); err != nil || repo.deleted != 1 {
		t.Fatalf("DeleteLog: err=%v deleted=%d", err, repo.deleted)
	}
}

func TestStoreService_WrapsErrorsWithOperation(t *testing.T) {
	dbErr := errors.New("disk I/O error")
	s := NewStoreService(&fakeMealRepo{err: dbErr}, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"check", func() error { return s.Check(ctx) }},
		{"commit_plate", func() error { return s.CommitPlate(ctx, models.Plate{}) }},
		{"commit_meal", func() error { _, err := s.CommitMeal(ctx, models.Meal{}); return err }},
		{"pending", func() error { _, err := s.PendingMeals(ctx); return err }},
		{"delete_log", func() error { return s.DeleteLog(ctx) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, dbErr) {
				t.Fatalf("expected wrapped db error, got %v", err)
			}
			if got := err.Error(); got != tt.name+": disk I/O error" {
				t.Fatalf("unexpected message %q", got)
			}
		})
	}
}

func TestStoreService_DiaryTotalsFromMidnight(t *testing.T) {
	repo := &fakeMealRepo{diary: models.Diary{Meals: 2}}
	s := NewStoreService(repo, nil)
	loc := time.FixedZone("CET", 3600)
	s.now = func() time.Time { return time.Date(2025, 5, 6, 14, 30, 0, 0, loc) }

	d, err := s.DiaryTotals(context.Background())
	if err != nil {
		t.Fatalf("DiaryTotals: %v", err)
	}
	if d.Meals != 2 {
		t.Fatalf("want 2 meals, got %d", d.Meals)
	}
	if want := time.Date(2025, 5, 6, 0, 0, 0, 0, loc); !repo.gotFrom.Equal(want) {
		t.Fatalf("from: want %v, got %v", want, repo.gotFrom)
	}
	if !repo.gotTo.IsZero() {
		t.Fatalf("to must be open, got %v", repo.gotTo)
	}
}
