package repository

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"smartcloth/internal/models"
)

var mealCols = []string{"id", "saved_at", "plates", "grams", "kcal", "protein_g", "fat_g", "carbs_g", "items", "uploaded"}

func newMealRepo(t *testing.T) (*MealSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewMealSQLite(db), mock
}

func TestInsertMeal_AdoptsPendingPlates(t *testing.T) {
	repo, mock := newMealRepo(t)

	saved := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	meal := models.Meal{ID: "meal-1", Plates: 2, Grams: 250, Values: models.Nutrients{Kcal: 301}, SavedAt: saved}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertMealSQL)).
		WithArgs("meal-1", saved, 2, 250.0, 301.0, 0.0, 0.0, 0.0, "null", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(adoptPlatesSQL)).
		WithArgs("meal-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	id, err := repo.InsertMeal(testCtx(t), meal)
	if err != nil {
		t.Fatalf("InsertMeal: %v", err)
	}
	if id != "meal-1" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestInsertMeal_RollsBackOnAdoptFailure(t *testing.T) {
	repo, mock := newMealRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertMealSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(adoptPlatesSQL)).WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	id, err := repo.InsertMeal(testCtx(t), models.Meal{Plates: 1})
	if err == nil {
		t.Fatalf("expected error, got id %q", id)
	}
}

func TestInsertPlate_GeneratesID(t *testing.T) {
	repo, mock := newMealRepo(t)

	plate := models.Plate{Grams: 100, Values: models.Nutrients{Kcal: 22.5}}
	plate.Add(models.Item{GroupID: 7, Grams: 100})

	mock.ExpectExec(regexp.QuoteMeta(insertPlateSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 200.0, 22.5, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.InsertPlate(testCtx(t), plate); err != nil {
		t.Fatalf("InsertPlate: %v", err)
	}
}

func TestMarkUploaded(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		wantErr bool
	}{
		{"updated", sqlmock.NewResult(0, 1), false},
		{"unknown meal", sqlmock.NewResult(0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMealRepo(t)
			mock.ExpectExec(regexp.QuoteMeta(markUploadSQL)).WithArgs("meal-1").WillReturnResult(tt.result)

			err := repo.MarkUploaded(testCtx(t), "meal-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkUploaded error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPending_DecodesItems(t *testing.T) {
	repo, mock := newMealRepo(t)

	saved := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(mealCols).
		AddRow("meal-1", saved, 1, 100.0, 301.0, 21.9, 3.0, 46.5, `[{"plate":1,"group_id":9,"group_name":"Legumes","grams":100}]`, false).
		AddRow("meal-2", saved.Add(time.Hour), 1, 50.0, 11.2, 0.8, 0.1, 1.7, nil, false)
	mock.ExpectQuery(regexp.QuoteMeta(selectMealSQL + " WHERE uploaded = 0 ORDER BY saved_at ASC")).WillReturnRows(rows)

	got, err := repo.Pending(testCtx(t))
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 meals, got %d", len(got))
	}
	if len(got[0].Items) != 1 || got[0].Items[0].GroupID != 9 || got[0].Items[0].Plate != 1 {
		t.Fatalf("unexpected items: %+v", got[0].Items)
	}
	if got[1].Items != nil {
		t.Fatalf("expected no items, got %+v", got[1].Items)
	}
}

func TestTotals_WithRange(t *testing.T) {
	repo, mock := newMealRepo(t)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"count", "grams", "kcal", "protein", "fat", "carbs"}).
		AddRow(3, 900.0, 1500.0, 80.0, 40.0, 200.0)
	mock.ExpectQuery(regexp.QuoteMeta(totalsSQL + " WHERE saved_at >= ?")).WithArgs(from).WillReturnRows(rows)

	d, err := repo.Totals(testCtx(t), from, time.Time{})
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if d.Meals != 3 || d.Grams != 900 || d.Values.Kcal != 1500 {
		t.Fatalf("unexpected totals: %+v", d)
	}
}

func TestDeleteAll(t *testing.T) {
	repo, mock := newMealRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deletePlateSQL)).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(deleteMealSQL)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.DeleteAll(testCtx(t)); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
}
