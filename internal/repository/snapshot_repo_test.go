package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

type argFunc func(v driver.Value) bool

func (f argFunc) Match(v driver.Value) bool { return f(v) }

var snapshotCols = []string{
	"id", "state", "prev_state", "last_valid", "last_event", "screen", "food_group",
	"processing", "scale_g", "meal", "diary", "sticky_error", "updated_at",
}

const selectSnapshotFragment = "SELECT id, state, prev_state, last_valid, last_event, screen"

func TestSnapshotSQLite_Save_StampsUTCNow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewSnapshotSQLite(db)
	s := models.DeviceState{
		State:      "WEIGHED",
		PrevState:  "RAW",
		LastValid:  "WEIGHED",
		LastEvent:  "SCALE_INCREMENT",
		Screen:     "DASHBOARD",
		Group:      "Vegetables",
		Processing: "RAW",
		ScaleGrams: 120,
		Meal:       models.Meal{Plates: 1, Grams: 250},
	}

	recentUTC := argFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})
	mealJSON := argFunc(func(v driver.Value) bool {
		str, ok := v.(string)
		return ok && regexp.MustCompile(`"plates":1`).MatchString(str)
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_state")).
		WithArgs(1, "WEIGHED", "RAW", "WEIGHED", "SCALE_INCREMENT", "DASHBOARD", "Vegetables", "RAW",
			120.0, mealJSON, sqlmock.AnyArg(), false, recentUTC).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotSQLite_Save_ConvertsGivenTimeToUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	madrid := time.FixedZone("CET", 3600)
	at := time.Date(2024, 3, 1, 13, 0, 0, 0, madrid)

	exactUTC := argFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		return ok && tm.Equal(at) && tm.Location() == time.UTC
	})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_state")).
		WithArgs(1, "INIT", "", "", "", "", "", "", 0.0, sqlmock.AnyArg(), sqlmock.AnyArg(), true, exactUTC).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repository.NewSnapshotSQLite(db).Save(context.Background(), models.DeviceState{State: "INIT", StickyErr: true, UpdatedAt: at})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotSQLite_Save_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_state")).WillReturnError(errors.New("db down"))

	if err := repository.NewSnapshotSQLite(db).Save(context.Background(), models.DeviceState{State: "INIT"}); err == nil {
		t.Fatalf("Save() expected error, got nil")
	}
}

func TestSnapshotSQLite_Load_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotFragment)).WithArgs(1).WillReturnError(sql.ErrNoRows)

	got, err := repository.NewSnapshotSQLite(db).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, models.DeviceState{}) {
		t.Fatalf("Load() expected zero snapshot, got: %+v", got)
	}
}

func TestSnapshotSQLite_Load_DecodesRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 3, 1, 13, 0, 0, 0, time.FixedZone("CET", 3600))
	rows := sqlmock.NewRows(snapshotCols).AddRow(
		1, "SAVED", "SAVE_CHECK", "WEIGHED", "SAVE", "MEAL_SAVED", nil, nil, 0.0,
		`{"plates":2,"grams":410,"uploaded":true}`, `{"meals":3,"grams":1200}`, false, at,
	)
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotFragment)).WithArgs(1).WillReturnRows(rows)

	got, err := repository.NewSnapshotSQLite(db).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got.State != "SAVED" || got.PrevState != "SAVE_CHECK" || got.LastValid != "WEIGHED" || got.Group != "" {
		t.Fatalf("Load() unexpected fields: %+v", got)
	}
	if got.Meal.Plates != 2 || !got.Meal.Uploaded || got.Diary.Meals != 3 {
		t.Fatalf("Load() unexpected meal/diary: %+v %+v", got.Meal, got.Diary)
	}
	if got.UpdatedAt.Location() != time.UTC {
		t.Fatalf("Load() UpdatedAt not UTC: %v", got.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotSQLite_Load_InvalidMealJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(snapshotCols).AddRow(
		1, "INIT", nil, nil, nil, nil, nil, nil, 0.0, `{not json`, nil, false, time.Now(),
	)
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotFragment)).WithArgs(1).WillReturnRows(rows)

	if _, err := repository.NewSnapshotSQLite(db).Load(context.Background()); err == nil {
		t.Fatalf("Load() expected decode error, got nil")
	}
}
