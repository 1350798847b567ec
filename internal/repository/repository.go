package repository

import (
	"context"
	"database/sql"
	"time"

	"smartcloth/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type SnapshotRepo interface {
	Save(ctx context.Context, s models.DeviceState) error
	Load(ctx context.Context) (models.DeviceState, error)
}

type TransitionRepo interface {
	Append(ctx context.Context, e models.TransitionLog) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.TransitionLog, error)
}

type MealRepo interface {
	Ping(ctx context.Context) error
	InsertPlate(ctx context.Context, p models.Plate) error
	InsertMeal(ctx context.Context, m models.Meal) (string, error)
	MarkUploaded(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]models.Meal, error)
	DeleteAll(ctx context.Context) error
	List(ctx context.Context, from, to time.Time) ([]models.Meal, error)
	Totals(ctx context.Context, from, to time.Time) (models.Diary, error)
}

type Repository struct {
	Snapshots   SnapshotRepo
	Transitions TransitionRepo
	Meals       MealRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Snapshots:   NewSnapshotSQLite(db),
		Transitions: NewTransitionSQLite(db),
		Meals:       NewMealSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
