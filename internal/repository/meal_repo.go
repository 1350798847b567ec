package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartcloth/internal/models"
)

// MealSQLite stores closed plates and saved meals. Plates are written as
// they close and adopted by the next saved meal.
type MealSQLite struct {
	db *sql.DB
}

func NewMealSQLite(db *sql.DB) *MealSQLite { return &MealSQLite{db: db} }

const (
	insertPlateSQL = `INSERT INTO plates (id, meal_id, closed_at, grams, kcal, items) VALUES (?, NULL, ?, ?, ?, ?)`
	insertMealSQL  = `INSERT INTO meals (id, saved_at, plates, grams, kcal, protein_g, fat_g, carbs_g, items, uploaded) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	adoptPlatesSQL = `UPDATE plates SET meal_id = ? WHERE meal_id IS NULL`
	markUploadSQL  = `UPDATE meals SET uploaded = 1 WHERE id = ?`
	deletePlateSQL = `DELETE FROM plates`
	deleteMealSQL  = `DELETE FROM meals`
	selectMealSQL  = `SELECT id, saved_at, plates, grams, kcal, protein_g, fat_g, carbs_g, items, uploaded FROM meals`
	totalsSQL      = `SELECT COUNT(*), COALESCE(SUM(grams), 0), COALESCE(SUM(kcal), 0), COALESCE(SUM(protein_g), 0), COALESCE(SUM(fat_g), 0), COALESCE(SUM(carbs_g), 0) FROM meals`
)

func (r *MealSQLite) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// InsertPlate stores a closed plate not yet part of a saved meal.
func (r *MealSQLite) InsertPlate(ctx context.Context, p models.Plate) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	items, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("marshal plate items: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, insertPlateSQL, p.ID, time.Now().UTC(), p.Grams, p.Values.Kcal, string(items)); err != nil {
		return fmt.Errorf("insert plate %s: %w", p.ID, err)
	}
	return nil
}

// InsertMeal stores m and attaches every pending plate to it.
func (r *MealSQLite) InsertMeal(ctx context.Context, m models.Meal) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.SavedAt.IsZero() {
		m.SavedAt = time.Now()
	}
	items, err := json.Marshal(m.Items)
	if err != nil {
		return "", fmt.Errorf("marshal meal items: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin meal transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, insertMealSQL,
		m.ID, m.SavedAt.UTC(), m.Plates, m.Grams,
		m.Values.Kcal, m.Values.Protein, m.Values.Fat, m.Values.Carbs,
		string(items), m.Uploaded,
	); err != nil {
		return "", fmt.Errorf("insert meal %s: %w", m.ID, err)
	}
	if _, err := tx.ExecContext(ctx, adoptPlatesSQL, m.ID); err != nil {
		return "", fmt.Errorf("attach plates to meal %s: %w", m.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit meal %s: %w", m.ID, err)
	}
	return m.ID, nil
}

func (r *MealSQLite) MarkUploaded(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, markUploadSQL, id)
	if err != nil {
		return fmt.Errorf("mark meal %s uploaded: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("mark meal %s uploaded: %w", id, sql.ErrNoRows)
	}
	return nil
}

// Pending returns the meals saved while offline, oldest first.
func (r *MealSQLite) Pending(ctx context.Context) ([]models.Meal, error) {
	return r.query(ctx, selectMealSQL+" WHERE uploaded = 0 ORDER BY saved_at ASC")
}

// DeleteAll clears every stored meal and plate.
func (r *MealSQLite) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{deletePlateSQL, deleteMealSQL} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return tx.Commit()
}

// List returns the meals saved in [from, to], either bound optional.
func (r *MealSQLite) List(ctx context.Context, from, to time.Time) ([]models.Meal, error) {
	where, args := savedBetween(from, to)
	return r.query(ctx, selectMealSQL+where+" ORDER BY saved_at ASC", args...)
}

// Totals sums the meals saved in [from, to].
func (r *MealSQLite) Totals(ctx context.Context, from, to time.Time) (models.Diary, error) {
	where, args := savedBetween(from, to)
	var d models.Diary
	err := r.db.QueryRowContext(ctx, totalsSQL+where, args...).Scan(
		&d.Meals, &d.Grams, &d.Values.Kcal, &d.Values.Protein, &d.Values.Fat, &d.Values.Carbs,
	)
	if err != nil {
		return models.Diary{}, fmt.Errorf("sum meals: %w", err)
	}
	return d, nil
}

func savedBetween(from, to time.Time) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "saved_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "saved_at <= ?")
		args = append(args, to.UTC())
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *MealSQLite) query(ctx context.Context, q string, args ...any) ([]models.Meal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select meals: %w", err)
	}
	defer rows.Close()

	var out []models.Meal
	for rows.Next() {
		var (
			m     models.Meal
			items sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.SavedAt, &m.Plates, &m.Grams,
			&m.Values.Kcal, &m.Values.Protein, &m.Values.Fat, &m.Values.Carbs,
			&items, &m.Uploaded); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		m.SavedAt = m.SavedAt.UTC()
		if items.Valid && items.String != "" {
			if err := json.Unmarshal([]byte(items.String), &m.Items); err != nil {
				return nil, fmt.Errorf("decode items of meal %s: %w", m.ID, err)
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
