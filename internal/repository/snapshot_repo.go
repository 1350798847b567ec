package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smartcloth/internal/models"
)

// SnapshotSQLite keeps the last published engine snapshot in a single row.
type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

const (
	deviceStateRowID = 1

	upsertSnapshotSQL = `
		INSERT INTO device_state (id, state, prev_state, last_valid, last_event, screen, food_group, processing, scale_g, meal, diary, sticky_error, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state=excluded.state,
			prev_state=excluded.prev_state,
			last_valid=excluded.last_valid,
			last_event=excluded.last_event,
			screen=excluded.screen,
			food_group=excluded.food_group,
			processing=excluded.processing,
			scale_g=excluded.scale_g,
			meal=excluded.meal,
			diary=excluded.diary,
			sticky_error=excluded.sticky_error,
			updated_at=excluded.updated_at
	`

	selectSnapshotSQL = `
		SELECT id, state, prev_state, last_valid, last_event, screen, food_group, processing, scale_g, meal, diary, sticky_error, updated_at
		FROM device_state WHERE id=?
	`
)

// Save upserts the snapshot row. A zero UpdatedAt is stamped with now.
func (r *SnapshotSQLite) Save(ctx context.Context, s models.DeviceState) error {
	meal, err := json.Marshal(s.Meal)
	if err != nil {
		return fmt.Errorf("marshal meal: %w", err)
	}
	diary, err := json.Marshal(s.Diary)
	if err != nil {
		return fmt.Errorf("marshal diary: %w", err)
	}

	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL,
		deviceStateRowID,
		s.State,
		s.PrevState,
		s.LastValid,
		s.LastEvent,
		s.Screen,
		s.Group,
		s.Processing,
		s.ScaleGrams,
		string(meal),
		string(diary),
		s.StickyErr,
		ts.UTC(),
	)
	return err
}

// Load returns the zero snapshot when none was saved yet.
func (r *SnapshotSQLite) Load(ctx context.Context) (models.DeviceState, error) {
	var (
		s           models.DeviceState
		meal, diary sql.NullString
		prev, valid sql.NullString
		event, scr  sql.NullString
		group, proc sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectSnapshotSQL, deviceStateRowID).Scan(
		&s.ID,
		&s.State,
		&prev,
		&valid,
		&event,
		&scr,
		&group,
		&proc,
		&s.ScaleGrams,
		&meal,
		&diary,
		&s.StickyErr,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeviceState{}, nil
	}
	if err != nil {
		return models.DeviceState{}, err
	}

	s.PrevState, s.LastValid, s.LastEvent = prev.String, valid.String, event.String
	s.Screen, s.Group, s.Processing = scr.String, group.String, proc.String
	if meal.Valid && meal.String != "" {
		if err := json.Unmarshal([]byte(meal.String), &s.Meal); err != nil {
			return models.DeviceState{}, fmt.Errorf("decode meal: %w", err)
		}
	}
	if diary.Valid && diary.String != "" {
		if err := json.Unmarshal([]byte(diary.String), &s.Diary); err != nil {
			return models.DeviceState{}, fmt.Errorf("decode diary: %w", err)
		}
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
