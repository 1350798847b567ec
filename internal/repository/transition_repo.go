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

// TransitionSQLite is the engine's transition history.
type TransitionSQLite struct {
	db *sql.DB
}

func NewTransitionSQLite(db *sql.DB) *TransitionSQLite { return &TransitionSQLite{db: db} }

const (
	insertTransitionSQL = `INSERT INTO engine_events (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`
	selectTransitionSQL = `SELECT id, occurred_at, type, message, meta FROM engine_events`
)

// Append inserts an entry, filling a missing id or timestamp.
func (r *TransitionSQLite) Append(ctx context.Context, e models.TransitionLog) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	var meta *string
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata of %s: %w", e.EventID, err)
		}
		s := string(b)
		meta = &s
	}

	_, err := r.db.ExecContext(ctx, insertTransitionSQL,
		e.EventID,
		e.OccurredAt.UTC(),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		meta,
	)
	if err != nil {
		return fmt.Errorf("insert transition %s: %w", e.EventID, err)
	}
	return nil
}

// List returns entries in [from, to], either bound optional, optionally of
// one type, oldest first.
func (r *TransitionSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.TransitionLog, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectTransitionSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select transitions: %w", err)
	}
	defer rows.Close()

	out := make([]models.TransitionLog, 0, 64)
	for rows.Next() {
		var (
			e    models.TransitionLog
			meta sql.NullString
		)
		if err := rows.Scan(&e.EventID, &e.OccurredAt, &e.Type, &e.Description, &meta); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()
		if meta.Valid && meta.String != "" {
			var v any
			if err := json.Unmarshal([]byte(meta.String), &v); err != nil {
				e.Metadata = meta.String
			} else {
				e.Metadata = v
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
