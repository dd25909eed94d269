// Package auditlog implements the append-only audit log repository using
// PostgreSQL. Log rows are only ever inserted; this core never updates or
// deletes them (deletion happens solely through the FK cascade when a
// component row is removed at the storage level).
package auditlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/partkeeper/internal/adapter/postgres"
	"github.com/heartmarshall/partkeeper/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "logs"

var columns = []string{
	"id", "component_id", "timestamp", "user_name", "action",
	"message", "status_before", "status_after", "qty_before", "qty_after",
}

type row struct {
	ID           int64     `db:"id"`
	ComponentID  int64     `db:"component_id"`
	Timestamp    time.Time `db:"timestamp"`
	UserName     string    `db:"user_name"`
	Action       string    `db:"action"`
	Message      string    `db:"message"`
	StatusBefore *string   `db:"status_before"`
	StatusAfter  *string   `db:"status_after"`
	QtyBefore    *int64    `db:"qty_before"`
	QtyAfter     *int64    `db:"qty_after"`
}

func (r row) toDomain() domain.LogEntry {
	entry := domain.LogEntry{
		ID:          r.ID,
		ComponentID: r.ComponentID,
		Timestamp:   r.Timestamp,
		UserName:    r.UserName,
		Action:      domain.LogAction(r.Action),
		Message:     r.Message,
		QtyBefore:   r.QtyBefore,
		QtyAfter:    r.QtyAfter,
	}
	if r.StatusBefore != nil {
		s := domain.Status(*r.StatusBefore)
		entry.StatusBefore = &s
	}
	if r.StatusAfter != nil {
		s := domain.Status(*r.StatusAfter)
		entry.StatusAfter = &s
	}
	return entry
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append inserts one audit row and returns the storage-assigned id.
// The timestamp is assigned by the database at write time.
func (r *Repo) Append(ctx context.Context, e domain.LogEntry) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var statusBefore, statusAfter *string
	if e.StatusBefore != nil {
		s := e.StatusBefore.String()
		statusBefore = &s
	}
	if e.StatusAfter != nil {
		s := e.StatusAfter.String()
		statusAfter = &s
	}

	sql, args, err := builder.
		Insert(table).
		Columns("component_id", "user_name", "action", "message",
			"status_before", "status_after", "qty_before", "qty_after").
		Values(e.ComponentID, e.UserName, e.Action.String(), e.Message,
			statusBefore, statusAfter, e.QtyBefore, e.QtyAfter).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert log: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "log_entry", e.ComponentID)
	}

	return id, nil
}

// List returns audit entries most-recent-first (timestamp DESC, ties broken
// by descending id). Scope is one component when componentID is non-nil,
// global otherwise.
func (r *Repo) List(ctx context.Context, componentID *int64, limit int) ([]domain.LogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := builder.
		Select(columns...).
		From(table).
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(limit))

	if componentID != nil {
		query = query.Where(sq.Eq{"component_id": *componentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list logs: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	entries := make([]domain.LogEntry, len(rows))
	for i, rw := range rows {
		entries[i] = rw.toDomain()
	}

	return entries, nil
}
