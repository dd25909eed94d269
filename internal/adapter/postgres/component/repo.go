// Package component implements the Component repository using PostgreSQL.
// It is a one-to-one mapping between domain components and rows; all business
// rules live in the service and domain layers.
package component

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

const table = "components"

var columns = []string{
	"id", "name", "description", "status",
	"quantity", "min_quantity", "created_at", "updated_at",
}

// row mirrors one components table row. The storage shape never leaks past
// this package; toDomain converts at the boundary.
type row struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	Quantity    int64     `db:"quantity"`
	MinQuantity int64     `db:"min_quantity"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Component {
	return domain.Component{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      domain.Status(r.Status),
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides component persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new component repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new component row and returns the storage-assigned id.
// A name collision surfaces as domain.ErrAlreadyExists via the UNIQUE
// constraint (the service pre-checks, the constraint is the backstop).
func (r *Repo) Create(ctx context.Context, c domain.Component) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.
		Insert(table).
		Columns("name", "description", "status", "quantity", "min_quantity").
		Values(c.Name, c.Description, c.Status.String(), c.Quantity, c.MinQuantity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert component: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "component", 0)
	}

	return id, nil
}

// UpdateStatus sets the status and refreshes updated_at.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.updateField(ctx, id, "status", status.String())
}

// UpdateQuantity sets the quantity and refreshes updated_at.
func (r *Repo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	return r.updateField(ctx, id, "quantity", quantity)
}

// UpdateMinQuantity sets the replenishment threshold and refreshes updated_at.
func (r *Repo) UpdateMinQuantity(ctx context.Context, id int64, minQuantity int64) error {
	return r.updateField(ctx, id, "min_quantity", minQuantity)
}

func (r *Repo) updateField(ctx context.Context, id int64, column string, value any) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.
		Update(table).
		Set(column, value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update component %s: %w", column, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "component", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("component %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a component by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Component, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Component{}, fmt.Errorf("build select component: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		return domain.Component{}, postgres.MapError(err, "component", id)
	}

	return rw.toDomain(), nil
}

// GetByName returns a component by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Component, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return domain.Component{}, fmt.Errorf("build select component by name: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		return domain.Component{}, postgres.MapError(err, "component", 0)
	}

	return rw.toDomain(), nil
}

// List returns all components ordered by name ascending for deterministic
// display.
func (r *Repo) List(ctx context.Context) ([]domain.Component, error) {
	query := builder.
		Select(columns...).
		From(table).
		OrderBy("name ASC")

	return r.list(ctx, query)
}

// ListLowStock returns components with quantity <= min_quantity, most
// critical shortages first (descending deficit, then name).
func (r *Repo) ListLowStock(ctx context.Context) ([]domain.Component, error) {
	query := builder.
		Select(columns...).
		From(table).
		Where("quantity <= min_quantity").
		OrderBy("(min_quantity - quantity) DESC", "name ASC")

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.Component, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list components: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}

	components := make([]domain.Component, len(rows))
	for i, rw := range rows {
		components[i] = rw.toDomain()
	}

	return components, nil
}
