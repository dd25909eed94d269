package component

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func expectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func componentRows(t *testing.T) *pgxmock.Rows {
	t.Helper()
	return pgxmock.NewRows([]string{
		"id", "name", "description", "status",
		"quantity", "min_quantity", "created_at", "updated_at",
	})
}

func TestRepo_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantID  int64
		wantErr error
	}{
		{
			name: "returns new id",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(42))
				mock.ExpectQuery(`INSERT INTO components`).
					WithArgs("GPS Module", "receiver", "active", int64(10), int64(2)).
					WillReturnRows(rows)
			},
			wantID: 42,
		},
		{
			name: "unique violation maps to already exists",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO components`).
					WithArgs("GPS Module", "receiver", "active", int64(10), int64(2)).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})
			},
			wantErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := New(mock)
			tt.setup(mock)

			id, err := repo.Create(context.Background(), domain.Component{
				Name:        "GPS Module",
				Description: "receiver",
				Status:      domain.StatusActive,
				Quantity:    10,
				MinQuantity: 2,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Create() unexpected error: %v", err)
				}
				if id != tt.wantID {
					t.Errorf("Create() id = %d, want %d", id, tt.wantID)
				}
			}

			expectationsWereMet(t, mock)
		})
	}
}

func TestRepo_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, c domain.Component)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := componentRows(t).
					AddRow(int64(7), "Connector", "molex", "idle", int64(3), int64(1), now, now)
				mock.ExpectQuery(`SELECT .+ FROM components WHERE id = \$1`).
					WithArgs(int64(7)).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, c domain.Component) {
				if c.ID != 7 {
					t.Errorf("ID = %d, want 7", c.ID)
				}
				if c.Name != "Connector" {
					t.Errorf("Name = %q, want Connector", c.Name)
				}
				if c.Status != domain.StatusIdle {
					t.Errorf("Status = %s, want idle", c.Status)
				}
				if c.Quantity != 3 || c.MinQuantity != 1 {
					t.Errorf("Quantity/MinQuantity = %d/%d, want 3/1", c.Quantity, c.MinQuantity)
				}
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM components WHERE id = \$1`).
					WithArgs(int64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := New(mock)
			tt.setup(mock)

			got, err := repo.GetByID(context.Background(), 7)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetByID() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("GetByID() unexpected error: %v", err)
				}
				tt.check(t, got)
			}

			expectationsWereMet(t, mock)
		})
	}
}

func TestRepo_GetByName(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := New(mock)

		rows := componentRows(t).
			AddRow(int64(9), "Battery Pack", "", "idle", int64(5), int64(1), now, now)
		mock.ExpectQuery(`SELECT .+ FROM components WHERE name = \$1`).
			WithArgs("Battery Pack").
			WillReturnRows(rows)

		got, err := repo.GetByName(context.Background(), "Battery Pack")
		if err != nil {
			t.Fatalf("GetByName() unexpected error: %v", err)
		}
		if got.ID != 9 {
			t.Errorf("ID = %d, want 9", got.ID)
		}

		expectationsWereMet(t, mock)
	})

	t.Run("absent maps to not found", func(t *testing.T) {
		mock := newMock(t)
		repo := New(mock)

		mock.ExpectQuery(`SELECT .+ FROM components WHERE name = \$1`).
			WithArgs("Battery Pack").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByName(context.Background(), "Battery Pack")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByName() error = %v, want ErrNotFound", err)
		}

		expectationsWereMet(t, mock)
	})
}

func TestRepo_List_OrderedByName(t *testing.T) {
	now := time.Now()
	mock := newMock(t)
	repo := New(mock)

	rows := componentRows(t).
		AddRow(int64(2), "Actuator", "", "active", int64(2), int64(1), now, now).
		AddRow(int64(1), "Connector", "", "idle", int64(3), int64(1), now, now)
	mock.ExpectQuery(`SELECT .+ FROM components ORDER BY name ASC`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d components, want 2", len(got))
	}
	if got[0].Name != "Actuator" || got[1].Name != "Connector" {
		t.Errorf("List() order = [%s %s], want [Actuator Connector]", got[0].Name, got[1].Name)
	}

	expectationsWereMet(t, mock)
}

func TestRepo_ListLowStock(t *testing.T) {
	now := time.Now()
	mock := newMock(t)
	repo := New(mock)

	// Deficit order: Sensor (min 5, qty 1, deficit 4) before Connector (deficit 0).
	rows := componentRows(t).
		AddRow(int64(3), "Sensor", "", "active", int64(1), int64(5), now, now).
		AddRow(int64(1), "Connector", "", "idle", int64(1), int64(1), now, now)
	mock.ExpectQuery(`SELECT .+ FROM components WHERE quantity <= min_quantity ORDER BY \(min_quantity - quantity\) DESC, name ASC`).
		WillReturnRows(rows)

	got, err := repo.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("ListLowStock() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListLowStock() returned %d components, want 2", len(got))
	}
	if got[0].Name != "Sensor" {
		t.Errorf("largest deficit first: got %s, want Sensor", got[0].Name)
	}

	expectationsWereMet(t, mock)
}

func TestRepo_UpdateFields(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		run     func(r *Repo) error
		args    []any
	}{
		{
			name:    "status",
			pattern: `UPDATE components SET status = \$1, updated_at = now\(\) WHERE id = \$2`,
			run: func(r *Repo) error {
				return r.UpdateStatus(context.Background(), 7, domain.StatusRetired)
			},
			args: []any{"retired", int64(7)},
		},
		{
			name:    "quantity",
			pattern: `UPDATE components SET quantity = \$1, updated_at = now\(\) WHERE id = \$2`,
			run: func(r *Repo) error {
				return r.UpdateQuantity(context.Background(), 7, 12)
			},
			args: []any{int64(12), int64(7)},
		},
		{
			name:    "min quantity",
			pattern: `UPDATE components SET min_quantity = \$1, updated_at = now\(\) WHERE id = \$2`,
			run: func(r *Repo) error {
				return r.UpdateMinQuantity(context.Background(), 7, 4)
			},
			args: []any{int64(4), int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := New(mock)

			mock.ExpectExec(tt.pattern).
				WithArgs(tt.args...).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			if err := tt.run(repo); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expectationsWereMet(t, mock)
		})

		t.Run(tt.name+" not found", func(t *testing.T) {
			mock := newMock(t)
			repo := New(mock)

			mock.ExpectExec(tt.pattern).
				WithArgs(tt.args...).
				WillReturnResult(pgxmock.NewResult("UPDATE", 0))

			err := tt.run(repo)
			if !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("error = %v, want ErrNotFound", err)
			}

			expectationsWereMet(t, mock)
		})
	}
}
