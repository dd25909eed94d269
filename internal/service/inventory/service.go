// Package inventory is the orchestration core of the tracker. It is the only
// place allowed to combine domain validation, transactional persistence and
// event publication. Every mutating operation follows the same shape:
// load, validate through the domain model, persist the state change together
// with exactly one audit log entry in one transaction, then publish events
// from the committed state.
package inventory

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/partkeeper/internal/domain"
	"github.com/heartmarshall/partkeeper/internal/event"
)

const (
	// DefaultLogLimit is used when the caller does not specify how many
	// audit entries to fetch.
	DefaultLogLimit = 50
)

type componentRepo interface {
	Create(ctx context.Context, c domain.Component) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Component, error)
	GetByName(ctx context.Context, name string) (domain.Component, error)
	List(ctx context.Context) ([]domain.Component, error)
	ListLowStock(ctx context.Context) ([]domain.Component, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	UpdateMinQuantity(ctx context.Context, id int64, minQuantity int64) error
}

type auditRepo interface {
	Append(ctx context.Context, e domain.LogEntry) (int64, error)
	List(ctx context.Context, componentID *int64, limit int) ([]domain.LogEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// Service provides component tracking operations.
type Service struct {
	components componentRepo
	audit      auditRepo
	tx         txManager
	events     eventPublisher
	log        *slog.Logger
}

// NewService creates a new inventory service.
func NewService(
	log *slog.Logger,
	components componentRepo,
	audit auditRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	return &Service{
		components: components,
		audit:      audit,
		tx:         tx,
		events:     events,
		log:        log.With("service", "inventory"),
	}
}

// publishIfLow re-reads the component and publishes LOW_STOCK when the
// committed state is at or below the threshold. The re-read matters: the
// event must reflect durable state, not an in-memory pre-commit value.
// Publication happens strictly after commit, so a failure here never affects
// the already-durable mutation; handler errors are logged, not returned.
func (s *Service) publishIfLow(ctx context.Context, componentID int64) {
	comp, err := s.components.GetByID(ctx, componentID)
	if err != nil {
		s.log.WarnContext(ctx, "re-read after commit failed, skipping low-stock check",
			slog.Int64("component_id", componentID),
			slog.Any("error", err),
		)
		return
	}

	if !comp.RequiresReplenishment() {
		return
	}

	e := event.NewLowStock(comp.ID, comp.Name, comp.Quantity)
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "low stock handler failed",
			slog.String("event_id", e.ID.String()),
			slog.Int64("component_id", comp.ID),
			slog.Any("error", err),
		)
	}
}
