package inventory

// Manual mocks (moq-style with func fields).

import (
	"context"

	"github.com/heartmarshall/partkeeper/internal/domain"
	"github.com/heartmarshall/partkeeper/internal/event"
)

var (
	_ componentRepo  = (*mockComponentRepo)(nil)
	_ auditRepo      = (*mockAuditRepo)(nil)
	_ txManager      = (*mockTxManager)(nil)
	_ eventPublisher = (*mockPublisher)(nil)
)

type mockComponentRepo struct {
	CreateFunc            func(ctx context.Context, c domain.Component) (int64, error)
	GetByIDFunc           func(ctx context.Context, id int64) (domain.Component, error)
	GetByNameFunc         func(ctx context.Context, name string) (domain.Component, error)
	ListFunc              func(ctx context.Context) ([]domain.Component, error)
	ListLowStockFunc      func(ctx context.Context) ([]domain.Component, error)
	UpdateStatusFunc      func(ctx context.Context, id int64, status domain.Status) error
	UpdateQuantityFunc    func(ctx context.Context, id int64, quantity int64) error
	UpdateMinQuantityFunc func(ctx context.Context, id int64, minQuantity int64) error

	CreateCalls            []domain.Component
	UpdateStatusCalls      []domain.Status
	UpdateQuantityCalls    []int64
	UpdateMinQuantityCalls []int64
}

func (m *mockComponentRepo) Create(ctx context.Context, c domain.Component) (int64, error) {
	m.CreateCalls = append(m.CreateCalls, c)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return 1, nil
}

func (m *mockComponentRepo) GetByID(ctx context.Context, id int64) (domain.Component, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.Component{}, domain.ErrNotFound
}

func (m *mockComponentRepo) GetByName(ctx context.Context, name string) (domain.Component, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return domain.Component{}, domain.ErrNotFound
}

func (m *mockComponentRepo) List(ctx context.Context) ([]domain.Component, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockComponentRepo) ListLowStock(ctx context.Context) ([]domain.Component, error) {
	if m.ListLowStockFunc != nil {
		return m.ListLowStockFunc(ctx)
	}
	return nil, nil
}

func (m *mockComponentRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, status)
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockComponentRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	m.UpdateQuantityCalls = append(m.UpdateQuantityCalls, quantity)
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, id, quantity)
	}
	return nil
}

func (m *mockComponentRepo) UpdateMinQuantity(ctx context.Context, id int64, minQuantity int64) error {
	m.UpdateMinQuantityCalls = append(m.UpdateMinQuantityCalls, minQuantity)
	if m.UpdateMinQuantityFunc != nil {
		return m.UpdateMinQuantityFunc(ctx, id, minQuantity)
	}
	return nil
}

type mockAuditRepo struct {
	AppendFunc func(ctx context.Context, e domain.LogEntry) (int64, error)
	ListFunc   func(ctx context.Context, componentID *int64, limit int) ([]domain.LogEntry, error)

	AppendCalls []domain.LogEntry
}

func (m *mockAuditRepo) Append(ctx context.Context, e domain.LogEntry) (int64, error) {
	m.AppendCalls = append(m.AppendCalls, e)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return int64(len(m.AppendCalls)), nil
}

func (m *mockAuditRepo) List(ctx context.Context, componentID *int64, limit int) ([]domain.LogEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, componentID, limit)
	}
	return nil, nil
}

// mockTxManager runs the callback inline; overriding RunInTxFunc simulates
// begin/commit failures.
type mockTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	RunInTxCalls int
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.RunInTxCalls++
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, e event.Event) error

	PublishCalls []event.Event
}

func (m *mockPublisher) Publish(ctx context.Context, e event.Event) error {
	m.PublishCalls = append(m.PublishCalls, e)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, e)
	}
	return nil
}
