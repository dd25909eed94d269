package inventory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

// GetComponent returns a single component by id.
func (s *Service) GetComponent(ctx context.Context, id int64) (domain.Component, error) {
	comp, err := s.components.GetByID(ctx, id)
	if err != nil {
		return domain.Component{}, fmt.Errorf("get component: %w", err)
	}
	return comp, nil
}

// ListComponents returns all components ordered by name.
func (s *Service) ListComponents(ctx context.Context) ([]domain.Component, error) {
	components, err := s.components.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return components, nil
}

// ListLowStock returns components requiring replenishment, most critical
// shortage first.
func (s *Service) ListLowStock(ctx context.Context) ([]domain.Component, error) {
	components, err := s.components.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return components, nil
}

// ListLogs returns audit entries newest-first, scoped to one component when
// input.ComponentID is set. A zero limit falls back to DefaultLogLimit.
func (s *Service) ListLogs(ctx context.Context, input ListLogsInput) ([]domain.LogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLogLimit
	}

	entries, err := s.audit.List(ctx, input.ComponentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return entries, nil
}
