package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

// AddComponent validates and persists a new component together with its
// CREATE_COMPONENT audit entry, then publishes LOW_STOCK if the component is
// already at or below its threshold. Returns the storage-assigned id.
func (s *Service) AddComponent(ctx context.Context, user domain.User, input AddComponentInput) (int64, error) {
	comp, err := domain.NewComponent(input.Name, input.Description, input.Status, input.Quantity, input.MinQuantity)
	if err != nil {
		return 0, err
	}

	// Pre-check for a friendlier duplicate error; the UNIQUE constraint
	// remains the backstop inside the transaction.
	_, err = s.components.GetByName(ctx, comp.Name)
	switch {
	case err == nil:
		return 0, fmt.Errorf("component %q: %w", comp.Name, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return 0, fmt.Errorf("check component name: %w", err)
	}

	var componentID int64
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.components.Create(ctx, *comp)
		if err != nil {
			return fmt.Errorf("create component: %w", err)
		}
		componentID = id

		statusAfter := comp.Status
		qtyAfter := comp.Quantity
		if _, err := s.audit.Append(ctx, domain.LogEntry{
			ComponentID: id,
			UserName:    user.Name,
			Action:      domain.LogActionCreateComponent,
			Message:     fmt.Sprintf("Created component '%s'.", comp.Name),
			StatusAfter: &statusAfter,
			QtyAfter:    &qtyAfter,
		}); err != nil {
			return fmt.Errorf("append audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "component created",
		slog.Int64("component_id", componentID),
		slog.String("name", comp.Name),
		slog.String("user", user.Name),
	)

	s.publishIfLow(ctx, componentID)

	return componentID, nil
}
