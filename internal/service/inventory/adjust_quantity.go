package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

// AdjustQuantity applies a delta to a component's stock level through the
// domain model, persists the new quantity with its ADJUST_QUANTITY audit
// entry, and publishes LOW_STOCK if the committed state is at or below the
// threshold.
func (s *Service) AdjustQuantity(ctx context.Context, user domain.User, input AdjustQuantityInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	comp, err := s.components.GetByID(ctx, input.ComponentID)
	if err != nil {
		return fmt.Errorf("load component: %w", err)
	}

	qtyBefore := comp.Quantity
	// The domain model is the sole quantity-mutation path; a delta that
	// would go negative is rejected here, before any write.
	if err := comp.AdjustQuantity(input.Delta); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.components.UpdateQuantity(ctx, comp.ID, comp.Quantity); err != nil {
			return fmt.Errorf("update quantity: %w", err)
		}

		qtyAfter := comp.Quantity
		if _, err := s.audit.Append(ctx, domain.LogEntry{
			ComponentID: comp.ID,
			UserName:    user.Name,
			Action:      domain.LogActionAdjustQuantity,
			Message:     strings.TrimSpace(input.Message),
			QtyBefore:   &qtyBefore,
			QtyAfter:    &qtyAfter,
		}); err != nil {
			return fmt.Errorf("append audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "component quantity adjusted",
		slog.Int64("component_id", comp.ID),
		slog.Int64("delta", input.Delta),
		slog.Int64("quantity", comp.Quantity),
		slog.String("user", user.Name),
	)

	s.publishIfLow(ctx, comp.ID)

	return nil
}
