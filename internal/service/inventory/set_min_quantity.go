package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

// SetMinQuantity changes a component's replenishment threshold and records a
// SET_MIN_QUANTITY audit entry. A threshold change alone can create a
// low-stock condition, so the committed state is re-checked afterwards.
func (s *Service) SetMinQuantity(ctx context.Context, user domain.User, input SetMinQuantityInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	comp, err := s.components.GetByID(ctx, input.ComponentID)
	if err != nil {
		return fmt.Errorf("load component: %w", err)
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = fmt.Sprintf("min_quantity %d -> %d", comp.MinQuantity, input.MinQuantity)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.components.UpdateMinQuantity(ctx, comp.ID, input.MinQuantity); err != nil {
			return fmt.Errorf("update min quantity: %w", err)
		}

		if _, err := s.audit.Append(ctx, domain.LogEntry{
			ComponentID: comp.ID,
			UserName:    user.Name,
			Action:      domain.LogActionSetMinQuantity,
			Message:     message,
		}); err != nil {
			return fmt.Errorf("append audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "component threshold updated",
		slog.Int64("component_id", comp.ID),
		slog.Int64("min_quantity", input.MinQuantity),
		slog.String("user", user.Name),
	)

	s.publishIfLow(ctx, comp.ID)

	return nil
}
