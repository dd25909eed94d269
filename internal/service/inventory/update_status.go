package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

// UpdateStatus changes a component's status and records the before/after
// snapshot in the audit log. Status changes alone never publish events.
func (s *Service) UpdateStatus(ctx context.Context, user domain.User, input UpdateStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	comp, err := s.components.GetByID(ctx, input.ComponentID)
	if err != nil {
		return fmt.Errorf("load component: %w", err)
	}

	statusBefore := comp.Status
	// Revalidate the transition through the domain model.
	if err := comp.UpdateStatus(input.NewStatus); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.components.UpdateStatus(ctx, comp.ID, comp.Status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		statusAfter := comp.Status
		if _, err := s.audit.Append(ctx, domain.LogEntry{
			ComponentID:  comp.ID,
			UserName:     user.Name,
			Action:       domain.LogActionUpdateStatus,
			Message:      strings.TrimSpace(input.Message),
			StatusBefore: &statusBefore,
			StatusAfter:  &statusAfter,
		}); err != nil {
			return fmt.Errorf("append audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "component status updated",
		slog.Int64("component_id", comp.ID),
		slog.String("from", statusBefore.String()),
		slog.String("to", comp.Status.String()),
		slog.String("user", user.Name),
	)

	return nil
}
