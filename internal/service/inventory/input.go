package inventory

import (
	"github.com/heartmarshall/partkeeper/internal/domain"
)

// AddComponentInput holds the parameters for creating a component.
type AddComponentInput struct {
	Name        string
	Description string
	Status      domain.Status
	Quantity    int64
	MinQuantity int64
}

// UpdateStatusInput holds the parameters for a status change.
type UpdateStatusInput struct {
	ComponentID int64
	NewStatus   domain.Status
	Message     string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.ComponentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "component_id", Message: "required"})
	}
	if !i.NewStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdjustQuantityInput holds the parameters for a quantity adjustment.
// Delta may be positive (restock) or negative (consume).
type AdjustQuantityInput struct {
	ComponentID int64
	Delta       int64
	Message     string
}

// Validate checks all fields and collects all errors.
func (i AdjustQuantityInput) Validate() error {
	if i.ComponentID <= 0 {
		return domain.NewValidationError("component_id", "required")
	}
	return nil
}

// SetMinQuantityInput holds the parameters for a threshold change.
type SetMinQuantityInput struct {
	ComponentID int64
	MinQuantity int64
	Message     string
}

// Validate checks all fields and collects all errors.
func (i SetMinQuantityInput) Validate() error {
	var errs []domain.FieldError
	if i.ComponentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "component_id", Message: "required"})
	}
	if i.MinQuantity < 0 {
		errs = append(errs, domain.FieldError{Field: "min_quantity", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLogsInput holds the parameters for listing audit entries.
// ComponentID nil means global scope.
type ListLogsInput struct {
	ComponentID *int64
	Limit       int
}

// Validate checks all fields and collects all errors.
func (i ListLogsInput) Validate() error {
	var errs []domain.FieldError
	if i.ComponentID != nil && *i.ComponentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "component_id", Message: "must be positive"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
