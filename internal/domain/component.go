package domain

import (
	"fmt"
	"strings"
	"time"
)

// Component represents a physical/electronic component being tracked.
// ID is assigned by storage on creation and immutable thereafter.
type Component struct {
	ID          int64
	Name        string
	Description string
	Status      Status
	Quantity    int64
	MinQuantity int64
	Notes       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewComponent validates the fields and returns a Component ready for
// persistence. Name is trimmed; an empty description is allowed.
func NewComponent(name, description string, status Status, quantity, minQuantity int64) (*Component, error) {
	var errs []FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if !status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: fmt.Sprintf("invalid status %q", status)})
	}
	if quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "must be >= 0"})
	}
	if minQuantity < 0 {
		errs = append(errs, FieldError{Field: "min_quantity", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &Component{
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      status,
		Quantity:    quantity,
		MinQuantity: minQuantity,
	}, nil
}

// UpdateStatus replaces the status after membership validation.
// There is no forbidden-transition graph: any valid status may follow any other.
func (c *Component) UpdateStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return NewValidationError("status", fmt.Sprintf("invalid status %q", newStatus))
	}
	c.Status = newStatus
	return nil
}

// AdjustQuantity applies a delta (positive = restock, negative = consume).
// The resulting quantity may never go below zero; this is the sole
// quantity-mutation path, so negative stock can never reach storage.
func (c *Component) AdjustQuantity(delta int64) error {
	newQty := c.Quantity + delta
	if newQty < 0 {
		return NewValidationError("quantity", "cannot go below 0")
	}
	c.Quantity = newQty
	return nil
}

// RequiresReplenishment reports whether stock is at or below the threshold.
func (c *Component) RequiresReplenishment() bool {
	return c.Quantity <= c.MinQuantity
}

// AddNote appends an operational note. Notes are in-memory only for now;
// they are not persisted by the repository layer.
func (c *Component) AddNote(note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return NewValidationError("note", "required")
	}
	c.Notes = append(c.Notes, note)
	return nil
}
