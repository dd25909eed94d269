package domain

import "strings"

// User identifies the engineer/operator performing an operation.
// It is a value used to attribute audit log entries; ID is optional.
type User struct {
	ID   *int64
	Name string
}

// NewUser validates the name and returns a User.
func NewUser(id *int64, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, NewValidationError("name", "required")
	}
	return User{ID: id, Name: name}, nil
}
