package domain

import "time"

// LogEntry is one append-only audit record. Every successful mutation of a
// Component writes exactly one LogEntry in the same transaction; entries are
// never updated or deleted.
type LogEntry struct {
	ID          int64
	ComponentID int64
	Timestamp   time.Time
	UserName    string
	Action      LogAction
	Message     string

	// Before/after snapshots, populated according to the action and
	// nulled otherwise.
	StatusBefore *Status
	StatusAfter  *Status
	QtyBefore    *int64
	QtyAfter     *int64
}
