package domain

// Status represents the operational state of a component.
// Any status may transition to any other; validity is membership-based.
type Status string

const (
	StatusActive   Status = "active"
	StatusIdle     Status = "idle"
	StatusDefected Status = "defected"
	StatusRetired  Status = "retired"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusIdle, StatusDefected, StatusRetired:
		return true
	}
	return false
}

// AllStatuses returns every valid status, in display order.
func AllStatuses() []Status {
	return []Status{StatusActive, StatusIdle, StatusDefected, StatusRetired}
}

// LogAction represents the kind of mutation recorded in the audit log.
type LogAction string

const (
	LogActionCreateComponent LogAction = "CREATE_COMPONENT"
	LogActionUpdateStatus    LogAction = "UPDATE_STATUS"
	LogActionAdjustQuantity  LogAction = "ADJUST_QUANTITY"
	LogActionSetMinQuantity  LogAction = "SET_MIN_QUANTITY"
)

func (a LogAction) String() string { return string(a) }

func (a LogAction) IsValid() bool {
	switch a {
	case LogActionCreateComponent, LogActionUpdateStatus,
		LogActionAdjustQuantity, LogActionSetMinQuantity:
		return true
	}
	return false
}
