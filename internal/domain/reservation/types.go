package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ConsumesInventory reports whether a reservation in this status holds a room unit.
func (s Status) ConsumesInventory() bool {
	return s == StatusActive
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
