package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusBlocked   Status = "BLOCKED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusBlocked:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transition exists. PENDING is
// the only non-terminal status; deletion is possible from any status.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// CountsAsOccupied reports whether the status marks the room as actually in
// use for occupancy math. REJECTED never counts.
func (s Status) CountsAsOccupied() bool {
	return s == StatusConfirmed || s == StatusBlocked
}
