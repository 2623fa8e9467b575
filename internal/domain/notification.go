package domain

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// String representation (for logging)
func (s Severity) String() string {
	return string(s)
}

// Notification is an ephemeral user-facing message. IDs are time-derived and
// strictly increasing within a store.
type Notification struct {
	ID       int64    `json:"id"`
	Severity Severity `json:"type"`
	Message  string   `json:"message"`
}
