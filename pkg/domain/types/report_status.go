package types

// ReportStatus represents the moderation status of a self-report
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
	ReportStatusJunk     ReportStatus = "junk"
)

// String returns the string representation of the status
func (s ReportStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected, ReportStatusJunk:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a moderation transition from s to next is
// allowed. Transitions are one-way: pending may move to approved, rejected
// or junk, and nothing moves back to pending. Re-applying the current status
// is permitted so that retried requests stay idempotent.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	switch s {
	case ReportStatusPending:
		return next != ReportStatusPending
	default:
		return false
	}
}
