package interfaces

import "context"

// SpamFilter screens submitted self-reports before they reach moderation
type SpamFilter interface {
	// IsSpam reports whether the submission looks like junk. Implementations
	// must fail open: on any upstream error they return (false, err) and the
	// caller files the report as pending.
	IsSpam(ctx context.Context, title, description, url string) (bool, error)
}
