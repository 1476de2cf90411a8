package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// Report represents a user-submitted incident awaiting moderation.
// The canonical source field is URL; legacy payloads using "link" are
// normalized at the API boundary before a Report is constructed.
type Report struct {
	ID          types.ReportID     `json:"id" firestore:"id"`
	Title       string             `json:"title" firestore:"title"`
	Description string             `json:"description" firestore:"description"`
	URL         string             `json:"url" firestore:"url"`
	Severity    types.Severity     `json:"severity,omitempty" firestore:"severity,omitempty"`
	Date        string             `json:"date" firestore:"date"`
	Country     []string           `json:"country" firestore:"country"`
	Category    string             `json:"category" firestore:"category"`
	Manual      bool               `json:"manual" firestore:"manual"`
	Status      types.ReportStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time          `json:"created_at" firestore:"createdAt"`
}

// NewReport creates a pending self-report. An empty URL gets a synthetic
// manual-entry placeholder so downstream consumers always see a source.
func NewReport(title, description, url, date string, country []string, category string, now time.Time) (*Report, error) {
	if title == "" {
		return nil, goerr.New("report title is required")
	}
	if description == "" {
		return nil, goerr.New("report description is required")
	}
	if date == "" {
		return nil, goerr.New("report date is required")
	}
	if len(country) == 0 {
		return nil, goerr.New("report country is required")
	}
	if category == "" {
		return nil, goerr.New("report category is required")
	}

	id, err := types.NewReportID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate report ID")
	}

	if url == "" {
		url = fmt.Sprintf("https://manual-entry-%d", now.UnixMilli())
	}

	return &Report{
		ID:          id,
		Title:       title,
		Description: description,
		URL:         url,
		Date:        date,
		Country:     append([]string{}, country...),
		Category:    category,
		Manual:      true,
		Status:      types.ReportStatusPending,
		CreatedAt:   now,
	}, nil
}

// Transition applies a moderation status change, enforcing the one-way
// state machine.
func (r *Report) Transition(next types.ReportStatus) error {
	if !r.Status.CanTransitionTo(next) {
		return goerr.Wrap(ErrInvalidTransition, "status transition not allowed",
			goerr.V("from", r.Status),
			goerr.V("to", next),
		)
	}
	r.Status = next
	return nil
}

// ReportStats aggregates report counts per moderation status
type ReportStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Junk     int `json:"junk"`
}
