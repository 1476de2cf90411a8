package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// ExportFrequency is how often a subscription's export runs
type ExportFrequency string

const (
	FrequencyDaily   ExportFrequency = "daily"
	FrequencyWeekly  ExportFrequency = "weekly"
	FrequencyMonthly ExportFrequency = "monthly"
)

// IsValid checks if the frequency is valid
func (f ExportFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// SubscriptionStatus is the lifecycle state of a subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// IsValid checks if the subscription status is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionPaused, SubscriptionCancelled:
		return true
	default:
		return false
	}
}

// ExportFormat selects the rendering of exported data
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// IsValid checks if the export format is valid
func (f ExportFormat) IsValid() bool {
	return f == FormatCSV || f == FormatJSON
}

// Subscription is a recurring data export subscription
type Subscription struct {
	ID              types.SubscriptionID `json:"id" firestore:"id"`
	Email           string               `json:"email" firestore:"email"`
	Frequency       ExportFrequency      `json:"frequency" firestore:"frequency"`
	Categories      []string             `json:"categories" firestore:"categories"`
	Countries       []string             `json:"countries,omitempty" firestore:"countries,omitempty"`
	Severities      []types.Severity     `json:"severities,omitempty" firestore:"severities,omitempty"`
	Format          ExportFormat         `json:"format" firestore:"format"`
	IncludeMetadata bool                 `json:"includeMetadata" firestore:"includeMetadata"`
	Notes           string               `json:"notes,omitempty" firestore:"notes,omitempty"`
	Status          SubscriptionStatus   `json:"status" firestore:"status"`
	CreatedAt       time.Time            `json:"createdAt" firestore:"createdAt"`
	LastExport      *time.Time           `json:"lastExport,omitempty" firestore:"lastExport,omitempty"`
	NextExport      *time.Time           `json:"nextExport,omitempty" firestore:"nextExport,omitempty"`
}

// NewSubscription creates an active subscription with its first export slot
// scheduled.
func NewSubscription(email string, frequency ExportFrequency, categories []string, format ExportFormat, now time.Time) (*Subscription, error) {
	if email == "" {
		return nil, goerr.New("subscription email is required")
	}
	if !frequency.IsValid() {
		return nil, goerr.New("invalid export frequency", goerr.V("frequency", frequency))
	}
	if !format.IsValid() {
		return nil, goerr.New("invalid export format", goerr.V("format", format))
	}

	id, err := types.NewSubscriptionID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate subscription ID")
	}

	next := NextExportTime(frequency, now)
	return &Subscription{
		ID:         id,
		Email:      email,
		Frequency:  frequency,
		Categories: append([]string{}, categories...),
		Format:     format,
		Status:     SubscriptionActive,
		CreatedAt:  now,
		NextExport: &next,
	}, nil
}

// NextExportTime computes the next delivery slot for a frequency. Deliveries
// land at 09:00 local time for a consistent schedule.
func NextExportTime(frequency ExportFrequency, now time.Time) time.Time {
	next := now
	switch frequency {
	case FrequencyDaily:
		next = next.AddDate(0, 0, 1)
	case FrequencyWeekly:
		next = next.AddDate(0, 0, 7)
	case FrequencyMonthly:
		next = next.AddDate(0, 1, 0)
	}
	return time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, next.Location())
}

// FilterState converts the subscription's selection into a dashboard filter
func (s *Subscription) FilterState() *FilterState {
	f := NewFilterState()
	f.Categories = append([]string{}, s.Categories...)
	f.Countries = append([]string{}, s.Countries...)
	f.Severities = append([]types.Severity{}, s.Severities...)
	return f
}

// ExportStatus is the lifecycle state of a single export run
type ExportStatus string

const (
	ExportProcessing ExportStatus = "processing"
	ExportCompleted  ExportStatus = "completed"
	ExportFailed     ExportStatus = "failed"
)

// ExportRecord is one entry of a subscription's export history
type ExportRecord struct {
	ID             types.ExportID       `json:"id" firestore:"id"`
	SubscriptionID types.SubscriptionID `json:"subscriptionId" firestore:"subscriptionId"`
	ExportDate     time.Time            `json:"exportDate" firestore:"exportDate"`
	RecordCount    int                  `json:"recordCount" firestore:"recordCount"`
	FileSize       string               `json:"fileSize" firestore:"fileSize"`
	DownloadURL    string               `json:"downloadUrl" firestore:"downloadUrl"`
	Status         ExportStatus         `json:"status" firestore:"status"`
}

// SubscriptionStats summarizes subscription and export activity
type SubscriptionStats struct {
	TotalSubscriptions  int        `json:"totalSubscriptions"`
	ActiveSubscriptions int        `json:"activeSubscriptions"`
	TotalExports        int        `json:"totalExports"`
	LastExportDate      *time.Time `json:"lastExportDate,omitempty"`
}
