package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// SubmitReportInput carries a validated self-report submission
type SubmitReportInput struct {
	Title       string
	Description string
	URL         string
	Severity    types.Severity
	Date        string
	Country     []string
	Category    string
}

// Reports handles self-report submission and moderation
type Reports struct {
	repo     interfaces.Repository
	spam     interfaces.SpamFilter
	taxonomy *model.CategoriesConfig
	clock    func() time.Time
}

// ReportsOption is a functional option for configuring Reports
type ReportsOption func(*Reports)

// WithSpamFilter enables LLM spam screening of submissions
func WithSpamFilter(filter interfaces.SpamFilter) ReportsOption {
	return func(u *Reports) {
		u.spam = filter
	}
}

// WithTaxonomy restricts submitted categories to a configured set. Without
// it any non-empty category is accepted.
func WithTaxonomy(taxonomy *model.CategoriesConfig) ReportsOption {
	return func(u *Reports) {
		u.taxonomy = taxonomy
	}
}

// WithReportsClock overrides the time source, mainly for tests
func WithReportsClock(clock func() time.Time) ReportsOption {
	return func(u *Reports) {
		u.clock = clock
	}
}

// NewReports creates a Reports use case
func NewReports(repo interfaces.Repository, opts ...ReportsOption) *Reports {
	u := &Reports{
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submit stores a new self-report. Submissions flagged as spam are kept but
// filed directly as junk so moderators can review the filter's work. Spam
// screening failures never block a submission.
func (u *Reports) Submit(ctx context.Context, input SubmitReportInput) (*model.Report, error) {
	if u.taxonomy != nil && input.Category != "" && !u.taxonomy.Accepts(input.Category) {
		return nil, goerr.New("unknown category", goerr.V("category", input.Category))
	}

	report, err := model.NewReport(input.Title, input.Description, input.URL,
		input.Date, input.Country, input.Category, u.clock())
	if err != nil {
		return nil, err
	}
	report.Severity = input.Severity

	if u.spam != nil {
		isSpam, err := u.spam.IsSpam(ctx, report.Title, report.Description, report.URL)
		if err != nil {
			ctxlog.From(ctx).Warn("Spam screening failed, accepting submission",
				"reportID", report.ID,
				"error", err,
			)
		} else if isSpam {
			ctxlog.From(ctx).Info("Submission classified as junk",
				"reportID", report.ID,
				"title", report.Title,
			)
			report.Status = types.ReportStatusJunk
		}
	}

	if err := u.repo.PutReport(ctx, report); err != nil {
		return nil, goerr.Wrap(err, "failed to store report")
	}
	return report, nil
}

// List returns all reports, newest first
func (u *Reports) List(ctx context.Context) ([]*model.Report, error) {
	reports, err := u.repo.ListReports(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}
	return reports, nil
}

// UpdateStatus applies a moderation decision. Repeating the current status
// is a no-op; any other transition from a decided state is rejected.
func (u *Reports) UpdateStatus(ctx context.Context, id types.ReportID, status types.ReportStatus) (*model.Report, error) {
	if !status.IsValid() {
		return nil, goerr.New("invalid report status", goerr.V("status", status))
	}

	report, err := u.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := report.Transition(status); err != nil {
		return nil, err
	}
	if err := u.repo.PutReport(ctx, report); err != nil {
		return nil, goerr.Wrap(err, "failed to update report")
	}
	return report, nil
}

// UpdateReportInput carries the editable fields of a report
type UpdateReportInput struct {
	Title       string
	Description string
	URL         string
	Severity    types.Severity
	Date        string
	Country     []string
	Category    string
}

// Update replaces a report's content fields. Status, identity and creation
// time are preserved; moderation state changes only via UpdateStatus.
func (u *Reports) Update(ctx context.Context, id types.ReportID, input UpdateReportInput) (*model.Report, error) {
	report, err := u.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, goerr.New("report title is required")
	}
	if input.Description == "" {
		return nil, goerr.New("report description is required")
	}

	report.Title = input.Title
	report.Description = input.Description
	if input.URL != "" {
		report.URL = input.URL
	}
	report.Severity = input.Severity
	if input.Date != "" {
		report.Date = input.Date
	}
	if len(input.Country) > 0 {
		report.Country = append([]string{}, input.Country...)
	}
	if input.Category != "" {
		report.Category = input.Category
	}

	if err := u.repo.PutReport(ctx, report); err != nil {
		return nil, goerr.Wrap(err, "failed to update report")
	}
	return report, nil
}

// Delete permanently removes a report from any state
func (u *Reports) Delete(ctx context.Context, id types.ReportID) error {
	return u.repo.DeleteReport(ctx, id)
}

// Stats tallies reports per moderation status
func (u *Reports) Stats(ctx context.Context) (*model.ReportStats, error) {
	reports, err := u.repo.ListReports(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}

	stats := &model.ReportStats{Total: len(reports)}
	for _, report := range reports {
		switch report.Status {
		case types.ReportStatusPending:
			stats.Pending++
		case types.ReportStatusApproved:
			stats.Approved++
		case types.ReportStatusRejected:
			stats.Rejected++
		case types.ReportStatusJunk:
			stats.Junk++
		}
	}
	return stats, nil
}
