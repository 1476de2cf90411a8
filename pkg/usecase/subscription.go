package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
	"github.com/aiwatch-dev/aiwatch/pkg/service/export"
	"github.com/aiwatch-dev/aiwatch/pkg/utils/async"
)

// CreateSubscriptionInput carries a new export subscription request
type CreateSubscriptionInput struct {
	Email           string
	Frequency       model.ExportFrequency
	Categories      []string
	Countries       []string
	Severities      []types.Severity
	Format          model.ExportFormat
	IncludeMetadata bool
	Notes           string
}

// Subscriptions manages recurring export subscriptions and their history
type Subscriptions struct {
	repo  interfaces.Repository
	clock func() time.Time
}

// SubscriptionsOption is a functional option for configuring Subscriptions
type SubscriptionsOption func(*Subscriptions)

// WithSubscriptionsClock overrides the time source, mainly for tests
func WithSubscriptionsClock(clock func() time.Time) SubscriptionsOption {
	return func(u *Subscriptions) {
		u.clock = clock
	}
}

// NewSubscriptions creates a Subscriptions use case
func NewSubscriptions(repo interfaces.Repository, opts ...SubscriptionsOption) *Subscriptions {
	u := &Subscriptions{
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create registers a new active subscription
func (u *Subscriptions) Create(ctx context.Context, input CreateSubscriptionInput) (*model.Subscription, error) {
	sub, err := model.NewSubscription(input.Email, input.Frequency, input.Categories, input.Format, u.clock())
	if err != nil {
		return nil, err
	}
	sub.Countries = append([]string{}, input.Countries...)
	sub.Severities = append([]types.Severity{}, input.Severities...)
	sub.IncludeMetadata = input.IncludeMetadata
	sub.Notes = input.Notes

	if err := u.repo.PutSubscription(ctx, sub); err != nil {
		return nil, goerr.Wrap(err, "failed to store subscription")
	}
	return sub, nil
}

// ListByEmail returns the subscriptions registered for an email address.
// An empty email lists everything.
func (u *Subscriptions) ListByEmail(ctx context.Context, email string) ([]*model.Subscription, error) {
	subs, err := u.repo.ListSubscriptions(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list subscriptions")
	}
	if email == "" {
		return subs, nil
	}

	matched := make([]*model.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.Email == email {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

// UpdateStatus pauses, resumes or cancels a subscription
func (u *Subscriptions) UpdateStatus(ctx context.Context, id types.SubscriptionID, status model.SubscriptionStatus) (*model.Subscription, error) {
	if !status.IsValid() {
		return nil, goerr.New("invalid subscription status", goerr.V("status", status))
	}

	sub, err := u.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Status = status
	switch status {
	case model.SubscriptionActive:
		next := model.NextExportTime(sub.Frequency, u.clock())
		sub.NextExport = &next
	default:
		sub.NextExport = nil
	}

	if err := u.repo.PutSubscription(ctx, sub); err != nil {
		return nil, goerr.Wrap(err, "failed to update subscription")
	}
	return sub, nil
}

// Delete removes a subscription permanently
func (u *Subscriptions) Delete(ctx context.Context, id types.SubscriptionID) error {
	return u.repo.DeleteSubscription(ctx, id)
}

// TriggerExport starts an on-demand export run in the background and
// returns its processing record immediately.
func (u *Subscriptions) TriggerExport(ctx context.Context, id types.SubscriptionID) (*model.ExportRecord, error) {
	sub, err := u.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status == model.SubscriptionCancelled {
		return nil, goerr.New("subscription is cancelled", goerr.V("id", id))
	}

	record, err := u.startRecord(ctx, sub)
	if err != nil {
		return nil, err
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return u.completeExport(ctx, sub, record)
	})
	return record, nil
}

// History returns the export records of one subscription, newest first
func (u *Subscriptions) History(ctx context.Context, id types.SubscriptionID) ([]*model.ExportRecord, error) {
	if _, err := u.repo.GetSubscription(ctx, id); err != nil {
		return nil, err
	}
	records, err := u.repo.ListExportRecords(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list export records")
	}
	return records, nil
}

// Stats summarizes subscription and export activity
func (u *Subscriptions) Stats(ctx context.Context) (*model.SubscriptionStats, error) {
	subs, err := u.repo.ListSubscriptions(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list subscriptions")
	}
	records, err := u.repo.ListExportRecords(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list export records")
	}

	stats := &model.SubscriptionStats{
		TotalSubscriptions: len(subs),
		TotalExports:       len(records),
	}
	for _, sub := range subs {
		if sub.Status == model.SubscriptionActive {
			stats.ActiveSubscriptions++
		}
	}
	for _, record := range records {
		if stats.LastExportDate == nil || record.ExportDate.After(*stats.LastExportDate) {
			date := record.ExportDate
			stats.LastExportDate = &date
		}
	}
	return stats, nil
}

// RunDueExports executes every active subscription whose next export slot
// has passed. Failures are isolated per subscription.
func (u *Subscriptions) RunDueExports(ctx context.Context) error {
	subs, err := u.repo.ListSubscriptions(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list subscriptions")
	}

	now := u.clock()
	var lastErr error
	for _, sub := range subs {
		if sub.Status != model.SubscriptionActive || sub.NextExport == nil || sub.NextExport.After(now) {
			continue
		}

		record, err := u.startRecord(ctx, sub)
		if err != nil {
			lastErr = err
			continue
		}
		if err := u.completeExport(ctx, sub, record); err != nil {
			ctxlog.From(ctx).Error("Subscription export failed",
				"subscriptionID", sub.ID,
				"error", err,
			)
			lastErr = err
		}
	}
	return lastErr
}

func (u *Subscriptions) startRecord(ctx context.Context, sub *model.Subscription) (*model.ExportRecord, error) {
	id, err := types.NewExportID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate export ID")
	}

	now := u.clock()
	record := &model.ExportRecord{
		ID:             id,
		SubscriptionID: sub.ID,
		ExportDate:     now,
		DownloadURL:    fmt.Sprintf("/downloads/export_%d.%s", now.UnixMilli(), sub.Format),
		Status:         model.ExportProcessing,
	}
	if err := u.repo.PutExportRecord(ctx, record); err != nil {
		return nil, goerr.Wrap(err, "failed to store export record")
	}
	return record, nil
}

// completeExport renders the subscription's data and finalizes its record.
// The rendered payload is discarded after sizing; downloads are served from
// the delivery channel, not from the dashboard.
func (u *Subscriptions) completeExport(ctx context.Context, sub *model.Subscription, record *model.ExportRecord) error {
	articles, err := u.repo.ListArticles(ctx)
	if err != nil {
		return u.failRecord(ctx, record, err)
	}

	filter := sub.FilterState()
	matched := make([]*model.Article, 0, len(articles))
	for _, article := range articles {
		if article.Matches(filter) {
			matched = append(matched, article)
		}
	}

	data, err := export.Render(matched, sub.Format)
	if err != nil {
		return u.failRecord(ctx, record, err)
	}

	record.RecordCount = len(matched)
	record.FileSize = export.FormatFileSize(len(data))
	record.Status = model.ExportCompleted
	if err := u.repo.PutExportRecord(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to finalize export record")
	}

	now := u.clock()
	sub.LastExport = &now
	next := model.NextExportTime(sub.Frequency, now)
	sub.NextExport = &next
	if err := u.repo.PutSubscription(ctx, sub); err != nil {
		return goerr.Wrap(err, "failed to update subscription schedule")
	}
	return nil
}

func (u *Subscriptions) failRecord(ctx context.Context, record *model.ExportRecord, cause error) error {
	record.Status = model.ExportFailed
	if err := u.repo.PutExportRecord(ctx, record); err != nil {
		ctxlog.From(ctx).Error("Failed to mark export record as failed",
			"recordID", record.ID,
			"error", err,
		)
	}
	return cause
}
