package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
	"github.com/aiwatch-dev/aiwatch/pkg/repository"
	"github.com/aiwatch-dev/aiwatch/pkg/usecase"
)

type spamFilterStub struct {
	verdict bool
	err     error
	calls   int
}

func (s *spamFilterStub) IsSpam(ctx context.Context, title, description, url string) (bool, error) {
	s.calls++
	return s.verdict, s.err
}

func submitInput() usecase.SubmitReportInput {
	return usecase.SubmitReportInput{
		Title:       "Delivery drone crashed into car",
		Description: "An autonomous delivery drone lost control and damaged a parked vehicle",
		Severity:    types.SeverityAccident,
		Date:        "2025-06-10",
		Country:     []string{"Germany"},
		Category:    "Drones",
	}
}

func TestReportSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("legitimate submission is pending", func(t *testing.T) {
		repo := repository.NewMemory()
		filter := &spamFilterStub{verdict: false}
		uc := usecase.NewReports(repo, usecase.WithSpamFilter(filter))

		report := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
		gt.Equal(t, report.Status, types.ReportStatusPending)
		gt.True(t, report.Manual)
		gt.Equal(t, filter.calls, 1)

		stored := gt.R1(repo.GetReport(ctx, report.ID)).NoError(t)
		gt.Equal(t, stored.Status, types.ReportStatusPending)
	})

	t.Run("spam submission is filed as junk", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewReports(repo, usecase.WithSpamFilter(&spamFilterStub{verdict: true}))

		report := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
		gt.Equal(t, report.Status, types.ReportStatusJunk)
	})

	t.Run("spam filter failure accepts submission", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewReports(repo, usecase.WithSpamFilter(&spamFilterStub{err: goerr.New("llm down")}))

		report := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
		gt.Equal(t, report.Status, types.ReportStatusPending)
	})

	t.Run("empty url gets manual entry placeholder", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewReports(repo)

		report := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
		gt.True(t, strings.HasPrefix(report.URL, "https://manual-entry-"))
	})

	t.Run("missing title rejected", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewReports(repo)

		input := submitInput()
		input.Title = ""
		_, err := uc.Submit(ctx, input)
		gt.Error(t, err)
	})
}

func TestReportModeration(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*usecase.Reports, *model.Report) {
		t.Helper()
		repo := repository.NewMemory()
		uc := usecase.NewReports(repo)
		report := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
		return uc, report
	}

	t.Run("approve pending", func(t *testing.T) {
		uc, report := setup(t)
		updated := gt.R1(uc.UpdateStatus(ctx, report.ID, types.ReportStatusApproved)).NoError(t)
		gt.Equal(t, updated.Status, types.ReportStatusApproved)
	})

	t.Run("decided reports are frozen", func(t *testing.T) {
		uc, report := setup(t)
		gt.R1(uc.UpdateStatus(ctx, report.ID, types.ReportStatusRejected)).NoError(t)

		_, err := uc.UpdateStatus(ctx, report.ID, types.ReportStatusApproved)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidTransition))
	})

	t.Run("same status is idempotent", func(t *testing.T) {
		uc, report := setup(t)
		gt.R1(uc.UpdateStatus(ctx, report.ID, types.ReportStatusJunk)).NoError(t)
		updated := gt.R1(uc.UpdateStatus(ctx, report.ID, types.ReportStatusJunk)).NoError(t)
		gt.Equal(t, updated.Status, types.ReportStatusJunk)
	})

	t.Run("delete is terminal from any state", func(t *testing.T) {
		uc, report := setup(t)
		gt.R1(uc.UpdateStatus(ctx, report.ID, types.ReportStatusApproved)).NoError(t)
		gt.NoError(t, uc.Delete(ctx, report.ID))

		_, err := uc.UpdateStatus(ctx, report.ID, types.ReportStatusApproved)
		gt.Error(t, err)
	})

	t.Run("update replaces content but keeps status", func(t *testing.T) {
		uc, report := setup(t)
		gt.R1(uc.UpdateStatus(ctx, report.ID, types.ReportStatusApproved)).NoError(t)

		updated := gt.R1(uc.Update(ctx, report.ID, usecase.UpdateReportInput{
			Title:       "Corrected title",
			Description: "Corrected description",
			Severity:    types.SeverityFatality,
		})).NoError(t)
		gt.Equal(t, updated.Title, "Corrected title")
		gt.Equal(t, updated.Severity, types.SeverityFatality)
		gt.Equal(t, updated.Status, types.ReportStatusApproved)
		gt.Equal(t, updated.ID, report.ID)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		uc, report := setup(t)
		_, err := uc.UpdateStatus(ctx, report.ID, types.ReportStatus("archived"))
		gt.Error(t, err)
	})
}

func TestReportStats(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewReports(repo)

	first := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
	gt.R1(uc.Submit(ctx, submitInput())).NoError(t)
	third := gt.R1(uc.Submit(ctx, submitInput())).NoError(t)

	gt.R1(uc.UpdateStatus(ctx, first.ID, types.ReportStatusApproved)).NoError(t)
	gt.R1(uc.UpdateStatus(ctx, third.ID, types.ReportStatusJunk)).NoError(t)

	stats := gt.R1(uc.Stats(ctx)).NoError(t)
	gt.Equal(t, stats.Total, 3)
	gt.Equal(t, stats.Pending, 1)
	gt.Equal(t, stats.Approved, 1)
	gt.Equal(t, stats.Junk, 1)
	gt.Equal(t, stats.Rejected, 0)
}
