package export

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/robfig/cron/v3"
)

// Runner executes all subscription exports that are due
type Runner interface {
	RunDueExports(ctx context.Context) error
}

// Scheduler periodically triggers due subscription exports
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
}

// NewScheduler creates a scheduler that checks for due exports on the given
// cron spec (e.g. "@hourly").
func NewScheduler(ctx context.Context, runner Runner, spec string) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := runner.RunDueExports(ctx); err != nil {
			ctxlog.From(ctx).Error("Scheduled export run failed",
				"error", err,
			)
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:   c,
		runner: runner,
	}, nil
}

// Start begins scheduled execution in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
