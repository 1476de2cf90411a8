package usecase_test

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/repository"
	"github.com/aiwatch-dev/aiwatch/pkg/usecase"
)

// gatedRepository blocks the first ListArticles call until released, so a
// test can force two fetches to overlap deterministically.
type gatedRepository struct {
	interfaces.Repository
	calls   atomic.Int64
	release chan struct{}
}

func (r *gatedRepository) ListArticles(ctx context.Context) ([]*model.Article, error) {
	if r.calls.Add(1) == 1 {
		<-r.release
	}
	return r.Repository.ListArticles(ctx)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("apply installs snapshot", func(t *testing.T) {
		repo := repository.NewMemory()
		seedArticles(t, repo)
		d := usecase.NewDashboard(usecase.NewStatistics(repo))

		result, stale, err := d.Apply(ctx, nil)
		gt.NoError(t, err)
		gt.False(t, stale)
		gt.NotNil(t, result)
		gt.Equal(t, d.Snapshot().Stats.TotalIncidents, 4)
	})

	t.Run("refresh reuses current filter", func(t *testing.T) {
		repo := repository.NewMemory()
		seedArticles(t, repo)
		d := usecase.NewDashboard(usecase.NewStatistics(repo))

		filter := model.NewFilterState().WithCountries([]string{"japan"})
		_, _, err := d.Apply(ctx, filter)
		gt.NoError(t, err)
		_, stale, err := d.Refresh(ctx)
		gt.NoError(t, err)
		gt.False(t, stale)
		gt.Equal(t, model.TotalCount(d.Snapshot().Counts), 1)
	})

	t.Run("slow older fetch cannot overwrite newer result", func(t *testing.T) {
		inner := repository.NewMemory()
		seedArticles(t, inner)
		repo := &gatedRepository{Repository: inner, release: make(chan struct{})}
		d := usecase.NewDashboard(usecase.NewStatistics(repo))

		oldFilter := model.NewFilterState().WithCountries([]string{"japan"})
		newFilter := model.NewFilterState().WithCountries([]string{"germany"})

		var wg sync.WaitGroup
		wg.Add(1)
		staleCh := make(chan bool, 1)
		go func() {
			defer wg.Done()
			_, stale, err := d.Apply(ctx, oldFilter)
			gt.NoError(t, err)
			staleCh <- stale
		}()

		// Wait until the first fetch is parked on the gate
		for repo.calls.Load() == 0 {
			runtime.Gosched()
		}

		_, stale, err := d.Apply(ctx, newFilter)
		gt.NoError(t, err)
		gt.False(t, stale)

		close(repo.release)
		wg.Wait()

		gt.True(t, <-staleCh)
		gt.Equal(t, d.Filter().Countries[0], "germany")
		gt.Equal(t, model.TotalCount(d.Snapshot().Counts), 1)
	})
}
