package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
)

// Dashboard is the stateful dashboard view model. Concurrent refreshes are
// serialized by a monotonic request sequence: each Apply call takes a fresh
// token, and only the newest token may install its result, so a slow older
// fetch can never overwrite a newer one. A failed fetch keeps the previous
// snapshot intact.
type Dashboard struct {
	stats *Statistics

	seq atomic.Uint64

	mu       sync.Mutex
	filter   *model.FilterState
	snapshot *model.Statistics
}

// NewDashboard creates a dashboard view model over the statistics use case
func NewDashboard(stats *Statistics) *Dashboard {
	return &Dashboard{
		stats:  stats,
		filter: model.NewFilterState(),
	}
}

// Apply fetches statistics for a new filter selection. The returned stale
// flag is true when a newer Apply superseded this call while its fetch was
// in flight; the result is then discarded and the caller should drop it too.
func (d *Dashboard) Apply(ctx context.Context, filter *model.FilterState) (*model.Statistics, bool, error) {
	if filter == nil {
		filter = model.NewFilterState()
	}
	token := d.seq.Add(1)

	result, err := d.stats.Fetch(ctx, filter)
	if err != nil {
		return nil, false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.seq.Load() {
		return nil, true, nil
	}
	d.filter = filter
	d.snapshot = result
	return result, false, nil
}

// Refresh re-fetches statistics for the current filter selection
func (d *Dashboard) Refresh(ctx context.Context) (*model.Statistics, bool, error) {
	d.mu.Lock()
	filter := d.filter
	d.mu.Unlock()
	return d.Apply(ctx, filter)
}

// Snapshot returns the last successfully installed statistics, or nil
// before the first fetch.
func (d *Dashboard) Snapshot() *model.Statistics {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

// Filter returns the currently applied filter selection
func (d *Dashboard) Filter() *model.FilterState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter
}
