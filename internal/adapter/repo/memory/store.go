package memory

import (
	"context"
	"sort"
	"sync"

	"redscope/internal/app/ports"
	"redscope/internal/domain/gamestate"
)

// SnapshotRepo is the in-process snapshot store, used when no database
// is configured and as the test double for the gorm adapter.
type SnapshotRepo struct {
	mu     sync.RWMutex
	byStep map[int]gamestate.Snapshot
}

func NewSnapshotRepo() *SnapshotRepo {
	return &SnapshotRepo{byStep: make(map[int]gamestate.Snapshot)}
}

func (r *SnapshotRepo) Save(ctx context.Context, snapshot gamestate.Snapshot) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byStep[snapshot.StepCounter] = snapshot
	return nil
}

func (r *SnapshotRepo) GetByStep(ctx context.Context, step int) (gamestate.Snapshot, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.byStep[step]
	if !ok {
		return gamestate.Snapshot{}, ports.ErrNotFound
	}
	return snap, nil
}

func (r *SnapshotRepo) ListRecent(ctx context.Context, limit int) ([]gamestate.Snapshot, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	steps := make([]int, 0, len(r.byStep))
	for step := range r.byStep {
		steps = append(steps, step)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(steps)))
	if limit > 0 && len(steps) > limit {
		steps = steps[:limit]
	}
	out := make([]gamestate.Snapshot, 0, len(steps))
	for _, step := range steps {
		out = append(out, r.byStep[step])
	}
	return out, nil
}

var _ ports.SnapshotRepository = (*SnapshotRepo)(nil)
