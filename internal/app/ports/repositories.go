package ports

import (
	"context"

	"redscope/internal/domain/gamestate"
)

// SnapshotRepository persists extracted snapshots keyed by step counter
// so runs can be logged and replayed across process boundaries.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot gamestate.Snapshot) error
	GetByStep(ctx context.Context, step int) (gamestate.Snapshot, error)
	ListRecent(ctx context.Context, limit int) ([]gamestate.Snapshot, error)
}
