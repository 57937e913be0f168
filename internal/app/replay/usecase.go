package replay

import (
	"context"
	"errors"

	"redscope/internal/app/ports"
	"redscope/internal/domain/gamestate"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase serves previously persisted snapshots so a run can be
// replayed by another process.
type UseCase struct {
	Snapshots ports.SnapshotRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Snapshots == nil {
		return Response{}, ErrInvalidRequest
	}
	if req.Step != nil {
		if *req.Step < 0 {
			return Response{}, ErrInvalidRequest
		}
		snap, err := u.Snapshots.GetByStep(ctx, *req.Step)
		if err != nil {
			return Response{}, err
		}
		return Response{Snapshots: []gamestate.Snapshot{snap}}, nil
	}
	if req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	snaps, err := u.Snapshots.ListRecent(ctx, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Snapshots: snaps}, nil
}
