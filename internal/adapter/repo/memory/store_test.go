package memory

import (
	"context"
	"errors"
	"testing"

	"redscope/internal/app/ports"
	"redscope/internal/domain/gamestate"
)

func TestSnapshotRepo_SaveOverwritesStep(t *testing.T) {
	repo := NewSnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, gamestate.Snapshot{StepCounter: 5, PlayerName: "OLD"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, gamestate.Snapshot{StepCounter: 5, PlayerName: "NEW"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByStep(ctx, 5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PlayerName != "NEW" {
		t.Fatalf("expected overwrite, got %q", got.PlayerName)
	}
}

func TestSnapshotRepo_GetUnknownStep(t *testing.T) {
	repo := NewSnapshotRepo()
	_, err := repo.GetByStep(context.Background(), 1)
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotRepo_ListRecentOrdersByStepDesc(t *testing.T) {
	repo := NewSnapshotRepo()
	ctx := context.Background()
	for _, step := range []int{3, 1, 7, 5} {
		if err := repo.Save(ctx, gamestate.Snapshot{StepCounter: step}); err != nil {
			t.Fatalf("save %d: %v", step, err)
		}
	}

	got, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []int{7, 5, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d snapshots, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.StepCounter != want[i] {
			t.Fatalf("position %d: step %d, want %d", i, s.StepCounter, want[i])
		}
	}

	all, err := repo.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("limit 0 must return everything, got %d", len(all))
	}
}
