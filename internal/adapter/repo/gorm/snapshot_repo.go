package gormrepo

import (
	"context"
	"errors"
	"time"

	"redscope/internal/adapter/repo/gorm/model"
	"redscope/internal/app/ports"
	"redscope/internal/domain/gamestate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

// Save upserts on step counter: re-extracting the same step replaces
// the stored snapshot.
func (r SnapshotRepo) Save(ctx context.Context, snapshot gamestate.Snapshot) error {
	payload, err := snapshot.ToJSON()
	if err != nil {
		return err
	}
	capturedAt, parseErr := time.Parse(time.RFC3339, snapshot.Timestamp)
	if parseErr != nil {
		capturedAt = time.Now()
	}
	row := model.Snapshot{
		StepCounter: int32(snapshot.StepCounter),
		CurrentMap:  int32(snapshot.CurrentMap),
		PlayerX:     int32(snapshot.PlayerX),
		PlayerY:     int32(snapshot.PlayerY),
		Payload:     payload,
		CapturedAt:  capturedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "step_counter"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_map", "player_x", "player_y", "payload", "captured_at"}),
	}).Create(&row).Error
}

func (r SnapshotRepo) GetByStep(ctx context.Context, step int) (gamestate.Snapshot, error) {
	var row model.Snapshot
	if err := r.db.WithContext(ctx).Where("step_counter = ?", step).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gamestate.Snapshot{}, ports.ErrNotFound
		}
		return gamestate.Snapshot{}, err
	}
	return gamestate.SnapshotFromJSON(row.Payload)
}

func (r SnapshotRepo) ListRecent(ctx context.Context, limit int) ([]gamestate.Snapshot, error) {
	rows := []model.Snapshot{}
	query := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "step_counter"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]gamestate.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := gamestate.SnapshotFromJSON(row.Payload)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

var _ ports.SnapshotRepository = SnapshotRepo{}
