// Package model holds the gorm row types for the snapshot store.
package model

import "time"

// Snapshot is one persisted extraction, keyed by step counter. The
// full snapshot travels as a JSON payload; the scalar columns exist
// for querying runs without decoding payloads.
type Snapshot struct {
	StepCounter int32     `gorm:"column:step_counter;primaryKey"`
	CurrentMap  int32     `gorm:"column:current_map"`
	PlayerX     int32     `gorm:"column:player_x"`
	PlayerY     int32     `gorm:"column:player_y"`
	Payload     []byte    `gorm:"column:payload"`
	CapturedAt  time.Time `gorm:"column:captured_at"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}
