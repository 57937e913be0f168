package gamestate

import (
	"encoding/json"
	"fmt"

	"redscope/internal/domain/tiles"
)

// HPPair is a current/max hit point reading.
type HPPair struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// HealthBucket buckets an HP pair for the text summary.
func (p HPPair) HealthBucket() string {
	if p.Max <= 0 || p.Current <= 0 {
		return "Fainted"
	}
	ratio := float64(p.Current) / float64(p.Max)
	switch {
	case ratio > 0.75:
		return "Healthy"
	case ratio > 0.25:
		return "Injured"
	default:
		return "Critical"
	}
}

// Position is a screen tile coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PositionWithDistance tags a tile coordinate with its Manhattan
// distance from the screen center.
type PositionWithDistance struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Distance int `json:"distance"`
}

// Directions is the immediate 4-direction movement availability around
// the player's collision anchor.
type Directions struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// Snapshot is the complete extracted state for one frame. Built once
// per extraction request, immutable afterwards.
type Snapshot struct {
	StepCounter int    `json:"step_counter"`
	Timestamp   string `json:"timestamp"`

	PlayerName         string   `json:"player_name"`
	CurrentMap         int      `json:"current_map"`
	PlayerX            int      `json:"player_x"`
	PlayerY            int      `json:"player_y"`
	PartyCount         int      `json:"party_count"`
	PartyPokemonLevels []int    `json:"party_pokemon_levels"`
	PartyPokemonHP     []HPPair `json:"party_pokemon_hp"`
	BadgesObtained     int      `json:"badges_obtained"`
	IsInBattle         bool     `json:"is_in_battle"`
	PlayerMonHP        *HPPair  `json:"player_mon_hp"`
	EnemyMonHP         *HPPair  `json:"enemy_mon_hp"`
	EventFlagsSet      int      `json:"event_flags_set"`

	MapLoadingStatus int             `json:"map_loading_status"`
	CurrentTileset   tiles.TilesetID `json:"current_tileset"`

	TileMatrix *tiles.Grid `json:"tile_matrix"`

	WalkableTiles    []PositionWithDistance `json:"walkable_tiles"`
	BlockedTiles     []PositionWithDistance `json:"blocked_tiles"`
	EncounterTiles   []Position             `json:"encounter_tiles"`
	WarpTiles        []Position             `json:"warp_tiles"`
	InteractiveTiles []Position             `json:"interactive_tiles"`
	TileTypeCounts   map[string]int         `json:"tile_type_counts"`

	DirectionsAvailable Directions `json:"directions_available"`
}

// Transitioning reports whether the snapshot was captured mid map
// transition. Only status values 1-3 mean an active transition; 16 is
// a stable loaded state.
func (s Snapshot) Transitioning() bool {
	return s.MapLoadingStatus >= 1 && s.MapLoadingStatus <= 3
}

func (s Snapshot) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// SnapshotFromJSON restores a persisted snapshot. Malformed payloads
// and invalid enum values are structural errors.
func SnapshotFromJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.TileMatrix != nil && len(s.TileMatrix.Tiles) > 0 {
		if len(s.TileMatrix.Tiles) != s.TileMatrix.Height {
			return Snapshot{}, fmt.Errorf("snapshot tile matrix has %d rows, header says %d",
				len(s.TileMatrix.Tiles), s.TileMatrix.Height)
		}
	}
	return s, nil
}
