package query

import (
	"redscope/internal/domain/gamestate"
	"redscope/internal/domain/tiles"
)

type NearestRequest struct {
	StepCounter int
	TileType    string
	MaxCount    int
}

type NearestResponse struct {
	TileType string       `json:"tile_type"`
	Tiles    []tiles.Tile `json:"tiles"`
}

type NeighborhoodRequest struct {
	StepCounter int
	Radius      int
}

type NeighborhoodResponse struct {
	Radius              int                              `json:"radius"`
	WalkableTiles       []gamestate.PositionWithDistance `json:"walkable_tiles"`
	BlockedTiles        []gamestate.PositionWithDistance `json:"blocked_tiles"`
	EncounterTiles      []gamestate.Position             `json:"encounter_tiles"`
	WarpTiles           []gamestate.Position             `json:"warp_tiles"`
	TileTypeCounts      map[string]int                   `json:"tile_type_counts"`
	DirectionsAvailable gamestate.Directions             `json:"directions_available"`
}

type CategorizeRequest struct {
	StepCounter int
}

// Categories groups the full grid into named buckets. The zero value
// with AnalysisSuccessful=false is the explicit failure sentinel.
type Categories struct {
	Water       []tiles.Tile `json:"water"`
	Trees       []tiles.Tile `json:"trees"`
	Grass       []tiles.Tile `json:"grass"`
	Doors       []tiles.Tile `json:"doors"`
	Walkable    []tiles.Tile `json:"walkable"`
	Blocked     []tiles.Tile `json:"blocked"`
	Interactive []tiles.Tile `json:"interactive"`
	Encounters  []tiles.Tile `json:"encounters"`
	Warps       []tiles.Tile `json:"warps"`
	Special     []tiles.Tile `json:"special"`
	Metadata    Metadata     `json:"metadata"`
}

type Metadata struct {
	CurrentMap         *int `json:"current_map"`
	TilesetID          *int `json:"tileset_id"`
	TotalTiles         int  `json:"total_tiles"`
	WalkableCount      int  `json:"walkable_count"`
	BlockedCount       int  `json:"blocked_count"`
	InteractiveCount   int  `json:"interactive_count"`
	AnalysisSuccessful bool `json:"analysis_successful"`
}
