package tiles

import (
	"encoding/json"
	"fmt"
)

// Screen dimensions in 8x8 tiles.
const (
	ScreenWidth  = 20
	ScreenHeight = 18
)

// Tile is one screen cell's complete semantic description. Built fresh
// on every extraction, immutable once built; tiles carry no identity
// across snapshots.
type Tile struct {
	TileID    int       `json:"tile_id"`
	ScreenX   int       `json:"screen_x"`
	ScreenY   int       `json:"screen_y"`
	MapX      int       `json:"map_x"`
	MapY      int       `json:"map_y"`
	TilesetID TilesetID `json:"tileset_id"`
	TileType  TileType  `json:"tile_type"`

	IsWalkable       bool    `json:"is_walkable"`
	IsLedge          bool    `json:"is_ledge"`
	LedgeDirection   *string `json:"ledge_direction"`
	MovementModifier float64 `json:"movement_modifier"`

	IsEncounterTile bool `json:"is_encounter_tile"`
	IsWarpTile      bool `json:"is_warp_tile"`
	IsAnimated      bool `json:"is_animated"`
	AnimationSpeed  int  `json:"animation_speed"`
	LightLevel      int  `json:"light_level"`

	HasSign            bool `json:"has_sign"`
	HasBookshelf       bool `json:"has_bookshelf"`
	HasStrengthBoulder bool `json:"has_strength_boulder"`
	IsCuttableTree     bool `json:"is_cuttable_tree"`
	IsPCAccessible     bool `json:"is_pc_accessible"`

	InTrainerSightLine bool `json:"in_trainer_sight_line"`
	TrainerID          *int `json:"trainer_id"`
	HiddenItemID       *int `json:"hidden_item_id"`
	RequiresItemfinder bool `json:"requires_itemfinder"`

	IsSafariZoneStep bool `json:"is_safari_zone_step"`
	IsGameCornerTile bool `json:"is_game_corner_tile"`
	IsFlyDestination bool `json:"is_fly_destination"`

	HasFootstepSound   bool `json:"has_footstep_sound"`
	SpritePriority     int  `json:"sprite_priority"`
	BackgroundPriority int  `json:"background_priority"`
	ElevationPair      *int `json:"elevation_pair"`

	SpriteOccupancyID     int     `json:"sprite_occupancy_id"`
	BlocksLight           bool    `json:"blocks_light"`
	WaterCurrentDirection *string `json:"water_current_direction"`
	WarpDestinationMap    *int    `json:"warp_destination_map"`
	WarpDestinationX      *int    `json:"warp_destination_x"`
	WarpDestinationY      *int    `json:"warp_destination_y"`
}

// UnmarshalJSON validates the enum field so that corrupt persisted
// payloads fail loudly instead of leaking bad categories downstream.
func (t *TileType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTileType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (id *TilesetID) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	v := TilesetID(n)
	if !v.Valid() {
		return fmt.Errorf("unknown tileset id %d", n)
	}
	*id = v
	return nil
}

// Grid is the 20x18 screen capture, row-major, with the map context it
// was taken under. An empty Tiles slice means the map was transitioning
// when the capture ran.
type Grid struct {
	Tiles      [][]Tile `json:"tiles"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	CurrentMap int      `json:"current_map"`
	PlayerX    int      `json:"player_x"`
	PlayerY    int      `json:"player_y"`
	Timestamp  *int64   `json:"timestamp"`
}

// At returns the tile at screen coordinates; ok is false when the cell
// is out of range or was skipped during capture. Rows can run short
// after skipped cells, so the indexed fast path is verified against the
// tile's own coordinates before trusting it.
func (g Grid) At(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || y >= len(g.Tiles) {
		return Tile{}, false
	}
	row := g.Tiles[y]
	if x < len(row) && row[x].ScreenX == x && row[x].ScreenY == y {
		return row[x], true
	}
	for _, t := range row {
		if t.ScreenX == x && t.ScreenY == y {
			return t, true
		}
	}
	return Tile{}, false
}

func (g Grid) Empty() bool {
	return len(g.Tiles) == 0
}

func (g Grid) Walkable() []Tile {
	out := []Tile{}
	for _, row := range g.Tiles {
		for _, t := range row {
			if t.IsWalkable {
				out = append(out, t)
			}
		}
	}
	return out
}

func (g Grid) ByType(tt TileType) []Tile {
	out := []Tile{}
	for _, row := range g.Tiles {
		for _, t := range row {
			if t.TileType == tt {
				out = append(out, t)
			}
		}
	}
	return out
}

func (g Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// GridFromJSON restores a grid, validating shape invariants. Shape
// violations are structural errors.
func GridFromJSON(data []byte) (Grid, error) {
	var g Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return Grid{}, fmt.Errorf("decode tile grid: %w", err)
	}
	// Rows may run short when cells were skipped during a best-effort
	// capture, but never long.
	if len(g.Tiles) > g.Height {
		return Grid{}, fmt.Errorf("tile grid has %d rows, header says %d", len(g.Tiles), g.Height)
	}
	for y, row := range g.Tiles {
		if len(row) > g.Width {
			return Grid{}, fmt.Errorf("tile grid row %d has %d cells, header says %d", y, len(row), g.Width)
		}
	}
	return g, nil
}
