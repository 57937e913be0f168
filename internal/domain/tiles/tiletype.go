package tiles

import "fmt"

// TileType is the derived gameplay category of a tile. It is redundant
// with the per-tile flags but kept for fast filtering.
type TileType string

const (
	TypeUnknown  TileType = "unknown"
	TypeWalkable TileType = "walkable"
	TypeBlocked  TileType = "blocked"
	TypeGrass    TileType = "grass"
	TypeWater    TileType = "water"
	TypeWarp     TileType = "warp"
	TypeLedge    TileType = "ledge"
	TypeBuilding TileType = "building"
	TypeRoad     TileType = "road"
	TypeTree     TileType = "tree"
	TypeRock     TileType = "rock"
	TypeNPC      TileType = "npc"
	TypeItem     TileType = "item"
)

var tileTypes = map[TileType]struct{}{
	TypeUnknown: {}, TypeWalkable: {}, TypeBlocked: {}, TypeGrass: {},
	TypeWater: {}, TypeWarp: {}, TypeLedge: {}, TypeBuilding: {},
	TypeRoad: {}, TypeTree: {}, TypeRock: {}, TypeNPC: {}, TypeItem: {},
}

// ParseTileType restores a TileType from its serialized form. Unknown
// values are a structural error on deserialization.
func ParseTileType(s string) (TileType, error) {
	t := TileType(s)
	if _, ok := tileTypes[t]; !ok {
		return "", fmt.Errorf("unknown tile type %q", s)
	}
	return t, nil
}

// Classify categorizes a tile. Tileset-specific semantic sets are
// checked first, in priority order, so that e.g. tile 0x1A in an indoor
// tileset comes out as a warp instead of falling into the road range.
// Numeric range heuristics only apply after every set misses.
func Classify(tileID byte, walkable bool, tileset TilesetID) TileType {
	switch {
	case IsGrass(tileset, tileID):
		return TypeGrass
	case IsWater(tileset, tileID):
		return TypeWater
	case IsDoor(tileset, tileID):
		return TypeWarp
	}
	if _, ok := LedgeDirection(tileset, tileID); ok {
		return TypeLedge
	}
	if IsTree(tileset, tileID) {
		return TypeTree
	}
	if walkable {
		if tileID >= 20 && tileID <= 30 {
			return TypeRoad
		}
		return TypeWalkable
	}
	switch {
	case tileID >= 100 && tileID <= 120:
		return TypeRock
	case tileID >= 200 && tileID <= 220:
		return TypeBuilding
	default:
		return TypeBlocked
	}
}
