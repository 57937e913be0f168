package tiles

// Static catalog tables derived from the Gen 1 ROM data files
// (collision_tile_ids.asm, door_tile_ids.asm, ledge_tiles.asm). The
// tileset enum is closed and small, so every table is a dense array of
// sets indexed by TilesetID rather than a map.

type tileSet map[byte]struct{}

func newTileSet(ids ...byte) tileSet {
	s := make(tileSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s tileSet) has(id byte) bool {
	_, ok := s[id]
	return ok
}

// walkableTables lists the tile IDs the player can step on, per tileset.
// The in-RAM collision pointer walk is the primary source at runtime;
// this table is the documented fallback when that read fails.
var walkableTables = [TilesetCount]tileSet{
	Overworld: newTileSet(
		0x00, 0x10, 0x1B, 0x20, 0x21, 0x23, 0x2C, 0x2D, 0x2E, 0x30,
		0x31, 0x33, 0x39, 0x3C, 0x3E, 0x52, 0x54, 0x58, 0x5B,
	),
	RedsHouse1: newTileSet(0x01, 0x02, 0x03, 0x11, 0x12, 0x13, 0x14, 0x1C, 0x1A),
	RedsHouse2: newTileSet(0x01, 0x02, 0x03, 0x11, 0x12, 0x13, 0x14, 0x1C, 0x1A),
	Mart:       newTileSet(0x11, 0x1A, 0x1C, 0x3C, 0x5E),
	Pokecenter: newTileSet(0x11, 0x1A, 0x1C, 0x3C, 0x5E),
	Dojo:       newTileSet(0x03, 0x11, 0x16, 0x19, 0x2B, 0x3C, 0x3D, 0x3F, 0x4A, 0x4C, 0x4D),
	Gym:        newTileSet(0x03, 0x11, 0x16, 0x19, 0x2B, 0x3C, 0x3D, 0x3F, 0x4A, 0x4C, 0x4D),
	Forest: newTileSet(
		0x1E, 0x20, 0x2E, 0x30, 0x34, 0x37, 0x39, 0x3A, 0x40, 0x51,
		0x52, 0x5A, 0x5C, 0x5E, 0x5F,
	),
	House:       newTileSet(0x01, 0x12, 0x14, 0x28, 0x32, 0x37, 0x44, 0x54, 0x5C),
	ForestGate:  newTileSet(0x01, 0x12, 0x14, 0x1A, 0x1C, 0x37, 0x38, 0x3B, 0x3C, 0x5E),
	Museum:      newTileSet(0x01, 0x12, 0x14, 0x1A, 0x1C, 0x37, 0x38, 0x3B, 0x3C, 0x5E),
	Underground: newTileSet(0x0B, 0x0C, 0x13, 0x15, 0x18),
	Gate:        newTileSet(0x01, 0x12, 0x14, 0x1A, 0x1C, 0x37, 0x38, 0x3B, 0x3C, 0x5E),
	Ship:        newTileSet(0x04, 0x0D, 0x17, 0x1D, 0x1E, 0x23, 0x34, 0x37, 0x39, 0x4A),
	ShipPort:    newTileSet(0x0A, 0x1A, 0x32, 0x3B),
	Cemetery:    newTileSet(0x01, 0x10, 0x13, 0x1B, 0x22, 0x42, 0x52),
	Interior:    newTileSet(0x04, 0x0F, 0x15, 0x1F, 0x3B, 0x45, 0x47, 0x55, 0x56),
	Cavern:      newTileSet(0x05, 0x15, 0x18, 0x1A, 0x20, 0x21, 0x22, 0x2A, 0x2D, 0x30),
	Lobby:       newTileSet(0x14, 0x17, 0x1A, 0x1C, 0x20, 0x38, 0x45),
	Mansion:     newTileSet(0x01, 0x05, 0x11, 0x12, 0x14, 0x1A, 0x1C, 0x2C, 0x53),
	Lab:         newTileSet(0x0C, 0x16, 0x1E, 0x26, 0x34, 0x37),
	Club:        newTileSet(0x0F, 0x1A, 0x1F, 0x26, 0x28, 0x29, 0x2C, 0x2D, 0x2E, 0x2F, 0x41),
	Facility: newTileSet(
		0x01, 0x10, 0x11, 0x13, 0x1B, 0x20, 0x21, 0x22, 0x30, 0x31,
		0x32, 0x42, 0x43, 0x48, 0x52, 0x55, 0x58, 0x5E,
	),
	Plateau: newTileSet(0x1B, 0x23, 0x2C, 0x2D, 0x3B, 0x45),
}

// doorTables lists warp/door entrance tile IDs per tileset. Indoor
// tilesets register 0x1A/0x1C here even though those IDs fall inside
// the generic road numeric range; warp membership is checked first.
var doorTables = [TilesetCount]tileSet{
	Overworld:  newTileSet(0x1B, 0x58),
	RedsHouse1: newTileSet(0x1A, 0x1C),
	RedsHouse2: newTileSet(0x1A),
	Forest:     newTileSet(0x3A),
	Mart:       newTileSet(0x5E),
	House:      newTileSet(0x54),
	ForestGate: newTileSet(0x3B),
	Museum:     newTileSet(0x3B),
	Gate:       newTileSet(0x3B),
	Ship:       newTileSet(0x1E),
	Cavern:     newTileSet(0x1A),
	Lobby:      newTileSet(0x1C, 0x38, 0x1A),
	Mansion:    newTileSet(0x1A, 0x1C, 0x53),
	Lab:        newTileSet(0x34),
	Facility:   newTileSet(0x43, 0x58, 0x1B),
	Plateau:    newTileSet(0x3B, 0x1B),
}

var waterTables = [TilesetCount]tileSet{
	Overworld: newTileSet(0x14, 0x32),
}

var treeTables = [TilesetCount]tileSet{
	Overworld: newTileSet(0x3D, 0x3F),
	Forest:    newTileSet(0x03, 0x04),
}

var grassTables = [TilesetCount]tileSet{
	Overworld: newTileSet(0x52, 0x53),
}

var signTables = [TilesetCount]tileSet{
	Overworld: newTileSet(0x5A, 0x5D),
}

var bookshelfTables = [TilesetCount]tileSet{
	RedsHouse1: newTileSet(0x48, 0x49),
	Mansion:    newTileSet(0x4A, 0x4B),
}

var boulderTables = [TilesetCount]tileSet{
	Overworld: newTileSet(0x15, 0x55),
	Cavern:    newTileSet(0x18, 0x19),
}

var pcTables = [TilesetCount]tileSet{
	RedsHouse1: newTileSet(0x50, 0x51),
	Pokecenter: newTileSet(0x52, 0x53),
}

// LedgeRule is one entry of the ROM's ledge_tiles.asm table: standing on
// StandingTile facing the ledge, pressing Input hops over LedgeTile.
type LedgeRule struct {
	StandingTile byte
	LedgeTile    byte
	Direction    string
}

var ledgeRules = []LedgeRule{
	{StandingTile: 0x2C, LedgeTile: 0x37, Direction: "down"},
	{StandingTile: 0x39, LedgeTile: 0x36, Direction: "down"},
	{StandingTile: 0x39, LedgeTile: 0x37, Direction: "down"},
	{StandingTile: 0x2C, LedgeTile: 0x27, Direction: "left"},
	{StandingTile: 0x39, LedgeTile: 0x27, Direction: "left"},
	{StandingTile: 0x2C, LedgeTile: 0x0D, Direction: "right"},
	{StandingTile: 0x2C, LedgeTile: 0x1D, Direction: "right"},
	{StandingTile: 0x39, LedgeTile: 0x0D, Direction: "right"},
}

// per-direction ledge tile sets, overworld only
var ledgeTilesByDirection = map[string]tileSet{
	"down":  newTileSet(0x36, 0x37),
	"left":  newTileSet(0x27),
	"right": newTileSet(0x0D, 0x1D),
}

func inTable(tables *[TilesetCount]tileSet, tileset TilesetID, tileID byte) bool {
	if !tileset.Valid() {
		return false
	}
	return tables[tileset].has(tileID)
}

// CatalogWalkable reports whether the static fallback table marks the
// tile walkable for the tileset.
func CatalogWalkable(tileset TilesetID, tileID byte) bool {
	return inTable(&walkableTables, tileset, tileID)
}

func IsDoor(tileset TilesetID, tileID byte) bool {
	return inTable(&doorTables, tileset, tileID)
}

func IsWater(tileset TilesetID, tileID byte) bool {
	return inTable(&waterTables, tileset, tileID)
}

func IsTree(tileset TilesetID, tileID byte) bool {
	return inTable(&treeTables, tileset, tileID)
}

func IsGrass(tileset TilesetID, tileID byte) bool {
	return inTable(&grassTables, tileset, tileID)
}

func IsSign(tileset TilesetID, tileID byte) bool {
	return inTable(&signTables, tileset, tileID)
}

func IsBookshelf(tileset TilesetID, tileID byte) bool {
	return inTable(&bookshelfTables, tileset, tileID)
}

func IsStrengthBoulder(tileset TilesetID, tileID byte) bool {
	return inTable(&boulderTables, tileset, tileID)
}

func IsPC(tileset TilesetID, tileID byte) bool {
	return inTable(&pcTables, tileset, tileID)
}

// LedgeDirection returns the hop direction for a ledge tile and whether
// the tile is a ledge at all. The ROM rule table is checked first, then
// the per-direction overworld sets.
func LedgeDirection(tileset TilesetID, tileID byte) (string, bool) {
	for _, rule := range ledgeRules {
		if rule.LedgeTile == tileID {
			return rule.Direction, true
		}
	}
	if tileset == Overworld {
		for dir, set := range ledgeTilesByDirection {
			if set.has(tileID) {
				return dir, true
			}
		}
	}
	return "", false
}
