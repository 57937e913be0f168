package tiles

import "fmt"

// TilesetID matches the tileset constants from the Gen 1 ROM
// (constants/tileset_constants.asm). The set is closed: 24 values.
type TilesetID int

const (
	Overworld TilesetID = iota
	RedsHouse1
	Mart
	Forest
	RedsHouse2
	Dojo
	Pokecenter
	Gym
	House
	ForestGate
	Museum
	Underground
	Gate
	Ship
	ShipPort
	Cemetery
	Interior
	Cavern
	Lobby
	Mansion
	Lab
	Club
	Facility
	Plateau

	TilesetCount = int(Plateau) + 1
)

var tilesetNames = [TilesetCount]string{
	"OVERWORLD", "REDS_HOUSE_1", "MART", "FOREST", "REDS_HOUSE_2", "DOJO",
	"POKECENTER", "GYM", "HOUSE", "FOREST_GATE", "MUSEUM", "UNDERGROUND",
	"GATE", "SHIP", "SHIP_PORT", "CEMETERY", "INTERIOR", "CAVERN",
	"LOBBY", "MANSION", "LAB", "CLUB", "FACILITY", "PLATEAU",
}

func (id TilesetID) Valid() bool {
	return id >= 0 && int(id) < TilesetCount
}

func (id TilesetID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("TilesetID(%d)", int(id))
	}
	return tilesetNames[id]
}

// TilesetFromByte converts the raw byte at the current-tileset address.
// Values outside the closed enum are a structural error, not a fallback.
func TilesetFromByte(b byte) (TilesetID, error) {
	id := TilesetID(b)
	if !id.Valid() {
		return 0, fmt.Errorf("unknown tileset id %d", b)
	}
	return id, nil
}
