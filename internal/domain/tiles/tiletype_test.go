package tiles

import "testing"

func TestParseTileType(t *testing.T) {
	got, err := ParseTileType("grass")
	if err != nil {
		t.Fatalf("ParseTileType error: %v", err)
	}
	if got != TypeGrass {
		t.Fatalf("unexpected type: %q", got)
	}

	if _, err := ParseTileType("lava"); err == nil {
		t.Fatalf("expected error for unknown tile type")
	}
}

func TestClassify_SemanticSetsBeatNumericRanges(t *testing.T) {
	cases := []struct {
		name     string
		tileID   byte
		walkable bool
		tileset  TilesetID
		want     TileType
	}{
		{"grass wins over walkable", 0x52, true, Overworld, TypeGrass},
		{"water", 0x14, false, Overworld, TypeWater},
		{"overworld door", 0x1B, true, Overworld, TypeWarp},
		{"ledge", 0x37, false, Overworld, TypeLedge},
		{"cut tree", 0x3D, false, Overworld, TypeTree},
		{"forest tree", 0x03, false, Forest, TypeTree},
		{"walkable road range", 0x17, true, Overworld, TypeRoad},
		{"plain walkable", 0x00, true, Overworld, TypeWalkable},
		{"rock range", 110, false, Cavern, TypeRock},
		{"building range", 210, false, Overworld, TypeBuilding},
		{"generic blocked", 0x63, false, Overworld, TypeBlocked},
	}
	for _, tc := range cases {
		if got := Classify(tc.tileID, tc.walkable, tc.tileset); got != tc.want {
			t.Errorf("%s: Classify(0x%02X, %v, %v) = %q, want %q",
				tc.name, tc.tileID, tc.walkable, tc.tileset, got, tc.want)
		}
	}
}

// Tile 0x1A sits inside the numeric road range, but indoor tilesets
// register it as a door. The same byte must classify differently per
// tileset.
func TestClassify_Tile26DependsOnTileset(t *testing.T) {
	cases := []struct {
		tileset TilesetID
		want    TileType
	}{
		{Overworld, TypeRoad},
		{RedsHouse1, TypeWarp},
		{RedsHouse2, TypeWarp},
		{Cavern, TypeWarp},
		{Lobby, TypeWarp},
		{Mansion, TypeWarp},
	}
	for _, tc := range cases {
		if got := Classify(0x1A, true, tc.tileset); got != tc.want {
			t.Errorf("Classify(0x1A, true, %v) = %q, want %q", tc.tileset, got, tc.want)
		}
	}
}
