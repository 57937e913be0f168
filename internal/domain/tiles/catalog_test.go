package tiles

import "testing"

func TestCatalogWalkable(t *testing.T) {
	if !CatalogWalkable(Overworld, 0x00) {
		t.Fatalf("expected overworld tile 0x00 walkable")
	}
	if CatalogWalkable(Overworld, 0x3D) {
		t.Fatalf("cut tree must not be walkable")
	}
	if CatalogWalkable(TilesetID(99), 0x00) {
		t.Fatalf("invalid tileset must report not walkable")
	}
}

func TestLedgeDirection(t *testing.T) {
	cases := []struct {
		tileID byte
		want   string
	}{
		{0x36, "down"},
		{0x37, "down"},
		{0x27, "left"},
		{0x0D, "right"},
		{0x1D, "right"},
	}
	for _, tc := range cases {
		dir, ok := LedgeDirection(Overworld, tc.tileID)
		if !ok {
			t.Errorf("LedgeDirection(Overworld, 0x%02X): expected a ledge", tc.tileID)
			continue
		}
		if dir != tc.want {
			t.Errorf("LedgeDirection(Overworld, 0x%02X) = %q, want %q", tc.tileID, dir, tc.want)
		}
	}

	if _, ok := LedgeDirection(Overworld, 0x00); ok {
		t.Fatalf("tile 0x00 must not be a ledge")
	}
}

func TestInteractionTablesAreTilesetScoped(t *testing.T) {
	if !IsSign(Overworld, 0x5A) {
		t.Fatalf("expected overworld sign at 0x5A")
	}
	if IsSign(Forest, 0x5A) {
		t.Fatalf("sign table must not leak into forest tileset")
	}

	if !IsBookshelf(RedsHouse1, 0x48) {
		t.Fatalf("expected bookshelf in reds house")
	}
	if !IsPC(Pokecenter, 0x52) {
		t.Fatalf("expected pokecenter PC at 0x52")
	}
	if IsPC(Overworld, 0x52) {
		t.Fatalf("overworld 0x52 is grass, not a PC")
	}

	if !IsStrengthBoulder(Cavern, 0x18) {
		t.Fatalf("expected cavern boulder at 0x18")
	}
}

func TestTilesetFromByte(t *testing.T) {
	ts, err := TilesetFromByte(0x11)
	if err != nil {
		t.Fatalf("TilesetFromByte error: %v", err)
	}
	if ts != Cavern {
		t.Fatalf("unexpected tileset: %v", ts)
	}

	if _, err := TilesetFromByte(24); err == nil {
		t.Fatalf("expected error for out-of-range tileset byte")
	}
}
