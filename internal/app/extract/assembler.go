package extract

import (
	"redscope/internal/app/ports"
	"redscope/internal/domain/gamestate"
	"redscope/internal/domain/tiles"
)

// Assembler turns the raw screen tile buffer into a semantic Grid. One
// Assemble call corresponds to one extraction request; nothing is
// cached between calls.
type Assembler struct {
	mem memReader
}

func NewAssembler(src ports.MemorySource) Assembler {
	return Assembler{mem: memReader{src: src}}
}

// MapStable reports whether the tile buffer can be trusted. Only
// loading-status values 1-3 mean an active transition; 16 and friends
// are stable loaded states.
func MapStable(status int) bool {
	return status < 1 || status > 3
}

// Assemble scans all 360 screen cells. A transitioning map yields an
// empty grid; a single cell's read failure skips that cell only.
func (a Assembler) Assemble(tileset tiles.TilesetID, currentMap, playerX, playerY, loadStatus int, timestamp *int64) tiles.Grid {
	grid := tiles.Grid{
		Tiles:      [][]tiles.Tile{},
		Width:      tiles.ScreenWidth,
		Height:     tiles.ScreenHeight,
		CurrentMap: currentMap,
		PlayerX:    playerX,
		PlayerY:    playerY,
		Timestamp:  timestamp,
	}
	if !MapStable(loadStatus) {
		return grid
	}

	rows := make([][]tiles.Tile, 0, tiles.ScreenHeight)
	for y := 0; y < tiles.ScreenHeight; y++ {
		row := make([]tiles.Tile, 0, tiles.ScreenWidth)
		for x := 0; x < tiles.ScreenWidth; x++ {
			tile, ok := a.assembleCell(tileset, playerX, playerY, x, y)
			if !ok {
				continue
			}
			row = append(row, tile)
		}
		rows = append(rows, row)
	}
	grid.Tiles = rows
	return grid
}

func (a Assembler) assembleCell(tileset tiles.TilesetID, playerX, playerY, x, y int) (tiles.Tile, bool) {
	tileID, err := a.mem.byteAt(addrTileMapBuffer + uint16(y*tiles.ScreenWidth+x))
	if err != nil {
		return tiles.Tile{}, false
	}

	walkable := a.isWalkable(tileset, tileID)
	ledge := tiles.DetectLedge(tileset, tileID)
	inter := tiles.DetectInteractions(tileset, tileID)
	env := tiles.DetectEnvironment(tileset, tileID)
	special := tiles.DetectSpecial(tileset, tileID)
	anim := tiles.DetectAnimation(tileset, tileID)
	audio := tiles.DetectAudio(tileset, tileID)

	mapX := playerX + x - screenCenterX
	mapY := playerY + y - screenCenterY
	sight := tiles.DetectTrainerSightLine(mapX, mapY)

	var ledgeDir *string
	if ledge.IsLedge {
		d := ledge.Direction
		ledgeDir = &d
	}

	return tiles.Tile{
		TileID:    int(tileID),
		ScreenX:   x,
		ScreenY:   y,
		MapX:      mapX,
		MapY:      mapY,
		TilesetID: tileset,
		TileType:  tiles.Classify(tileID, walkable, tileset),

		IsWalkable:       walkable,
		IsLedge:          ledge.IsLedge,
		LedgeDirection:   ledgeDir,
		MovementModifier: special.MovementModifier,

		IsEncounterTile: env.IsEncounter,
		IsWarpTile:      env.IsWarp,
		IsAnimated:      anim.IsAnimated,
		AnimationSpeed:  anim.AnimationSpeed,
		LightLevel:      special.LightLevel,

		HasSign:            inter.HasSign,
		HasBookshelf:       inter.HasBookshelf,
		HasStrengthBoulder: inter.StrengthBoulder,
		IsCuttableTree:     inter.CuttableTree,
		IsPCAccessible:     inter.PCAccessible,

		InTrainerSightLine: sight.InSightLine,
		TrainerID:          sight.TrainerID,
		RequiresItemfinder: special.RequiresItemfinder,
		HiddenItemID:       special.HiddenItemID,

		IsSafariZoneStep: special.SafariZoneStep,
		IsGameCornerTile: special.GameCornerTile,
		IsFlyDestination: special.FlyDestination,

		HasFootstepSound:   audio.HasFootstepSound,
		SpritePriority:     anim.SpritePriority,
		BackgroundPriority: anim.BackgroundPriority,
		ElevationPair:      special.ElevationPair,

		SpriteOccupancyID:     a.spriteSlotAt(x, y),
		BlocksLight:           special.BlocksLight,
		WaterCurrentDirection: env.WaterCurrentDirection,
		WarpDestinationMap:    env.WarpDestinationMap,
		WarpDestinationX:      env.WarpDestinationX,
		WarpDestinationY:      env.WarpDestinationY,
	}, true
}

// isWalkable walks the live in-RAM collision table: the pointer at
// addrCollisionPtr leads to a 0xFF-terminated list of walkable tile
// IDs. Any read failure falls back to the static catalog.
func (a Assembler) isWalkable(tileset tiles.TilesetID, tileID byte) bool {
	ptr, err := a.mem.u16(addrCollisionPtr)
	if err != nil {
		return tiles.CatalogWalkable(tileset, tileID)
	}
	addr := uint16(ptr)
	for i := 0; i < collisionScanLimit; i++ {
		entry, err := a.mem.byteAt(addr)
		if err != nil {
			return tiles.CatalogWalkable(tileset, tileID)
		}
		if entry == 0xFF {
			return false
		}
		if entry == tileID {
			return true
		}
		addr++
	}
	return false
}

// spriteSlotAt scans the 16 sprite slots for one whose screen pixel
// position falls inside an 8-pixel tolerance box around the cell.
// Returns the 1-based slot index, or 0 for none / failed reads.
func (a Assembler) spriteSlotAt(x, y int) int {
	cellPX := x * 8
	cellPY := y * 8
	for slot := 0; slot < spriteSlotCount; slot++ {
		base := addrSpriteStateData + uint16(slot*spriteSlotSize)
		spriteY, err := a.mem.byteAt(base + spriteYPixelOff)
		if err != nil {
			return 0
		}
		spriteX, err := a.mem.byteAt(base + spriteXPixelOff)
		if err != nil {
			return 0
		}
		if absInt(int(spriteX)-cellPX) < spritePixelWiggle && absInt(int(spriteY)-cellPY) < spritePixelWiggle {
			return slot + 1
		}
	}
	return 0
}

// ImmediateDirections computes 4-direction availability around the
// player's collision anchor, the bottom-left cell of the 2x2 sprite
// block. Checking the visual top-left instead skews the west check by
// a row.
func ImmediateDirections(grid tiles.Grid) gamestate.Directions {
	walkableAt := func(x, y int) bool {
		t, ok := grid.At(x, y)
		return ok && t.IsWalkable
	}
	return gamestate.Directions{
		North: walkableAt(anchorX, anchorY-1),
		South: walkableAt(anchorX, anchorY+1),
		East:  walkableAt(anchorX+1, anchorY),
		West:  walkableAt(anchorX-1, anchorY),
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
