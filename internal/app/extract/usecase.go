package extract

import (
	"context"
	"errors"
	"math/bits"
	"time"

	"redscope/internal/app/ports"
	"redscope/internal/domain/gamestate"
	"redscope/internal/domain/tiles"
)

var ErrInvalidRequest = errors.New("invalid extract request")

// UseCase builds one complete snapshot from the current memory image.
// Snapshots is optional; when set, every built snapshot is persisted
// under its step counter.
type UseCase struct {
	Memory    ports.MemorySource
	Snapshots ports.SnapshotRepository
	Now       func() time.Time
}

type Request struct {
	StepCounter int
}

type Response struct {
	Snapshot gamestate.Snapshot
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.StepCounter < 0 || u.Memory == nil {
		return Response{}, ErrInvalidRequest
	}

	now := time.Now
	if u.Now != nil {
		now = u.Now
	}

	snap, err := u.buildSnapshot(req.StepCounter, now())
	if err != nil {
		return Response{}, err
	}

	if u.Snapshots != nil {
		if err := u.Snapshots.Save(ctx, snap); err != nil {
			return Response{}, err
		}
	}
	return Response{Snapshot: snap}, nil
}

func (u UseCase) buildSnapshot(step int, capturedAt time.Time) (gamestate.Snapshot, error) {
	r := memReader{src: u.Memory}

	currentMap, err := r.byteAt(addrCurrentMap)
	if err != nil {
		return gamestate.Snapshot{}, err
	}
	playerY, err := r.byteAt(addrYCoord)
	if err != nil {
		return gamestate.Snapshot{}, err
	}
	playerX, err := r.byteAt(addrXCoord)
	if err != nil {
		return gamestate.Snapshot{}, err
	}

	name, err := r.playerName()
	if err != nil {
		return gamestate.Snapshot{}, err
	}

	partyCount, err := r.byteAt(addrPartyCount)
	if err != nil {
		return gamestate.Snapshot{}, err
	}
	levels, hpPairs, err := r.partyRoster(int(partyCount))
	if err != nil {
		return gamestate.Snapshot{}, err
	}

	badges, err := r.byteAt(addrObtainedBadges)
	if err != nil {
		return gamestate.Snapshot{}, err
	}

	battleFlag, err := r.byteAt(addrIsInBattle)
	if err != nil {
		return gamestate.Snapshot{}, err
	}
	inBattle := battleFlag == 1
	var playerMonHP, enemyMonHP *gamestate.HPPair
	if inBattle {
		playerMonHP, enemyMonHP, err = r.battleHP()
		if err != nil {
			return gamestate.Snapshot{}, err
		}
	}

	eventFlags, err := r.eventFlagCount()
	if err != nil {
		return gamestate.Snapshot{}, err
	}

	loadStatus, err := r.byteAt(addrMapLoadStatus)
	if err != nil {
		return gamestate.Snapshot{}, err
	}

	// A failed tileset read falls back to the overworld; a value
	// outside the closed enum is structural and must not be guessed.
	tileset := tiles.Overworld
	if rawTileset, tsErr := r.byteAt(addrCurrentTileset); tsErr == nil {
		tileset, err = tiles.TilesetFromByte(rawTileset)
		if err != nil {
			return gamestate.Snapshot{}, err
		}
	}

	ts := capturedAt.Unix()
	grid := NewAssembler(u.Memory).Assemble(tileset, int(currentMap), int(playerX), int(playerY), int(loadStatus), &ts)

	snap := gamestate.Snapshot{
		StepCounter: step,
		Timestamp:   capturedAt.UTC().Format(time.RFC3339),

		PlayerName:         name,
		CurrentMap:         int(currentMap),
		PlayerX:            int(playerX),
		PlayerY:            int(playerY),
		PartyCount:         int(partyCount),
		PartyPokemonLevels: levels,
		PartyPokemonHP:     hpPairs,
		BadgesObtained:     bits.OnesCount8(badges),
		IsInBattle:         inBattle,
		PlayerMonHP:        playerMonHP,
		EnemyMonHP:         enemyMonHP,
		EventFlagsSet:      eventFlags,

		MapLoadingStatus: int(loadStatus),
		CurrentTileset:   tileset,

		TileMatrix:          &grid,
		DirectionsAvailable: ImmediateDirections(grid),
	}
	mergeTileViews(&snap, grid)
	return snap, nil
}

// partyRoster bulk-reads levels and little-endian HP pairs for the
// first partyCount slots, capped at the 6-slot party block.
func (r memReader) partyRoster(partyCount int) ([]int, []gamestate.HPPair, error) {
	levels := []int{}
	pairs := []gamestate.HPPair{}
	count := partyCount
	if count > len(partyLevelAddrs) {
		count = len(partyLevelAddrs)
	}
	for i := 0; i < count; i++ {
		lvl, err := r.byteAt(partyLevelAddrs[i])
		if err != nil {
			return nil, nil, err
		}
		cur, err := r.u16(partyHPAddrs[i])
		if err != nil {
			return nil, nil, err
		}
		max, err := r.u16(partyMaxHPAddrs[i])
		if err != nil {
			return nil, nil, err
		}
		levels = append(levels, int(lvl))
		pairs = append(pairs, gamestate.HPPair{Current: cur, Max: max})
	}
	return levels, pairs, nil
}

func (r memReader) battleHP() (*gamestate.HPPair, *gamestate.HPPair, error) {
	playerCur, err := r.u16(addrBattleMonHP)
	if err != nil {
		return nil, nil, err
	}
	playerMax, err := r.u16(addrBattleMonMaxHP)
	if err != nil {
		return nil, nil, err
	}
	enemyCur, err := r.u16(addrEnemyMonHP)
	if err != nil {
		return nil, nil, err
	}
	enemyMax, err := r.u16(addrEnemyMonMaxHP)
	if err != nil {
		return nil, nil, err
	}
	return &gamestate.HPPair{Current: playerCur, Max: playerMax},
		&gamestate.HPPair{Current: enemyCur, Max: enemyMax}, nil
}

// mergeTileViews fills the snapshot's derived tile lists and counts
// from the assembled grid, row-major with center distances.
func mergeTileViews(snap *gamestate.Snapshot, grid tiles.Grid) {
	snap.WalkableTiles = []gamestate.PositionWithDistance{}
	snap.BlockedTiles = []gamestate.PositionWithDistance{}
	snap.EncounterTiles = []gamestate.Position{}
	snap.WarpTiles = []gamestate.Position{}
	snap.InteractiveTiles = []gamestate.Position{}
	snap.TileTypeCounts = map[string]int{}

	for _, row := range grid.Tiles {
		for _, t := range row {
			dist := absInt(t.ScreenX-screenCenterX) + absInt(t.ScreenY-screenCenterY)
			if t.IsWalkable {
				snap.WalkableTiles = append(snap.WalkableTiles, gamestate.PositionWithDistance{X: t.ScreenX, Y: t.ScreenY, Distance: dist})
			} else {
				snap.BlockedTiles = append(snap.BlockedTiles, gamestate.PositionWithDistance{X: t.ScreenX, Y: t.ScreenY, Distance: dist})
			}
			if t.IsEncounterTile {
				snap.EncounterTiles = append(snap.EncounterTiles, gamestate.Position{X: t.ScreenX, Y: t.ScreenY})
			}
			if t.IsWarpTile {
				snap.WarpTiles = append(snap.WarpTiles, gamestate.Position{X: t.ScreenX, Y: t.ScreenY})
			}
			if interactive(t) {
				snap.InteractiveTiles = append(snap.InteractiveTiles, gamestate.Position{X: t.ScreenX, Y: t.ScreenY})
			}
			snap.TileTypeCounts[string(t.TileType)]++
		}
	}
}

func interactive(t tiles.Tile) bool {
	return t.HasSign || t.HasBookshelf || t.HasStrengthBoulder || t.IsCuttableTree || t.IsPCAccessible
}
