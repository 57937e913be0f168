package textview

import (
	"strings"
	"testing"

	"redscope/internal/domain/gamestate"
	"redscope/internal/domain/tiles"
)

func walkableGrid() *tiles.Grid {
	rows := make([][]tiles.Tile, tiles.ScreenHeight)
	for y := range rows {
		rows[y] = make([]tiles.Tile, tiles.ScreenWidth)
		for x := range rows[y] {
			rows[y][x] = tiles.Tile{
				ScreenX:    x,
				ScreenY:    y,
				TileType:   tiles.TypeWalkable,
				IsWalkable: true,
			}
		}
	}
	return &tiles.Grid{Tiles: rows, Width: tiles.ScreenWidth, Height: tiles.ScreenHeight}
}

func baseSnapshot() gamestate.Snapshot {
	return gamestate.Snapshot{
		StepCounter:        7,
		PlayerName:         "RED",
		CurrentMap:         3,
		PlayerX:            10,
		PlayerY:            9,
		BadgesObtained:     2,
		PartyCount:         1,
		MapLoadingStatus:   16,
		PartyPokemonLevels: []int{12},
		PartyPokemonHP:     []gamestate.HPPair{{Current: 33, Max: 39}},
		TileTypeCounts:     map[string]int{"walkable": 357, "grass": 2, "blocked": 1},
		InteractiveTiles:   []gamestate.Position{{X: 1, Y: 1}},
		TileMatrix:         walkableGrid(),
		DirectionsAvailable: gamestate.Directions{
			North: true,
			East:  true,
		},
	}
}

func TestRender_HeaderAndLocation(t *testing.T) {
	out := Render(baseSnapshot())
	if !strings.HasPrefix(out, "=== POKEMON RED - STEP 7 ===\n") {
		t.Fatalf("header mismatch:\n%s", out)
	}
	if !strings.Contains(out, "Location: Map 3 at (10, 9)\n") {
		t.Fatalf("location line missing:\n%s", out)
	}
	if !strings.Contains(out, "Player: RED | Badges: 2 | Party: 1\n") {
		t.Fatalf("player line missing:\n%s", out)
	}
	if !strings.Contains(out, "  Lv.12 33/39 HP (Healthy)\n") {
		t.Fatalf("party line missing:\n%s", out)
	}
}

func TestRender_MovesLine(t *testing.T) {
	s := baseSnapshot()
	out := Render(s)
	if !strings.Contains(out, "Moves: ↑N →E\n") {
		t.Fatalf("moves line mismatch:\n%s", out)
	}

	s.DirectionsAvailable = gamestate.Directions{}
	out = Render(s)
	if !strings.Contains(out, "Moves: none\n") {
		t.Fatalf("expected Moves: none:\n%s", out)
	}

	s.DirectionsAvailable = gamestate.Directions{North: true, South: true, East: true, West: true}
	out = Render(s)
	if !strings.Contains(out, "Moves: ↑N ↓S →E ←W\n") {
		t.Fatalf("full moves line mismatch:\n%s", out)
	}
}

func TestRender_BattleLineOnlyInBattle(t *testing.T) {
	s := baseSnapshot()
	out := Render(s)
	if strings.Contains(out, "Battle:") {
		t.Fatalf("battle line must be absent outside battle:\n%s", out)
	}

	s.IsInBattle = true
	s.PlayerMonHP = &gamestate.HPPair{Current: 33, Max: 39}
	s.EnemyMonHP = &gamestate.HPPair{Current: 7, Max: 28}
	out = Render(s)
	if !strings.Contains(out, "Battle: Player 33/39 HP | Enemy 7/28 HP\n") {
		t.Fatalf("battle line mismatch:\n%s", out)
	}
}

func TestRender_EnvironmentLineSkipsObstructions(t *testing.T) {
	s := baseSnapshot()
	out := Render(s)
	if !strings.Contains(out, "Environment: mostly walkable (357 tiles), 1 interactive nearby\n") {
		t.Fatalf("environment line mismatch:\n%s", out)
	}

	// Only obstruction buckets present: the whole line is dropped.
	s.TileTypeCounts = map[string]int{"blocked": 360}
	s.InteractiveTiles = nil
	out = Render(s)
	if strings.Contains(out, "Environment:") {
		t.Fatalf("environment line must be dropped:\n%s", out)
	}
}

// Obstructions are rendered as '#', never spelled out; agents key on
// the walkable vocabulary.
func TestRender_NeverSaysBlocked(t *testing.T) {
	s := baseSnapshot()
	s.TileMatrix.Tiles[1][0].IsWalkable = false
	out := Render(s)
	if strings.Contains(strings.ToLower(out), "blocked") {
		t.Fatalf("output must not contain the word blocked:\n%s", out)
	}
}

func TestRender_WalkabilityGrid(t *testing.T) {
	s := baseSnapshot()
	// Output cell (0,0) samples tile (0,1): make it an obstacle. A warp
	// at tile (2,1) must win over walkability in output cell (1,0).
	s.TileMatrix.Tiles[1][0].IsWalkable = false
	s.TileMatrix.Tiles[1][2].IsWarpTile = true

	out := Render(s)
	if !strings.Contains(out, "WALKABLE GRID (. = walkable, # = obstacle, W = warp):\n") {
		t.Fatalf("grid header missing:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	var gridStart int
	for i, l := range lines {
		if strings.HasPrefix(l, "WALKABLE GRID") {
			gridStart = i + 1
			break
		}
	}
	if gridStart == 0 || gridStart+9 > len(lines) {
		t.Fatalf("grid rows missing:\n%s", out)
	}
	first := lines[gridStart]
	if first != "#W........" {
		t.Fatalf("first grid row = %q, want #W........", first)
	}
	for r := 1; r < 9; r++ {
		if lines[gridStart+r] != ".........." {
			t.Fatalf("grid row %d = %q", r, lines[gridStart+r])
		}
	}
}

func TestRender_TransitioningMap(t *testing.T) {
	s := baseSnapshot()
	s.MapLoadingStatus = 2
	s.TileMatrix = &tiles.Grid{Width: tiles.ScreenWidth, Height: tiles.ScreenHeight}
	s.TileTypeCounts = map[string]int{}
	out := Render(s)

	if !strings.Contains(out, "Map transition in progress...\n") {
		t.Fatalf("transition notice missing:\n%s", out)
	}
	if strings.Contains(out, "WALKABLE GRID") {
		t.Fatalf("grid must be dropped during transition:\n%s", out)
	}

	s.MapLoadingStatus = 16
	s.TileMatrix = walkableGrid()
	out = Render(s)
	if strings.Contains(out, "Map transition in progress") {
		t.Fatalf("stable map must not print transition notice:\n%s", out)
	}
}
