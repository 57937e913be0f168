// Package textview renders a snapshot as the compact, section-headed
// summary fed to language-model agents and run logs.
package textview

import (
	"fmt"
	"sort"
	"strings"

	"redscope/internal/domain/gamestate"
	"redscope/internal/domain/tiles"
)

// Grid cells are summarized 2x2: each output cell samples the
// bottom-left tile of its block, matching the collision anchor rule.
const (
	gridCols = tiles.ScreenWidth / 2
	gridRows = tiles.ScreenHeight / 2
)

// Render produces the text summary. Section order is fixed; absent
// data drops the section rather than printing placeholders.
func Render(s gamestate.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== POKEMON RED - STEP %d ===\n", s.StepCounter)
	fmt.Fprintf(&b, "Location: Map %d at (%d, %d)\n", s.CurrentMap, s.PlayerX, s.PlayerY)
	b.WriteString(movesLine(s.DirectionsAvailable))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Player: %s | Badges: %d | Party: %d\n", s.PlayerName, s.BadgesObtained, s.PartyCount)
	for i, hp := range s.PartyPokemonHP {
		level := 0
		if i < len(s.PartyPokemonLevels) {
			level = s.PartyPokemonLevels[i]
		}
		fmt.Fprintf(&b, "  Lv.%d %d/%d HP (%s)\n", level, hp.Current, hp.Max, hp.HealthBucket())
	}

	if s.IsInBattle && s.PlayerMonHP != nil && s.EnemyMonHP != nil {
		fmt.Fprintf(&b, "Battle: Player %d/%d HP | Enemy %d/%d HP\n",
			s.PlayerMonHP.Current, s.PlayerMonHP.Max,
			s.EnemyMonHP.Current, s.EnemyMonHP.Max)
	}

	if env := environmentLine(s); env != "" {
		b.WriteString(env)
		b.WriteString("\n")
	}

	if s.TileMatrix != nil && !s.TileMatrix.Empty() {
		b.WriteString("WALKABLE GRID (. = walkable, # = obstacle, W = warp):\n")
		b.WriteString(walkabilityGrid(*s.TileMatrix))
		b.WriteString("\n")
	}

	if s.Transitioning() {
		b.WriteString("Map transition in progress...\n")
	}

	return b.String()
}

// movesLine prints only the open directions; unavailable ones are
// simply absent.
func movesLine(d gamestate.Directions) string {
	symbols := []string{}
	if d.North {
		symbols = append(symbols, "↑N")
	}
	if d.South {
		symbols = append(symbols, "↓S")
	}
	if d.East {
		symbols = append(symbols, "→E")
	}
	if d.West {
		symbols = append(symbols, "←W")
	}
	if len(symbols) == 0 {
		return "Moves: none\n"
	}
	return "Moves: " + strings.Join(symbols, " ") + "\n"
}

// environmentLine summarizes the dominant terrain and nearby
// interactions. Obstruction and unknown buckets are skipped so the
// line only talks about meaningful terrain.
func environmentLine(s gamestate.Snapshot) string {
	type kv struct {
		name  string
		count int
	}
	terrain := []kv{}
	for name, count := range s.TileTypeCounts {
		if name == string(tiles.TypeBlocked) || name == string(tiles.TypeUnknown) || count == 0 {
			continue
		}
		terrain = append(terrain, kv{name: name, count: count})
	}
	if len(terrain) == 0 {
		return ""
	}
	sort.Slice(terrain, func(i, j int) bool {
		if terrain[i].count != terrain[j].count {
			return terrain[i].count > terrain[j].count
		}
		return terrain[i].name < terrain[j].name
	})
	line := fmt.Sprintf("Environment: mostly %s (%d tiles)", terrain[0].name, terrain[0].count)
	if n := len(s.InteractiveTiles); n > 0 {
		line += fmt.Sprintf(", %d interactive nearby", n)
	}
	return line
}

// walkabilityGrid renders the 10x9 summary. Each cell samples the
// bottom-left tile of its 2x2 block, i.e. tile (2c, 2r+1). Warp wins
// over walkable when a cell is both.
func walkabilityGrid(grid tiles.Grid) string {
	var b strings.Builder
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			b.WriteByte(cellSymbol(grid, 2*c, 2*r+1))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cellSymbol(grid tiles.Grid, tx, ty int) byte {
	t, ok := grid.At(tx, ty)
	if !ok {
		return '#'
	}
	switch {
	case t.IsWarpTile:
		return 'W'
	case t.IsWalkable:
		return '.'
	default:
		return '#'
	}
}
