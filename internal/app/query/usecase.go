package query

import (
	"context"
	"errors"
	"sort"

	"redscope/internal/app/extract"
	"redscope/internal/domain/gamestate"
	"redscope/internal/domain/tiles"
)

var ErrInvalidRequest = errors.New("invalid query request")

const (
	// Sorting and neighborhood analysis are anchored differently:
	// nearest-of-type searches fan out from the screen center, while
	// the neighborhood walk uses the player's collision anchor cell.
	centerX = 10
	centerY = 9
	anchorX = 8
	anchorY = 10

	defaultMaxCount = 5
)

// UseCase answers derived spatial questions about the current frame.
// Every call runs a fresh extraction; query results never outlive the
// memory image they were computed from.
type UseCase struct {
	Extract extract.UseCase
}

func (u UseCase) Nearest(ctx context.Context, req NearestRequest) (NearestResponse, error) {
	tt, err := tiles.ParseTileType(req.TileType)
	if err != nil {
		return NearestResponse{}, ErrInvalidRequest
	}
	resp, err := u.Extract.Execute(ctx, extract.Request{StepCounter: req.StepCounter})
	if err != nil {
		return NearestResponse{}, err
	}
	maxCount := req.MaxCount
	if maxCount <= 0 {
		maxCount = defaultMaxCount
	}
	var grid tiles.Grid
	if resp.Snapshot.TileMatrix != nil {
		grid = *resp.Snapshot.TileMatrix
	}
	return NearestResponse{
		TileType: string(tt),
		Tiles:    FindNearestByType(grid, tt, maxCount),
	}, nil
}

func (u UseCase) Neighborhood(ctx context.Context, req NeighborhoodRequest) (NeighborhoodResponse, error) {
	if req.Radius <= 0 {
		return NeighborhoodResponse{}, ErrInvalidRequest
	}
	resp, err := u.Extract.Execute(ctx, extract.Request{StepCounter: req.StepCounter})
	if err != nil {
		return NeighborhoodResponse{}, err
	}
	var grid tiles.Grid
	if resp.Snapshot.TileMatrix != nil {
		grid = *resp.Snapshot.TileMatrix
	}
	return AnalyzeNeighborhood(grid, req.Radius), nil
}

func (u UseCase) Categorize(ctx context.Context, req CategorizeRequest) (Categories, error) {
	resp, err := u.Extract.Execute(ctx, extract.Request{StepCounter: req.StepCounter})
	if err != nil {
		// Best-effort layer: callers get the explicit failure
		// sentinel instead of an error.
		return emptyCategories(), nil
	}
	var grid tiles.Grid
	if resp.Snapshot.TileMatrix != nil {
		grid = *resp.Snapshot.TileMatrix
	}
	return CategorizeGrid(grid), nil
}

// FindNearestByType returns up to maxCount tiles of the given type,
// ordered by Manhattan distance from the screen center. The sort is
// stable, so equidistant tiles keep their row-major scan order.
func FindNearestByType(grid tiles.Grid, tt tiles.TileType, maxCount int) []tiles.Tile {
	matching := grid.ByType(tt)
	sort.SliceStable(matching, func(i, j int) bool {
		return centerDistance(matching[i]) < centerDistance(matching[j])
	})
	if len(matching) > maxCount {
		matching = matching[:maxCount]
	}
	return matching
}

func centerDistance(t tiles.Tile) int {
	return absInt(t.ScreenX-centerX) + absInt(t.ScreenY-centerY)
}

// AnalyzeNeighborhood buckets every cell within Manhattan radius of
// the player anchor.
func AnalyzeNeighborhood(grid tiles.Grid, radius int) NeighborhoodResponse {
	out := NeighborhoodResponse{
		Radius:         radius,
		WalkableTiles:  []gamestate.PositionWithDistance{},
		BlockedTiles:   []gamestate.PositionWithDistance{},
		EncounterTiles: []gamestate.Position{},
		WarpTiles:      []gamestate.Position{},
		TileTypeCounts: map[string]int{},
	}
	for _, row := range grid.Tiles {
		for _, t := range row {
			dist := absInt(t.ScreenX-anchorX) + absInt(t.ScreenY-anchorY)
			if dist > radius {
				continue
			}
			if t.IsWalkable {
				out.WalkableTiles = append(out.WalkableTiles, gamestate.PositionWithDistance{X: t.ScreenX, Y: t.ScreenY, Distance: dist})
			} else {
				out.BlockedTiles = append(out.BlockedTiles, gamestate.PositionWithDistance{X: t.ScreenX, Y: t.ScreenY, Distance: dist})
			}
			if t.IsEncounterTile {
				out.EncounterTiles = append(out.EncounterTiles, gamestate.Position{X: t.ScreenX, Y: t.ScreenY})
			}
			if t.IsWarpTile {
				out.WarpTiles = append(out.WarpTiles, gamestate.Position{X: t.ScreenX, Y: t.ScreenY})
			}
			out.TileTypeCounts[string(t.TileType)]++
		}
	}
	out.DirectionsAvailable = extract.ImmediateDirections(grid)
	return out
}

// CategorizeGrid groups the full grid into named buckets. An empty
// grid is a failed analysis, reported through the sentinel metadata
// rather than an error.
func CategorizeGrid(grid tiles.Grid) Categories {
	if grid.Empty() {
		return emptyCategories()
	}
	cat := emptyCategories()
	for _, row := range grid.Tiles {
		for _, t := range row {
			switch t.TileType {
			case tiles.TypeWater:
				cat.Water = append(cat.Water, t)
			case tiles.TypeTree:
				cat.Trees = append(cat.Trees, t)
			case tiles.TypeGrass:
				cat.Grass = append(cat.Grass, t)
			case tiles.TypeWarp:
				cat.Doors = append(cat.Doors, t)
			}
			if t.IsWalkable {
				cat.Walkable = append(cat.Walkable, t)
			} else {
				cat.Blocked = append(cat.Blocked, t)
			}
			if t.HasSign || t.HasBookshelf || t.HasStrengthBoulder || t.IsCuttableTree || t.IsPCAccessible {
				cat.Interactive = append(cat.Interactive, t)
			}
			if t.IsEncounterTile {
				cat.Encounters = append(cat.Encounters, t)
			}
			if t.IsWarpTile {
				cat.Warps = append(cat.Warps, t)
			}
			if t.IsLedge || t.IsAnimated || t.ElevationPair != nil {
				cat.Special = append(cat.Special, t)
			}
			cat.Metadata.TotalTiles++
		}
	}
	mapID := grid.CurrentMap
	tilesetID := 0
	for _, row := range grid.Tiles {
		if len(row) > 0 {
			tilesetID = int(row[0].TilesetID)
			break
		}
	}
	cat.Metadata.CurrentMap = &mapID
	cat.Metadata.TilesetID = &tilesetID
	cat.Metadata.WalkableCount = len(cat.Walkable)
	cat.Metadata.BlockedCount = len(cat.Blocked)
	cat.Metadata.InteractiveCount = len(cat.Interactive)
	cat.Metadata.AnalysisSuccessful = true
	return cat
}

func emptyCategories() Categories {
	return Categories{
		Water:       []tiles.Tile{},
		Trees:       []tiles.Tile{},
		Grass:       []tiles.Tile{},
		Doors:       []tiles.Tile{},
		Walkable:    []tiles.Tile{},
		Blocked:     []tiles.Tile{},
		Interactive: []tiles.Tile{},
		Encounters:  []tiles.Tile{},
		Warps:       []tiles.Tile{},
		Special:     []tiles.Tile{},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
