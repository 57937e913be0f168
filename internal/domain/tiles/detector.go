package tiles

// Pure, catalog-backed property detectors. Each returns a small result
// struct the assembler merges into the Tile record.

// LedgeInfo is the ledge lookup result.
type LedgeInfo struct {
	IsLedge   bool
	Direction string
}

func DetectLedge(tileset TilesetID, tileID byte) LedgeInfo {
	dir, ok := LedgeDirection(tileset, tileID)
	if !ok {
		return LedgeInfo{}
	}
	return LedgeInfo{IsLedge: true, Direction: dir}
}

// InteractionProps covers the pressable/readable elements of a tile.
type InteractionProps struct {
	HasSign         bool
	HasBookshelf    bool
	StrengthBoulder bool
	CuttableTree    bool
	PCAccessible    bool
}

func DetectInteractions(tileset TilesetID, tileID byte) InteractionProps {
	return InteractionProps{
		HasSign:         IsSign(tileset, tileID),
		HasBookshelf:    IsBookshelf(tileset, tileID),
		StrengthBoulder: IsStrengthBoulder(tileset, tileID),
		CuttableTree:    IsTree(tileset, tileID),
		PCAccessible:    IsPC(tileset, tileID),
	}
}

// EnvironmentalProps covers encounters, warps and water currents. Warp
// destinations are never populated: resolving them needs map connection
// data this engine does not carry.
type EnvironmentalProps struct {
	IsEncounter           bool
	IsWarp                bool
	WaterCurrentDirection *string
	WarpDestinationMap    *int
	WarpDestinationX      *int
	WarpDestinationY      *int
}

func DetectEnvironment(tileset TilesetID, tileID byte) EnvironmentalProps {
	return EnvironmentalProps{
		IsEncounter: IsGrass(tileset, tileID),
		IsWarp:      IsDoor(tileset, tileID),
	}
}

// SpecialProps covers lighting and movement-speed modifiers.
type SpecialProps struct {
	MovementModifier   float64
	LightLevel         int
	BlocksLight        bool
	SafariZoneStep     bool
	GameCornerTile     bool
	FlyDestination     bool
	HiddenItemID       *int
	RequiresItemfinder bool
	ElevationPair      *int
}

func DetectSpecial(tileset TilesetID, tileID byte) SpecialProps {
	p := SpecialProps{MovementModifier: 1.0, LightLevel: 15}
	switch tileset {
	case Cavern:
		p.LightLevel = 8
		p.BlocksLight = true
	case RedsHouse1, RedsHouse2, Pokecenter, Mart:
		p.LightLevel = 12
	}
	if IsWater(tileset, tileID) {
		// surfing speed
		p.MovementModifier = 0.5
	}
	return p
}

// AnimationInfo covers tile animation and render priority.
type AnimationInfo struct {
	IsAnimated         bool
	SpritePriority     int
	BackgroundPriority int
	AnimationSpeed     int
}

func DetectAnimation(tileset TilesetID, tileID byte) AnimationInfo {
	info := AnimationInfo{}
	if IsWater(tileset, tileID) {
		info.IsAnimated = true
		info.AnimationSpeed = 2
	}
	if IsGrass(tileset, tileID) {
		info.IsAnimated = true
		info.AnimationSpeed = 1
	}
	return info
}

// AudioProps covers footstep sound behavior.
type AudioProps struct {
	HasFootstepSound bool
}

func DetectAudio(tileset TilesetID, tileID byte) AudioProps {
	_ = tileset
	_ = tileID
	return AudioProps{HasFootstepSound: true}
}

// SightLineInfo is the trainer line-of-sight result. Full detection
// needs trainer facing data that is not extracted yet, so the detector
// reports a safe "not in sight" rather than guessing.
type SightLineInfo struct {
	InSightLine   bool
	TrainerID     *int
	SightDistance int
}

func DetectTrainerSightLine(mapX, mapY int) SightLineInfo {
	_ = mapX
	_ = mapY
	return SightLineInfo{}
}
