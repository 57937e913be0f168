package extract

// WRAM address map for Gen 1 (pokered symbol names). Every engine read
// goes through these constants; nothing else hardcodes addresses.
const (
	addrPlayerName      uint16 = 0xD158
	addrPartyCount      uint16 = 0xD163
	addrObtainedBadges  uint16 = 0xD356
	addrCurrentMap      uint16 = 0xD35E
	addrYCoord          uint16 = 0xD361
	addrXCoord          uint16 = 0xD362
	addrCurrentTileset  uint16 = 0xD367
	addrMapHeight       uint16 = 0xD368
	addrMapWidth        uint16 = 0xD369
	addrMapLoadStatus   uint16 = 0xD36A
	addrCollisionPtr    uint16 = 0xD530
	addrTileMapBuffer   uint16 = 0xC3A0
	addrSpriteStateData uint16 = 0xC100
	addrBattleMonHP     uint16 = 0xD015
	addrBattleMonMaxHP  uint16 = 0xD017
	addrEnemyMonHP      uint16 = 0xCFE6
	addrEnemyMonMaxHP   uint16 = 0xCFE8
	addrIsInBattle      uint16 = 0xD057
	addrEventFlagsStart uint16 = 0xD747
	addrEventFlagsEnd   uint16 = 0xD87E
)

// playerNameLength is the fixed name field width, 0x50-terminated.
const playerNameLength = 11

var partyHPAddrs = [6]uint16{0xD16C, 0xD198, 0xD1C4, 0xD1F0, 0xD21C, 0xD248}
var partyMaxHPAddrs = [6]uint16{0xD18D, 0xD1B9, 0xD1E5, 0xD211, 0xD23D, 0xD269}
var partyLevelAddrs = [6]uint16{0xD18C, 0xD1B8, 0xD1E4, 0xD210, 0xD23C, 0xD268}

// Sprite table layout: 16 slots of 16 bytes; screen pixel coordinates
// live at fixed offsets inside each slot.
const (
	spriteSlotCount   = 16
	spriteSlotSize    = 16
	spriteYPixelOff   = 4
	spriteXPixelOff   = 6
	spritePixelWiggle = 8
)

// Screen geometry. The map scrolls under the player, so the player's
// collision anchor sits at a fixed screen cell: the bottom-left of the
// 2x2 sprite block whose top-left is (8,9).
const (
	screenCenterX = 10
	screenCenterY = 9
	anchorX       = 8
	anchorY       = 10
)

// collisionScanLimit caps the in-RAM collision table walk so corrupt
// pointers cannot send the scan off into the weeds.
const collisionScanLimit = 100
