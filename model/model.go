package model

// Grid dimensions in 8x8 tiles. One game-relevant cell is a 2x2 tile
// block addressed at its upper left tile, always at even coordinates.
const (
	Cols = 32
	Rows = 28
)

// Hard capacities. Configured limits stay at or below these.
const (
	MaxBombsCap = 9
	MaxRangeCap = 9
	ChainCap    = MaxBombsCap * 2
)

// Timing, in 1/10s ticks.
const (
	TicksPerSecond     = 10
	BombTTL            = 35
	BootsTTL           = 150
	BombAnimation      = 2
	PlayerAnimation    = 1
	ExplosionAnimation = 1
)

// Low-plane tile indices for the upper left tile of a cell. The other
// three sub-tiles follow at +0x01, +0x10 and +0x11.
const (
	FieldEmpty     = 0x00
	FieldBombP1    = 0x08 // frame 1/2
	FieldBombP2    = 0x0C // frame 1/2
	FieldExplMid   = 0x20 // frame 1/4
	FieldPuBomb    = 0x28
	FieldPuRange   = 0x2A
	FieldPuSpeed   = 0x2C
	FieldExplPartX = 0x40 // frame 1/4, rightwards
	FieldExplEndX  = 0x60 // frame 1/4, rightwards
	FieldSolid     = 0x68
	FieldBricked   = 0x6A // frame 1/3
	FieldExplPartY = 0x80 // frame 1/4, downwards
	FieldExplEndY  = 0xA0 // frame 1/4, downwards
)

// FType is the semantic category of a tile, looked up from the raw
// tile index via the classification table in field.go.
type FType uint8

const (
	FTypeEmpty FType = iota
	FTypeBombP1
	FTypeBombP2
	FTypePuBomb
	FTypePuRange
	FTypePuSpeed
	FTypeSolid
	FTypeBricked
	FTypeFlame
)

// High-plane tile attributes: bit7 flip Y, bit6 flip X, bit5 priority,
// bits 2..4 palette.
const (
	AttrNormal = 0x2C
	AttrFlipX  = 0x6C
	AttrFlipY  = 0xAC
)

// Winner values. P1 and P2 are independent bits so that both players
// standing in flame on the same tick produce a draw.
type Winner uint8

const (
	WinnerNone Winner = 0
	WinnerP1   Winner = 1
	WinnerP2   Winner = 2
	WinnerDraw Winner = WinnerP1 | WinnerP2
)

func (w Winner) String() string {
	switch w {
	case WinnerP1:
		return "P1"
	case WinnerP2:
		return "P2"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

// Pad is the per-player input bitmask for one tick.
type Pad uint8

const (
	PadUp Pad = 1 << iota
	PadDown
	PadLeft
	PadRight
	PadAction
	PadStart
	PadSelect
)

// First animation frame per facing direction.
const (
	ActDown = 0
	ActUp   = 3
	ActSide = 6
)

// Player sprite bounding box, relative to the upper left corner.
const (
	pLeft   = 4
	pRight  = 12
	pTop    = 9
	pBottom = 15
	pMidX   = 7
	pMidY   = 12
)

// Bomb is one slot in a player's fixed bomb list. TTL == 0 means the
// slot is free.
type Bomb struct {
	X, Y     uint8 // upper left tile of the cell
	TTL      uint8 // ticks until detonation
	CurFrame uint8 // 0..1
	TTLFrame uint8 // ticks until the next animation frame
}

// TriggeredBomb records a bomb reached by another explosion, detonated
// after the direct bomb scans of the tick complete.
type TriggeredBomb struct {
	Range uint8
	Entry *Bomb
}

type moveAnimation struct {
	firstFrame uint8
	flipX      bool
}

// Maps (dx+1)<<2 + dy+1 to the facing animation.
var moveAni = [11]moveAnimation{
	{ActUp, false},   // -1,-1
	{ActSide, true},  // -1, 0
	{ActDown, false}, // -1, 1
	{ActDown, false}, // invalid
	{ActUp, false},   //  0,-1
	{ActDown, false}, //  0, 0
	{ActDown, false}, //  0, 1
	{ActDown, false}, // invalid
	{ActUp, false},   //  1,-1
	{ActSide, false}, //  1, 0
	{ActDown, false}, //  1, 1
}

// Player holds everything of one player. Created at round start, never
// removed during a round; losing is a winner bit, not a teardown.
type Player struct {
	X, Y       uint8 // upper left sprite corner in pixels
	FirstFrame uint8
	CurFrame   uint8
	FlipX      bool
	TTLFrame   uint8
	Moving     bool
	Range      uint8
	MaxBombs   uint8
	Bombs      uint8 // remaining placeable bombs
	Running    uint8 // speed boost ticks remaining
	BombList   [MaxBombsCap]Bomb
	LastBomb   int // bomb list index of the most recent drop, -1 if none

	moveAniIdx uint8
}

// Game is the whole simulation state for one round. All mutation
// happens inside Step; nothing here is safe for concurrent use.
type Game struct {
	Cfg Config

	// Tile planes: Low holds tile indices, High attributes, Ani the
	// animation frame count and TTL the per-cell frame countdown.
	Low  [Cols * Rows]uint8
	High [Cols * Rows]uint8
	Ani  [Cols * Rows]uint8
	TTL  [Cols * Rows]uint8

	P1, P2 Player
	Rng    Rng

	TimeLeft uint16 // seconds until the round ends in a draw
	Winner   Winner

	// Dirty flags for the presentation layer; it clears them after
	// reading.
	RefreshLow     bool
	RefreshHigh    bool
	RefreshSprites bool

	// Event flags for the audio layer, same protocol as above.
	Exploded bool
	PickedUp bool

	cells       []int // tile index of every cell that can change
	chain       [ChainCap]TriggeredBomb
	chainCount  int
	untilSecond uint8
	dropRate255 uint8
}

// Playfield cells sit one tile right of their nominal column.
func idx1(x, y uint8) int {
	return int(y)*Cols + int(x) + 1
}
