package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plant puts a live bomb into a player's slot and stamps its cell,
// bypassing the pad handling.
func plant(g *Game, p *Player, slot int, base, x, y, ttl uint8) {
	p.BombList[slot] = Bomb{X: x, Y: y, TTL: ttl, TTLFrame: BombAnimation}
	g.setBlock(idx1(x, y), base)
}

func TestExplosionPlusShape(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.P1.Range = 2
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)

	g.Step(0, 0)

	assert.True(t, g.Exploded)
	assert.Equal(t, uint8(1), g.P1.Bombs)
	assert.Equal(t, uint8(FieldExplMid), g.Low[idx1(6, 8)])

	// leftwards arm is mirrored
	assert.Equal(t, uint8(FieldExplPartX+1), g.Low[idx1(4, 8)])
	assert.Equal(t, uint8(AttrFlipX), g.High[idx1(4, 8)])
	assert.Equal(t, uint8(FieldExplEndX+1), g.Low[idx1(2, 8)])

	assert.Equal(t, uint8(FieldExplPartX), g.Low[idx1(8, 8)])
	assert.Equal(t, uint8(AttrNormal), g.High[idx1(8, 8)])
	assert.Equal(t, uint8(FieldExplEndX), g.Low[idx1(10, 8)])

	// upwards arm is mirrored vertically
	assert.Equal(t, uint8(FieldExplPartY+0x10), g.Low[idx1(6, 6)])
	assert.Equal(t, uint8(AttrFlipY), g.High[idx1(6, 6)])
	assert.Equal(t, uint8(FieldExplEndY+0x10), g.Low[idx1(6, 4)])

	assert.Equal(t, uint8(FieldExplPartY), g.Low[idx1(6, 10)])
	assert.Equal(t, uint8(FieldExplEndY), g.Low[idx1(6, 12)])

	// four animation frames, then the flames are gone
	for i := 0; i < 4; i++ {
		g.Step(0, 0)
	}
	for _, c := range [][2]uint8{
		{6, 8}, {4, 8}, {2, 8}, {8, 8}, {10, 8},
		{6, 6}, {6, 4}, {6, 10}, {6, 12},
	} {
		assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(c[0], c[1])]),
			"cell %v", c)
	}
}

func TestExplosionStoppedBySolid(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.P1.Range = 9
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)

	g.Step(0, 0)

	// the border frame and the status rows stay untouched
	assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(0, 8)]))
	assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(6, 2)]))

	// nine cells to the right, ending inside the field
	assert.Equal(t, uint8(FieldExplEndX), g.Low[idx1(24, 8)])
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(26, 8)]))
}

func TestExplosionIgnitesBrickedAndStops(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.setBlock(idx1(8, 8), FieldBricked)
	g.P1.Range = 2
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)

	g.Step(0, 0)
	assert.Equal(t, uint8(FieldBricked+2), g.Low[idx1(8, 8)])
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(10, 8)]),
		"arm must not pass through the wall")

	// crumbling animation, then gone (drops are off)
	g.Step(0, 0)
	assert.Equal(t, uint8(FieldBricked+4), g.Low[idx1(8, 8)])
	for i := 0; i < 3; i++ {
		g.Step(0, 0)
	}
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(8, 8)]))
}

func TestExplosionLeavesBurningWallAlone(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	k := idx1(8, 8)
	g.setBlock(k, FieldBricked)
	g.Ani[k] = 4
	g.P1.Range = 2
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)

	g.Step(0, 0)
	assert.Equal(t, uint8(FieldBricked), g.Low[k])
}

func TestExplosionDestroysPowerUpAndStops(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.setBlock(idx1(8, 8), FieldPuRange)
	g.P1.Range = 2
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)

	g.Step(0, 0)
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(8, 8)]))
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(10, 8)]))
}

func TestChainReactionUsesOwnerRange(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)
	g.P2.Range = 2
	g.P2.Bombs = 0
	plant(g, &g.P2, 0, FieldBombP2, 8, 8, 30)

	g.Step(0, 0)

	// the second bomb went off in the same tick, with its own range
	assert.Equal(t, uint8(FieldExplMid), g.Low[idx1(8, 8)])
	assert.Equal(t, uint8(FieldExplPartX), g.Low[idx1(10, 8)])
	assert.Equal(t, uint8(FieldExplEndX), g.Low[idx1(12, 8)])

	assert.Equal(t, uint8(0), g.P2.BombList[0].TTL)
	assert.Equal(t, uint8(1), g.P1.Bombs)
	assert.Equal(t, uint8(1), g.P2.Bombs)
}

func TestCircularChainTerminates(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)
	g.P2.MaxBombs = 2
	g.P2.Bombs = 0
	plant(g, &g.P2, 0, FieldBombP2, 8, 8, 30)
	plant(g, &g.P2, 1, FieldBombP2, 10, 8, 30)

	g.Step(0, 0)

	require.Equal(t, uint8(0), g.P1.BombList[0].TTL)
	require.Equal(t, uint8(0), g.P2.BombList[0].TTL)
	require.Equal(t, uint8(0), g.P2.BombList[1].TTL)
	assert.Equal(t, uint8(1), g.P1.Bombs)
	assert.Equal(t, uint8(2), g.P2.Bombs)
	assert.Equal(t, uint8(FieldExplEndX), g.Low[idx1(12, 8)])
}

func TestCrossingFlameKeepsDecayTimer(t *testing.T) {
	g := newRound(1)
	clearWalls(g)
	g.P1.Bombs = 0
	plant(g, &g.P1, 0, FieldBombP1, 6, 8, 1)
	g.P2.Range = 2
	g.P2.Bombs = 0
	plant(g, &g.P2, 0, FieldBombP2, 10, 8, 3)

	// first bomb detonates, its flames start fading
	g.Step(0, 0)
	require.Equal(t, uint8(FieldExplEndX), g.Low[idx1(8, 8)])
	g.Step(0, 0)

	// second bomb detonates on tick 3, crossing the old flames
	g.Step(0, 0)
	require.Equal(t, uint8(FieldExplMid+4), g.Low[idx1(8, 8)])

	// two ticks later the old flames expire on their original clock,
	// the new ones keep burning
	g.Step(0, 0)
	g.Step(0, 0)
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(8, 8)]))
	assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(6, 8)]))
	assert.Equal(t, FTypeFlame, Classify(g.Low[idx1(12, 8)]))
}
