package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRound is the standard test fixture: default rules with drops
// disabled so destroyed walls leave deterministic empty cells.
func newRound(seed uint32) *Game {
	cfg := DefaultConfig()
	cfg.DropRate = 0
	return NewGame(cfg, seed)
}

// clearWalls removes every randomized wall so movement and explosion
// paths do not depend on the seed.
func clearWalls(g *Game) {
	for _, k := range g.cells[firstFlexCell:] {
		g.clearBlock(k)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, FTypeEmpty, Classify(FieldEmpty))
	assert.Equal(t, FTypeBombP1, Classify(FieldBombP1))
	assert.Equal(t, FTypeBombP1, Classify(FieldBombP1+2))
	assert.Equal(t, FTypeBombP2, Classify(FieldBombP2))
	assert.Equal(t, FTypeSolid, Classify(FieldSolid))
	assert.Equal(t, FTypeSolid, Classify(FieldSolid+0x10))
	assert.Equal(t, FTypeBricked, Classify(FieldBricked))
	assert.Equal(t, FTypeBricked, Classify(FieldBricked+4))
	assert.Equal(t, FTypePuBomb, Classify(FieldPuBomb))
	assert.Equal(t, FTypePuRange, Classify(FieldPuRange))
	assert.Equal(t, FTypePuSpeed, Classify(FieldPuSpeed))
	assert.Equal(t, FTypeFlame, Classify(FieldExplMid))
	assert.Equal(t, FTypeFlame, Classify(FieldExplMid+6))
	assert.Equal(t, FTypeFlame, Classify(FieldExplPartX))
	assert.Equal(t, FTypeFlame, Classify(FieldExplEndX+1))
	assert.Equal(t, FTypeFlame, Classify(FieldExplPartY+0x11))
	assert.Equal(t, FTypeFlame, Classify(FieldExplEndY+0x10))
}

func TestBuildFieldTemplate(t *testing.T) {
	g := &Game{}
	g.buildField()

	// status rows stay empty
	for i := 0; i < 2*Cols; i++ {
		assert.Equal(t, uint8(FieldEmpty), g.Low[i])
	}

	// spawn corners are walkable
	for _, c := range spawnCells {
		assert.Equal(t, FTypeEmpty, Classify(g.Low[idx1(c[0], c[1])]),
			"spawn cell %v", c)
	}

	// pillar lattice is solid
	for y := uint8(6); y <= 22; y += 4 {
		for x := uint8(4); x <= 24; x += 4 {
			assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(x, y)]),
				"pillar %d,%d", x, y)
		}
	}

	// everything else inside the playfield starts bricked
	for y := uint8(4); y <= 24; y += 2 {
		for x := uint8(2); x <= 26; x += 2 {
			if pillarCell(x, y) || spawnCell(x, y) {
				continue
			}
			assert.Equal(t, FTypeBricked, Classify(g.Low[idx1(x, y)]),
				"cell %d,%d", x, y)
		}
	}

	// border frame blocks explosion arms
	assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(0, 4)]))
	assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(28, 4)]))
	assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(2, 2)]))
	assert.Equal(t, FTypeSolid, Classify(g.Low[idx1(2, 26)]))

	// 143 playfield cells minus 30 pillars can change
	assert.Equal(t, 113, len(g.cells))
}

func TestBlockWritesAllFourSubTiles(t *testing.T) {
	g := &Game{}
	g.buildField()
	k := idx1(2, 10)

	g.setBlock(k, FieldPuBomb)
	assert.Equal(t, uint8(FieldPuBomb), g.Low[k])
	assert.Equal(t, uint8(FieldPuBomb+0x01), g.Low[k+1])
	assert.Equal(t, uint8(FieldPuBomb+0x10), g.Low[k+Cols])
	assert.Equal(t, uint8(FieldPuBomb+0x11), g.Low[k+Cols+1])
	assert.True(t, g.RefreshLow)

	g.clearBlock(k)
	assert.Equal(t, uint8(FieldEmpty), g.Low[k])
	assert.Equal(t, uint8(FieldEmpty), g.Low[k+1])
	assert.Equal(t, uint8(FieldEmpty), g.Low[k+Cols])
	assert.Equal(t, uint8(FieldEmpty), g.Low[k+Cols+1])

	g.setBlockFlippedX(k, FieldExplEndX)
	assert.Equal(t, uint8(FieldExplEndX+0x01), g.Low[k])
	assert.Equal(t, uint8(FieldExplEndX), g.Low[k+1])
	assert.Equal(t, uint8(FieldExplEndX+0x11), g.Low[k+Cols])
	assert.Equal(t, uint8(FieldExplEndX+0x10), g.Low[k+Cols+1])

	g.setBlockFlippedY(k, FieldExplEndY)
	assert.Equal(t, uint8(FieldExplEndY+0x10), g.Low[k])
	assert.Equal(t, uint8(FieldExplEndY+0x11), g.Low[k+1])
	assert.Equal(t, uint8(FieldExplEndY), g.Low[k+Cols])
	assert.Equal(t, uint8(FieldExplEndY+0x01), g.Low[k+Cols+1])

	g.setBlockAttr(k, AttrFlipX)
	assert.Equal(t, uint8(AttrFlipX), g.High[k])
	assert.Equal(t, uint8(AttrFlipX), g.High[k+1])
	assert.Equal(t, uint8(AttrFlipX), g.High[k+Cols])
	assert.Equal(t, uint8(AttrFlipX), g.High[k+Cols+1])
	assert.True(t, g.RefreshHigh)
}

func TestRandomizeWallsDeterministic(t *testing.T) {
	a := newRound(77)
	b := newRound(77)
	assert.Equal(t, a.Low, b.Low)

	c := newRound(78)
	assert.NotEqual(t, a.Low, c.Low)
}

func TestRandomizeWallsKeepsSpawnsClear(t *testing.T) {
	for seed := uint32(1); seed < 20; seed++ {
		g := newRound(seed)
		for _, c := range spawnCells {
			require.Equal(t, FTypeEmpty, Classify(g.Low[idx1(c[0], c[1])]),
				"seed %d spawn %v", seed, c)
		}
	}
}

func TestRollDropZeroRateNeverSpawns(t *testing.T) {
	for seed := uint32(1); seed < 50; seed++ {
		g := newRound(seed)
		k := idx1(2, 10)
		g.setBlock(k, FieldBricked)
		g.rollDrop(k)
		require.Equal(t, FTypeEmpty, Classify(g.Low[k]), "seed %d", seed)
	}
}

func TestRollDropFullRateAlwaysSpawns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DropRate = 100
	for seed := uint32(1); seed < 50; seed++ {
		g := NewGame(cfg, seed)
		k := idx1(2, 10)
		g.setBlock(k, FieldBricked)
		g.rollDrop(k)
		ft := Classify(g.Low[k])
		require.True(t,
			ft == FTypePuBomb || ft == FTypePuRange || ft == FTypePuSpeed,
			"seed %d got %d", seed, ft)
	}
}
