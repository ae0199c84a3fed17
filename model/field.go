package model

// ftypeMap classifies a raw low-plane tile index in O(1). A flat table
// instead of branching keeps the many frame variants of one logical
// type out of the game logic.
var ftypeMap [192]FType

func init() {
	fill := func(from, to int, t FType) {
		for i := from; i <= to; i++ {
			ftypeMap[i] = t
		}
	}
	// Empty is the zero value; only the rest needs filling. The table
	// mirrors the tile sheet: each cell type occupies two sheet rows
	// (upper and lower sub-tiles 0x10 apart).
	fill(0x08, 0x0B, FTypeBombP1)
	fill(0x0C, 0x0F, FTypeBombP2)
	fill(0x18, 0x1B, FTypeBombP1)
	fill(0x1C, 0x1F, FTypeBombP2)
	fill(0x20, 0x27, FTypeFlame)
	fill(0x28, 0x29, FTypePuBomb)
	fill(0x2A, 0x2B, FTypePuRange)
	fill(0x2C, 0x2D, FTypePuSpeed)
	fill(0x30, 0x37, FTypeFlame)
	fill(0x38, 0x39, FTypePuBomb)
	fill(0x3A, 0x3B, FTypePuRange)
	fill(0x3C, 0x3D, FTypePuSpeed)
	fill(0x40, 0x47, FTypeFlame)
	fill(0x50, 0x57, FTypeFlame)
	fill(0x60, 0x67, FTypeFlame)
	fill(0x68, 0x69, FTypeSolid)
	fill(0x6A, 0x6F, FTypeBricked)
	fill(0x70, 0x77, FTypeFlame)
	fill(0x78, 0x79, FTypeSolid)
	fill(0x7A, 0x7F, FTypeBricked)
	fill(0x80, 0x87, FTypeFlame)
	fill(0x90, 0x97, FTypeFlame)
	fill(0xA0, 0xA7, FTypeFlame)
	fill(0xB0, 0xB7, FTypeFlame)
}

// Classify maps a raw tile index to its semantic category.
func Classify(tile uint8) FType {
	return ftypeMap[tile]
}

// Cells in the two spawn corners stay empty and are skipped by the
// wall randomization.
var spawnCells = [][2]uint8{
	{2, 4}, {2, 6}, {2, 8}, {4, 4}, {6, 4},
	{22, 24}, {24, 24}, {26, 20}, {26, 22}, {26, 24},
}

const firstFlexCell = 10

// Solid pillars form the classic lattice inside the playfield.
func pillarCell(x, y uint8) bool {
	return x%4 == 0 && y%4 == 2
}

// Block mutators. A cell is always written as all four of its
// sub-tiles; partial writes do not exist.

func (g *Game) clearBlock(i int) {
	g.Low[i] = FieldEmpty
	g.Low[i+1] = FieldEmpty
	g.Low[i+Cols] = FieldEmpty
	g.Low[i+Cols+1] = FieldEmpty
	g.RefreshLow = true
}

func (g *Game) setBlock(i int, base uint8) {
	g.Low[i] = base
	g.Low[i+1] = base + 0x01
	g.Low[i+Cols] = base + 0x10
	g.Low[i+Cols+1] = base + 0x11
	g.RefreshLow = true
}

func (g *Game) setBlockFlippedX(i int, base uint8) {
	g.Low[i] = base + 0x01
	g.Low[i+1] = base
	g.Low[i+Cols] = base + 0x11
	g.Low[i+Cols+1] = base + 0x10
	g.RefreshLow = true
}

func (g *Game) setBlockFlippedY(i int, base uint8) {
	g.Low[i] = base + 0x10
	g.Low[i+1] = base + 0x11
	g.Low[i+Cols] = base
	g.Low[i+Cols+1] = base + 0x01
	g.RefreshLow = true
}

func (g *Game) nextBlockFrame(i int) {
	g.Low[i] += 2
	g.Low[i+1] += 2
	g.Low[i+Cols] += 2
	g.Low[i+Cols+1] += 2
	g.RefreshLow = true
}

func (g *Game) setBlockAttr(i int, attr uint8) {
	g.High[i] = attr
	g.High[i+1] = attr
	g.High[i+Cols] = attr
	g.High[i+Cols+1] = attr
	g.RefreshHigh = true
}

// buildField lays out the round template: a solid frame and pillar
// lattice, bricked walls on every other cell, and the spawn corners
// cleared. It also collects the index list of cells that can change,
// spawn cells first.
func (g *Game) buildField() {
	g.cells = g.cells[:0]
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			i := y*Cols + x
			g.Ani[i] = 0
			g.TTL[i] = 0
			g.High[i] = AttrNormal
			if y < 2 {
				// status row
				g.Low[i] = FieldEmpty
				continue
			}
			// Sub-tile frame picked so that 2x2 blocks aligned with
			// the playfield cells render consistently.
			g.Low[i] = FieldSolid + uint8((x+1)&1) + 0x10*uint8(y&1)
		}
	}
	for _, c := range spawnCells {
		k := idx1(c[0], c[1])
		g.clearBlock(k)
		g.cells = append(g.cells, k)
	}
	for y := uint8(4); y <= 24; y += 2 {
		for x := uint8(2); x <= 26; x += 2 {
			if pillarCell(x, y) || spawnCell(x, y) {
				continue
			}
			k := idx1(x, y)
			g.setBlock(k, FieldBricked)
			g.cells = append(g.cells, k)
		}
	}
	g.RefreshLow = true
	g.RefreshHigh = true
}

func spawnCell(x, y uint8) bool {
	for _, c := range spawnCells {
		if c[0] == x && c[1] == y {
			return true
		}
	}
	return false
}

// randomizeWalls clears each flexible bricked cell with probability
// 2/8 to vary the maze between rounds.
func (g *Game) randomizeWalls() {
	for _, k := range g.cells[firstFlexCell:] {
		if g.Rng.Draw()&7 >= 6 {
			g.clearBlock(k)
		}
	}
}

// tickFields advances the animation of every changeable cell. A cell
// whose frame counter runs out either shows its next frame or is
// finalized: bricked remnants roll the power-up dice, everything else
// reverts to empty.
func (g *Game) tickFields() {
	for _, k := range g.cells {
		if g.TTL[k] == 0 {
			continue
		}
		g.TTL[k]--
		if g.TTL[k] != 0 {
			continue
		}
		g.Ani[k]--
		if g.Ani[k] != 0 {
			g.TTL[k] = ExplosionAnimation
			if g.Low[k] == FieldBricked+4 {
				// toggle between the two crumbling frames
				g.setBlock(k, FieldBricked+2)
			} else {
				g.nextBlockFrame(k)
			}
			continue
		}
		switch g.Low[k] {
		case FieldBricked + 2, FieldBricked + 4:
			g.rollDrop(k)
		default:
			g.clearBlock(k)
		}
		g.setBlockAttr(k, AttrNormal)
	}
}

// rollDrop decides what a destroyed bricked wall leaves behind:
// nothing, or a power-up weighted 4/8 bomb, 3/8 range, 1/8 speed.
func (g *Game) rollDrop(k int) {
	m := g.Rng.Draw()
	if g.dropRate255 == 0 || uint8(m) > g.dropRate255 {
		g.clearBlock(k)
		return
	}
	switch (m >> 8) & 7 {
	case 0, 1, 2, 3:
		g.setBlock(k, FieldPuBomb)
	case 4, 5, 6:
		g.setBlock(k, FieldPuRange)
	default:
		g.setBlock(k, FieldPuSpeed)
	}
}
