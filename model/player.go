package model

// canEnter reports whether the cell at tile x,y is passable for the
// player: empty, power-up and flame cells always are, a bomb cell only
// while it is the player's own most recently placed bomb.
func (g *Game) canEnter(p *Player, x, y uint8) bool {
	switch ftypeMap[g.Low[idx1(x, y)]] {
	case FTypeEmpty, FTypePuBomb, FTypePuRange, FTypePuSpeed, FTypeFlame:
		return true
	case FTypeBombP1, FTypeBombP2:
		if p.LastBomb >= 0 {
			b := &p.BombList[p.LastBomb]
			if b.TTL > 0 && b.X == x && b.Y == y {
				return true
			}
		}
	}
	return false
}

// handlePlayer applies one player's pad bits for this tick: bomb
// placement, movement with per-axis collision, facing animation and
// the post-movement pickup/hazard check.
func (g *Game) handlePlayer(pad Pad, p *Player, bombBase uint8) {
	if pad&PadAction != 0 && p.Bombs > 0 {
		x := (p.X + pMidX) >> 3 &^ 1
		y := (p.Y + pMidY) >> 3 &^ 1
		k := idx1(x, y)
		if g.Low[k] == FieldEmpty {
			p.Bombs--
			g.setBlock(k, bombBase)
			for i := range p.BombList {
				if p.BombList[i].TTL == 0 {
					p.BombList[i] = Bomb{X: x, Y: y, TTL: BombTTL, TTLFrame: BombAnimation}
					p.LastBomb = i
					break
				}
			}
		}
	}

	steps := 1
	if p.Running > 0 {
		steps = 2
	}
	for s := 0; s < steps; s++ {
		dx, dy := 0, 0
		if pad&PadLeft != 0 {
			dx--
		}
		if pad&PadRight != 0 {
			dx++
		}
		if pad&PadUp != 0 {
			dy--
		}
		if pad&PadDown != 0 {
			dy++
		}

		// Each axis resolves on its own: both leading corners of the
		// bounding box must pass while the other axis stays put, so a
		// diagonal still slides along a wall.
		nx := uint8(int(p.X) + dx)
		if dx > 0 {
			cx := (nx + pRight) >> 3 &^ 1
			if g.canEnter(p, cx, (p.Y+pTop)>>3&^1) && g.canEnter(p, cx, (p.Y+pBottom)>>3&^1) {
				p.X = nx
				g.RefreshSprites = true
			}
		} else if dx < 0 {
			cx := (nx + pLeft) >> 3 &^ 1
			if g.canEnter(p, cx, (p.Y+pTop)>>3&^1) && g.canEnter(p, cx, (p.Y+pBottom)>>3&^1) {
				p.X = nx
				g.RefreshSprites = true
			}
		}
		ny := uint8(int(p.Y) + dy)
		if dy > 0 {
			cy := (ny + pBottom) >> 3 &^ 1
			if g.canEnter(p, (p.X+pLeft)>>3&^1, cy) && g.canEnter(p, (p.X+pRight)>>3&^1, cy) {
				p.Y = ny
				g.RefreshSprites = true
			}
		} else if dy < 0 {
			cy := (ny + pTop) >> 3 &^ 1
			if g.canEnter(p, (p.X+pLeft)>>3&^1, cy) && g.canEnter(p, (p.X+pRight)>>3&^1, cy) {
				p.Y = ny
				g.RefreshSprites = true
			}
		}

		if dx != 0 || dy != 0 {
			p.Moving = true
			j := uint8((dx+1)<<2 + dy + 1)
			if p.moveAniIdx != j {
				p.FirstFrame = moveAni[j].firstFrame
				p.CurFrame = p.FirstFrame
				p.FlipX = moveAni[j].flipX
				p.moveAniIdx = j
				p.TTLFrame = PlayerAnimation
				g.RefreshSprites = true
			}
		} else if p.Moving {
			// stopped; keep facing the last direction
			p.CurFrame = p.FirstFrame
			p.Moving = false
			g.RefreshSprites = true
		}

		if p.Moving && p.LastBomb >= 0 {
			b := &p.BombList[p.LastBomb]
			x1 := (p.X + pLeft) >> 3 &^ 1
			x2 := (p.X + pRight) >> 3 &^ 1
			y1 := (p.Y + pTop) >> 3 &^ 1
			y2 := (p.Y + pBottom) >> 3 &^ 1
			if !(x1 <= b.X && x2 >= b.X && y1 <= b.Y && y2 >= b.Y) {
				// walked off the dropped bomb; its cell blocks again
				p.LastBomb = -1
			}
		}

		g.checkPlayerCollision(p, pLeft, pTop)
		g.checkPlayerCollision(p, pRight, pTop)
		g.checkPlayerCollision(p, pLeft, pBottom)
		g.checkPlayerCollision(p, pRight, pBottom)
	}
}

// checkPlayerCollision samples one bounding box corner against the
// grid, applying power-ups and flame hits. Flame is not consumed; a
// hit marks the other player winner-eligible.
func (g *Game) checkPlayerCollision(p *Player, xOff, yOff uint8) {
	x := (p.X + xOff) >> 3 &^ 1
	y := (p.Y + yOff) >> 3 &^ 1
	k := idx1(x, y)
	switch ftypeMap[g.Low[k]] {
	case FTypePuBomb:
		if p.MaxBombs < g.Cfg.MaxBombs {
			p.Bombs++
			p.MaxBombs++
		}
		g.clearBlock(k)
		g.PickedUp = true
	case FTypePuRange:
		if p.Range < g.Cfg.MaxRange {
			p.Range++
		}
		g.clearBlock(k)
		g.PickedUp = true
	case FTypePuSpeed:
		p.Running = BootsTTL
		g.clearBlock(k)
		g.PickedUp = true
	case FTypeFlame:
		if p == &g.P1 {
			g.Winner |= WinnerP2
		} else {
			g.Winner |= WinnerP1
		}
	}
}
