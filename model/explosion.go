package model

// tickBombs advances one player's bomb slots: live bombs count down
// and cycle their two fizzing frames; an expired bomb returns its slot
// and detonates.
func (g *Game) tickBombs(p *Player, bombBase uint8) {
	for i := range p.BombList {
		b := &p.BombList[i]
		if b.TTL == 0 {
			continue
		}
		b.TTL--
		if b.TTL != 0 {
			b.TTLFrame--
			if b.TTLFrame == 0 {
				b.TTLFrame = BombAnimation
				b.CurFrame ^= 1
				g.setBlock(idx1(b.X, b.Y), bombBase+2*b.CurFrame)
			}
			continue
		}
		p.Bombs++
		g.explode(p.Range, b)
	}
}

// explode stamps the explosion center and walks outward in all four
// directions up to the given range, one cell per step, stopping a
// direction at the first blocking cell.
func (g *Game) explode(rng uint8, b *Bomb) {
	k := idx1(b.X, b.Y)
	g.Ani[k] = 4
	g.TTL[k] = ExplosionAnimation
	g.setBlock(k, FieldExplMid)
	g.Exploded = true

	x, y := b.X, b.Y
	m := k
	for j := rng; j > 0; j-- {
		x -= 2
		m -= 2
		if !g.burn(x, y, m, AttrFlipX, FieldExplPartX, FieldExplEndX, j == 1) {
			break
		}
	}
	x, m = b.X, k
	for j := rng; j > 0; j-- {
		x += 2
		m += 2
		if !g.burn(x, y, m, AttrNormal, FieldExplPartX, FieldExplEndX, j == 1) {
			break
		}
	}
	x = b.X
	y, m = b.Y, k
	for j := rng; j > 0; j-- {
		y -= 2
		m -= 2 * Cols
		if !g.burn(x, y, m, AttrFlipY, FieldExplPartY, FieldExplEndY, j == 1) {
			break
		}
	}
	y, m = b.Y, k
	for j := rng; j > 0; j-- {
		y += 2
		m += 2 * Cols
		if !g.burn(x, y, m, AttrNormal, FieldExplPartY, FieldExplEndY, j == 1) {
			break
		}
	}
}

// burn resolves a single cell reached by an explosion arm and reports
// whether the arm keeps going.
func (g *Game) burn(x, y uint8, m int, attr, part, end uint8, last bool) bool {
	switch ftypeMap[g.Low[m]] {
	case FTypeEmpty:
		g.Ani[m] = 4
		g.TTL[m] = ExplosionAnimation
		g.setBlockAttr(m, attr)
		t := part
		if last {
			t = end
		}
		switch {
		case attr&0x80 != 0:
			g.setBlockFlippedY(m, t)
		case attr&0x40 != 0:
			g.setBlockFlippedX(m, t)
		default:
			g.setBlock(m, t)
		}
		return true
	case FTypeFlame:
		// crossing another explosion: re-stamp to the matching center
		// frame, leaving the running decay timer alone
		g.setBlockAttr(m, AttrNormal)
		g.setBlock(m, FieldExplMid+2*(4-g.Ani[m]))
		return true
	case FTypePuBomb, FTypePuRange, FTypePuSpeed:
		// destroyed, and the arm ends here
		g.clearBlock(m)
	case FTypeSolid:
	case FTypeBombP1:
		g.triggerBomb(&g.P1, x, y)
	case FTypeBombP2:
		g.triggerBomb(&g.P2, x, y)
	case FTypeBricked:
		if g.Ani[m] == 0 {
			g.Ani[m] = 4
			g.TTL[m] = ExplosionAnimation
			g.setBlock(m, FieldBricked+2)
		}
	}
	return false
}

// triggerBomb queues a chain reaction for the live bomb at x,y. Its
// ttl is zeroed right away so neither the timeout scan nor a second
// crossing arm can detonate it again; that also breaks circular
// layouts where two bombs would keep re-triggering each other.
func (g *Game) triggerBomb(p *Player, x, y uint8) {
	for i := range p.BombList {
		b := &p.BombList[i]
		if b.TTL > 0 && b.X == x && b.Y == y {
			p.Bombs++
			b.TTL = 0
			g.chain[g.chainCount] = TriggeredBomb{Range: p.Range, Entry: b}
			g.chainCount++
			return
		}
	}
}
