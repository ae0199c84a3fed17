package model

// NewGame builds a fresh round: template field, randomized walls and
// both players at their corners with starting stats. The seed is
// forced non-zero; equal seeds replay the exact same round.
func NewGame(cfg Config, seed uint32) *Game {
	g := &Game{Cfg: cfg}
	g.Rng.Seed(seed | 0x40)
	g.buildField()
	g.randomizeWalls()

	for _, p := range []*Player{&g.P1, &g.P2} {
		p.Bombs = 1
		p.MaxBombs = 1
		p.Range = 1
		p.FirstFrame = ActDown
		p.CurFrame = ActDown
		p.moveAniIdx = 5 // facing down, standing
		p.LastBomb = -1
	}
	g.P1.X, g.P1.Y = 2*8, 4*8
	g.P2.X, g.P2.Y = 26*8, 24*8

	g.dropRate255 = uint8(uint16(cfg.DropRate) * 255 / 100)
	g.TimeLeft = cfg.MaxTime
	g.untilSecond = TicksPerSecond
	g.RefreshSprites = true
	return g
}

// Step runs one 1/10s simulation tick. Phases are strictly ordered:
// clock and boost timers, player animation, field decay, bomb timers
// with direct detonations, deferred chain reactions, then per-player
// input (placement, movement, pickups). Later phases only ever see
// fully settled earlier-phase state.
func (g *Game) Step(pad1, pad2 Pad) Winner {
	if g.Winner != WinnerNone {
		return g.Winner
	}

	g.untilSecond--
	if g.untilSecond == 0 {
		g.untilSecond = TicksPerSecond
		g.TimeLeft--
		if g.TimeLeft == 0 {
			g.Winner = WinnerDraw
		}
	}

	if g.P1.Running > 0 {
		g.P1.Running--
	}
	if g.P2.Running > 0 {
		g.P2.Running--
	}
	g.stepWalkAnimation(&g.P1)
	g.stepWalkAnimation(&g.P2)

	g.tickFields()

	g.chainCount = 0
	g.tickBombs(&g.P1, FieldBombP1)
	g.tickBombs(&g.P2, FieldBombP2)
	// Entries appended while draining are picked up by the same loop,
	// so multi-stage chains settle within this tick.
	for i := 0; i < g.chainCount; i++ {
		g.explode(g.chain[i].Range, g.chain[i].Entry)
	}

	g.handlePlayer(pad1, &g.P1, FieldBombP1)
	g.handlePlayer(pad2, &g.P2, FieldBombP2)

	return g.Winner
}

func (g *Game) stepWalkAnimation(p *Player) {
	if !p.Moving {
		return
	}
	p.TTLFrame--
	if p.TTLFrame != 0 {
		return
	}
	p.TTLFrame = PlayerAnimation
	p.CurFrame++
	if p.CurFrame-p.FirstFrame > 2 {
		p.CurFrame = p.FirstFrame
	}
	g.RefreshSprites = true
}
