package main

import (
	"github.com/hajimehoshi/ebiten"

	"github.com/zucenko/bomber/model"
)

// Bindings maps one player's keys to pad bits, sampled once per
// simulation tick.
type Bindings struct {
	Up, Down, Left, Right, Action, Start ebiten.Key
}

func (b *Bindings) Pad() model.Pad {
	var p model.Pad
	if ebiten.IsKeyPressed(b.Up) {
		p |= model.PadUp
	}
	if ebiten.IsKeyPressed(b.Down) {
		p |= model.PadDown
	}
	if ebiten.IsKeyPressed(b.Left) {
		p |= model.PadLeft
	}
	if ebiten.IsKeyPressed(b.Right) {
		p |= model.PadRight
	}
	if ebiten.IsKeyPressed(b.Action) {
		p |= model.PadAction
	}
	return p
}

var p1Keys = Bindings{
	Up:     ebiten.KeyW,
	Down:   ebiten.KeyS,
	Left:   ebiten.KeyA,
	Right:  ebiten.KeyD,
	Action: ebiten.KeySpace,
	Start:  ebiten.KeyE,
}

var p2Keys = Bindings{
	Up:     ebiten.KeyUp,
	Down:   ebiten.KeyDown,
	Left:   ebiten.KeyLeft,
	Right:  ebiten.KeyRight,
	Action: ebiten.KeyEnter,
	Start:  ebiten.KeyP,
}
