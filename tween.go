package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action carries the callbacks attached to a running tween and the
// tweens queued after it.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return &action
}

// slideTo rolls the current screen out to the right and the next one
// in from the left, keeping input locked while the transition runs.
func (g *Game) slideTo(s Screen) {
	if g.sliding {
		return
	}
	g.sliding = true
	out := gween.New(0, screenWidth, 0.25, ease.InQuad)
	a := Action{onChange: func(v float32) { g.slideX = float64(v) }}
	a.addOnFinish(func() {
		g.Screen = s
		g.slideX = -screenWidth
	})
	in := a.next(gween.New(-screenWidth, 0, 0.25, ease.OutQuad))
	in.onChange = func(v float32) { g.slideX = float64(v) }
	in.addOnFinish(func() {
		g.sliding = false
		g.slideX = 0
	})
	g.Tweens[out] = a
}
