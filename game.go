package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"

	"github.com/zucenko/bomber/model"
)

const (
	screenWidth  = model.Cols * 8
	screenHeight = model.Rows * 8
	windowScale  = 3

	// the simulation runs at 10Hz, the display at 60
	framesPerStep = 6
)

type Screen int

const (
	ScreenTitle Screen = iota
	ScreenOptions
	ScreenGame
	ScreenPause
	ScreenWinner
)

type Game struct {
	Screen Screen
	Cfg    model.Config
	M      *model.Game

	Tweens map[*gween.Tween]Action
	Panel  *Nine

	cursor   model.Option
	frame    int
	pausedBy int
	slideX   float64
	sliding  bool
}

var theGame *Game

var fieldImage *ebiten.Image
var playerImage *ebiten.Image

func init() {
	fieldImage, _ = ebiten.NewImage(screenWidth, screenHeight, ebiten.FilterDefault)
	playerImage, _ = ebiten.NewImage(16, 16, ebiten.FilterDefault)
	playerImage.Fill(color.White)

	theGame = &Game{
		Screen: ScreenTitle,
		Cfg:    model.DefaultConfig(),
		Tweens: make(map[*gween.Tween]Action),
		Panel:  newPanel(),
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	for t, a := range g.Tweens {
		curr, finished := t.Update(1.0 / 60)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}

	switch g.Screen {
	case ScreenTitle:
		g.updateTitle()
	case ScreenOptions:
		g.updateOptions()
	case ScreenGame:
		g.updateGame()
	case ScreenPause:
		g.updatePause()
	case ScreenWinner:
		g.updateWinner()
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) updateTitle() {
	if g.sliding {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.slideTo(ScreenOptions)
	}
}

func (g *Game) updateOptions() {
	if g.sliding {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.cursor = (g.cursor + 1) % model.OptionCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.cursor = (g.cursor + model.OptionCount - 1) % model.OptionCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.Cfg.Decrease(g.cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.Cfg.Increase(g.cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Cfg.Reset(g.cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.startRound()
	}
}

func (g *Game) startRound() {
	seed := uint32(time.Now().UnixNano())
	g.M = model.NewGame(g.Cfg, seed)
	g.frame = 0
	log.WithFields(log.Fields{
		"seed": seed,
		"time": g.Cfg.MaxTime,
		"drop": g.Cfg.DropRate,
	}).Info("round start")
	g.slideTo(ScreenGame)
}

func (g *Game) updateGame() {
	if g.sliding {
		return
	}
	if inpututil.IsKeyJustPressed(p1Keys.Start) {
		g.pausedBy = 1
		g.Screen = ScreenPause
		return
	}
	if inpututil.IsKeyJustPressed(p2Keys.Start) {
		g.pausedBy = 2
		g.Screen = ScreenPause
		return
	}
	g.frame++
	if g.frame%framesPerStep != 0 {
		return
	}
	w := g.M.Step(p1Keys.Pad(), p2Keys.Pad())
	if g.M.Exploded {
		g.M.Exploded = false
		PlayBoom()
	}
	if g.M.PickedUp {
		g.M.PickedUp = false
		PlayBlip()
	}
	if w != model.WinnerNone {
		log.WithField("winner", w).Info("round over")
		g.slideTo(ScreenWinner)
	}
}

func (g *Game) updatePause() {
	if g.sliding {
		return
	}
	// only the pad that paused can resume
	resume := p1Keys.Start
	if g.pausedBy == 2 {
		resume = p2Keys.Start
	}
	if inpututil.IsKeyJustPressed(resume) {
		g.Screen = ScreenGame
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Info("round abandoned")
		g.slideTo(ScreenTitle)
	}
}

func (g *Game) updateWinner() {
	if g.sliding {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.slideTo(ScreenOptions)
	}
}

func (g *Game) draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	ox := int(g.slideX)
	switch g.Screen {
	case ScreenTitle:
		g.drawTitle(screen, ox)
	case ScreenOptions:
		g.drawOptions(screen, ox)
	case ScreenGame:
		g.drawGame(screen, ox)
	case ScreenPause:
		g.drawGame(screen, ox)
		g.drawPause(screen, ox)
	case ScreenWinner:
		g.drawWinner(screen, ox)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image, ox int) {
	g.Panel.SetPosition(40+ox, 52)
	g.Panel.SetSize(176, 104)
	g.Panel.Draw(screen)
	drawTextCentered(screen, "B O M B E R", Font, screenWidth/2+ox, 96, color.White)
	drawTextCentered(screen, "PRESS ENTER", FontSmall, screenWidth/2+ox, 128, colorDim)
}

func (g *Game) drawOptions(screen *ebiten.Image, ox int) {
	g.Panel.SetPosition(32+ox, 40)
	g.Panel.SetSize(192, 128)
	g.Panel.Draw(screen)
	drawTextCentered(screen, "OPTIONS", Font, screenWidth/2+ox, 64, color.White)
	for o := model.Option(0); o < model.OptionCount; o++ {
		y := 86 + 18*int(o)
		clr := color.Color(colorDim)
		if o == g.cursor {
			clr = color.White
			text.Draw(screen, ">", FontSmall, 44+ox, y, clr)
		}
		text.Draw(screen, o.Name(), FontSmall, 56+ox, y, clr)
		text.Draw(screen, g.optionValue(o), FontSmall, 170+ox, y, clr)
	}
	drawTextCentered(screen, "ENTER TO START", FontSmall, screenWidth/2+ox, 162, colorDim)
}

func (g *Game) optionValue(o model.Option) string {
	switch o {
	case model.OptTime:
		return fmt.Sprintf("%d", g.Cfg.MaxTime)
	case model.OptDropRate:
		return fmt.Sprintf("%d%%", g.Cfg.DropRate)
	case model.OptBombs:
		return fmt.Sprintf("%d", g.Cfg.MaxBombs)
	default:
		return fmt.Sprintf("%d", g.Cfg.MaxRange)
	}
}

func (g *Game) drawGame(screen *ebiten.Image, ox int) {
	if g.M.RefreshLow || g.M.RefreshHigh {
		g.redrawField()
		g.M.RefreshLow = false
		g.M.RefreshHigh = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), 0)
	screen.DrawImage(fieldImage, op)

	g.drawPlayer(screen, &g.M.P1, colP1, ox)
	g.drawPlayer(screen, &g.M.P2, colP2, ox)
	g.drawHUD(screen, ox)
}

func (g *Game) redrawField() {
	fieldImage.Fill(colorBackground)
	for y := 2; y < model.Rows; y++ {
		for x := 0; x < model.Cols; x++ {
			t := g.M.Low[y*model.Cols+x]
			if t == model.FieldEmpty {
				continue
			}
			ebitenutil.DrawRect(fieldImage, float64(x*8), float64(y*8), 8, 8, tileColor(t))
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *model.Player, c GameColor, ox int) {
	// the playfield sits one tile right of the nominal column
	op := &ebiten.DrawImageOptions{}
	if p.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(16, 0)
	}
	op.GeoM.Translate(float64(int(p.X)+8+ox), float64(p.Y))
	shade := 1 - 0.1*float64(p.CurFrame-p.FirstFrame)
	op.ColorM.Scale(c.r*shade, c.g*shade, c.b*shade, 1)
	screen.DrawImage(playerImage, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, ox int) {
	m := g.M
	text.Draw(screen, fmt.Sprintf("P1  B%d R%d", m.P1.MaxBombs, m.P1.Range),
		FontSmall, 10+ox, 12, colP1)
	drawTextCentered(screen, fmt.Sprintf("%d", m.TimeLeft),
		FontSmall, screenWidth/2+ox, 12, color.White)
	text.Draw(screen, fmt.Sprintf("P2  B%d R%d", m.P2.MaxBombs, m.P2.Range),
		FontSmall, 186+ox, 12, colP2)
}

func (g *Game) drawPause(screen *ebiten.Image, ox int) {
	g.Panel.SetPosition(72+ox, 80)
	g.Panel.SetSize(112, 56)
	g.Panel.Draw(screen)
	drawTextCentered(screen, "PAUSE", Font, screenWidth/2+ox, 106, color.White)
	drawTextCentered(screen, "Q TO QUIT", FontSmall, screenWidth/2+ox, 124, colorDim)
}

func (g *Game) drawWinner(screen *ebiten.Image, ox int) {
	g.Panel.SetPosition(40+ox, 64)
	g.Panel.SetSize(176, 80)
	g.Panel.Draw(screen)
	s := "DRAW"
	switch g.M.Winner {
	case model.WinnerP1:
		s = "PLAYER 1 WINS"
	case model.WinnerP2:
		s = "PLAYER 2 WINS"
	}
	drawTextCentered(screen, s, Font, screenWidth/2+ox, 100, color.White)
	drawTextCentered(screen, "PRESS ENTER", FontSmall, screenWidth/2+ox, 128, colorDim)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, windowScale, "Bomber"); err != nil {
		log.Fatal(err)
	}
}
