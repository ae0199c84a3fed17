package main

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var Font font.Face
var FontSmall font.Face

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	FontSmall = truetype.NewFace(tt, &truetype.Options{
		Size:    9,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

func drawTextCentered(dst *ebiten.Image, s string, f font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(f, s).Round()
	text.Draw(dst, s, f, cx-w/2, y, clr)
}
