package main

import (
	"github.com/zucenko/bomber/model"
)

// GameColor is a normalized color usable both for ColorM scaling and,
// via RGBA, anywhere a color.Color is expected.
type GameColor struct {
	r float64
	g float64
	b float64
}

func HexToF32(u uint32) GameColor {
	return GameColor{
		r: float64(0xff&(u>>16)) / 255,
		g: float64(0xff&(u>>8)) / 255,
		b: float64(0xff&u) / 255,
	}
}

func (c GameColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r * 0xffff), uint32(c.g * 0xffff), uint32(c.b * 0xffff), 0xffff
}

var (
	colorBackground = HexToF32(0x101418)
	colorPanel      = HexToF32(0x202440)
	colorDim        = HexToF32(0xa0a8b0)

	colorSolid   = HexToF32(0x50555a)
	colorBricked = HexToF32(0xb05a2a)
	colorBombP1  = HexToF32(0x2864a0)
	colorBombP2  = HexToF32(0xa02828)
	colorPuBomb  = HexToF32(0x38a0ff)
	colorPuRange = HexToF32(0xff8838)
	colorPuSpeed = HexToF32(0x38ff88)

	colP1 = HexToF32(0x58c8ff)
	colP2 = HexToF32(0xfa3636)

	// hottest to coolest, indexed by the flame animation frame
	flameColors = [4]GameColor{
		HexToF32(0xfff0a0),
		HexToF32(0xffc030),
		HexToF32(0xff8020),
		HexToF32(0xc04010),
	}
)

func tileColor(t uint8) GameColor {
	switch model.Classify(t) {
	case model.FTypeSolid:
		return colorSolid
	case model.FTypeBricked:
		return colorBricked
	case model.FTypeBombP1:
		return colorBombP1
	case model.FTypeBombP2:
		return colorBombP2
	case model.FTypePuBomb:
		return colorPuBomb
	case model.FTypePuRange:
		return colorPuRange
	case model.FTypePuSpeed:
		return colorPuSpeed
	case model.FTypeFlame:
		return flameColors[(t>>1)&3]
	default:
		return colorBackground
	}
}
