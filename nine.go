package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
)

// Nine stretches a small patch image into an arbitrarily sized panel;
// corners keep their scale, edges and center stretch.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [3][2]float64
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	n.scaleCenterWidth = (n.targetPositions[2][0] - n.targetPositions[1][0]) /
		float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = (n.targetPositions[2][1] - n.targetPositions[1][1]) /
		float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scaleX := [3]float64{n.Scale, n.scaleCenterWidth, n.Scale}
	scaleY := [3]float64{n.Scale, n.scaleCenterHeight, n.Scale}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX[c], scaleY[r])
			op.GeoM.Translate(n.targetPositions[c][0], n.targetPositions[r][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			src := image.Rect(n.positions[c][0], n.positions[r][1],
				n.positions[c+1][0], n.positions[r+1][1])
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// newPanel builds the menu panel patch in memory: a white frame around
// a dark body.
func newPanel() *Nine {
	img, _ := ebiten.NewImage(12, 12, ebiten.FilterDefault)
	img.Fill(colorDim)
	ebitenutil.DrawRect(img, 1, 1, 10, 10, colorPanel)
	return &Nine{
		images:    img,
		alpha:     1,
		R:         1, G: 1, B: 1,
		Scale:     1,
		positions: [4][2]int{{0, 0}, {4, 4}, {8, 8}, {12, 12}},
	}
}
