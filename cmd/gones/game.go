package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nescore/gones/internal/console"
	"github.com/nescore/gones/internal/controller"
)

// keymap binds keyboard keys to player-1 controller buttons.
var keymap = map[ebiten.Key]controller.Button{
	ebiten.KeyZ:         controller.A,
	ebiten.KeyX:         controller.B,
	ebiten.KeyShift:     controller.Select,
	ebiten.KeyEnter:     controller.Start,
	ebiten.KeyArrowUp:    controller.Up,
	ebiten.KeyArrowDown:  controller.Down,
	ebiten.KeyArrowLeft:  controller.Left,
	ebiten.KeyArrowRight: controller.Right,
}

// game adapts a console.Console to ebiten.Game: one RunFrame per Update,
// one framebuffer blit per Draw.
type game struct {
	con *console.Console
	img *ebiten.Image
}

func newGame(con *console.Console) *game {
	return &game{
		con: con,
		img: ebiten.NewImage(256, 240),
	}
}

func (g *game) Update() error {
	for key, button := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			g.con.SetButton(1, button, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.con.SetButton(1, button, false)
		}
	}

	g.con.RunFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.con.Framebuffer()
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			px := fb[y*256+x]
			g.img.Set(x, y, color.RGBA{
				R: uint8(px >> 16),
				G: uint8(px >> 8),
				B: uint8(px),
				A: 0xFF,
			})
		}
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 256, 240
}
