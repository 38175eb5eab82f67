package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/core"
	"github.com/automoto/bubblebound/fonts"
)

const hudMargin = 10

var (
	hudText    = color.RGBA{240, 240, 240, 255}
	hudOverlay = color.RGBA{0, 0, 0, 160}
)

func drawHUD(sim *core.Simulation, screen *ebiten.Image, paused bool) {
	w := sim.World()
	regular := fonts.Regular.Get()

	name := ""
	if entry, ok := components.Level.First(w); ok {
		name = components.Level.Get(entry).Current.Name
	}
	status := fmt.Sprintf("Level %d %s   Lives %d", sim.LevelIndex()+1, name, sim.Lives())
	text.Draw(screen, status, regular, hudMargin, hudMargin+12, hudText)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	switch {
	case sim.Finished():
		drawBanner(screen, "Campaign complete", width, height)
	case sim.GameOver():
		drawBanner(screen, "Game over", width, height)
	case paused:
		drawBanner(screen, "Paused", width, height)
	default:
		if entry, ok := components.Level.First(w); ok {
			lc := components.LevelComplete.Get(entry)
			if lc.IsComplete {
				drawBanner(screen, "Level clear", width, height)
			}
		}
	}
}

func drawBanner(screen *ebiten.Image, msg string, width, height float64) {
	vector.FillRect(screen, 0, float32(height/2-40), float32(width), 80, hudOverlay, false)
	title := fonts.Title.Get()
	x := centerTextX(msg, title, width)
	text.Draw(screen, msg, title, x, int(height/2)+10, hudText)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
