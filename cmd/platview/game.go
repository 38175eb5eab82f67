package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/core"
)

var errQuit = errors.New("quit")

type Game struct {
	sim      *core.Simulation
	progress *Progress
	logger   *zap.Logger
	paused   bool
	debug    bool
}

func newGame(sim *core.Simulation, progress *Progress, logger *zap.Logger) *Game {
	return &Game{sim: sim, progress: progress, logger: logger}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if g.paused || g.sim.Finished() || g.sim.GameOver() {
		return nil
	}

	level := g.sim.LevelIndex()
	g.sim.SetInput(readKeyboard())
	// ebiten runs Update at a fixed TPS, so every tick is nominal.
	g.sim.Tick(1)

	if g.sim.LevelIndex() != level {
		g.progress.Reached(g.sim.LevelIndex())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w := g.sim.World()

	drawTiles(w, screen)
	drawEntities(w, screen)
	if g.debug {
		drawDebug(w, screen)
	}
	drawHUD(g.sim, screen, g.paused)
}

// Layout sizes the screen to the current level so one world unit is one
// pixel.
func (g *Game) Layout(_, _ int) (int, int) {
	entry, ok := components.Level.First(g.sim.World())
	if !ok {
		return 800, 600
	}
	m := components.Level.Get(entry).Current.Map
	return int(m.WorldWidth()), int(m.WorldHeight())
}
