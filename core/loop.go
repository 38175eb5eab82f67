package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// GameLoop ticks a Simulation at a fixed cadence. The time scale handed to
// each tick is the measured interval relative to the nominal one, so a late
// tick catches up instead of slowing the game down.
type GameLoop struct {
	sim          *Simulation
	tickRate     int
	maxTimeScale float64
	logger       *zap.Logger

	// BeforeTick runs on the loop goroutine right before every tick, for
	// example to feed player input.
	BeforeTick func(*Simulation)
	// AfterTick runs after every tick. Returning false stops the loop.
	AfterTick func(*Simulation) bool
}

func NewGameLoop(sim *Simulation, tickRate int, maxTimeScale float64, logger *zap.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameLoop{
		sim:          sim,
		tickRate:     tickRate,
		maxTimeScale: maxTimeScale,
		logger:       logger,
	}
}

// Run ticks until ctx is done, the campaign is finished, the player is out
// of lives or AfterTick asks to stop.
func (g *GameLoop) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(g.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.logger.Info("game loop started", zap.Int("tick_rate", g.tickRate))
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case now := <-ticker.C:
			ts := TimeScale(now.Sub(last), interval, g.maxTimeScale)
			last = now
			if !g.tick(ts) {
				g.logger.Info("game loop finished",
					zap.Bool("campaign_complete", g.sim.Finished()),
					zap.Bool("game_over", g.sim.GameOver()))
				return nil
			}
		}
	}
}

func (g *GameLoop) tick(ts float64) bool {
	if g.BeforeTick != nil {
		g.BeforeTick(g.sim)
	}
	g.sim.Tick(ts)
	if g.AfterTick != nil && !g.AfterTick(g.sim) {
		return false
	}
	return !g.sim.Finished() && !g.sim.GameOver()
}

// TimeScale converts an elapsed interval into a multiplier of the nominal
// interval, capped at maxScale when maxScale is positive.
func TimeScale(elapsed, nominal time.Duration, maxScale float64) float64 {
	if nominal <= 0 || elapsed <= 0 {
		return 1
	}
	ts := float64(elapsed) / float64(nominal)
	if maxScale > 0 && ts > maxScale {
		ts = maxScale
	}
	return ts
}
