package main

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
)

// logEvents returns an observer that logs every simulation event.
func logEvents(logger *zap.Logger) func(donburi.World) {
	return func(w donburi.World) {
		components.TrapEvents.Subscribe(w, func(_ donburi.World, ev components.TrapEvent) {
			logger.Debug("enemy trapped")
		})
		components.ReleaseEvents.Subscribe(w, func(_ donburi.World, ev components.ReleaseEvent) {
			logger.Debug("enemy escaped", zap.Float64("x", ev.X), zap.Float64("y", ev.Y))
		})
		components.PopEvents.Subscribe(w, func(_ donburi.World, ev components.PopEvent) {
			logger.Info("enemy popped", zap.Int("remaining", ev.Remain))
		})
		components.PlayerHitEvents.Subscribe(w, func(_ donburi.World, ev components.PlayerHitEvent) {
			logger.Info("player hit", zap.Int("lives", ev.Lives))
		})
		components.JumpEvents.Subscribe(w, func(_ donburi.World, ev components.JumpEvent) {
			logger.Debug("enemy jump", zap.Bool("wall", ev.Wall), zap.Bool("path", ev.Path))
		})
		components.LevelEvents.Subscribe(w, func(_ donburi.World, ev components.LevelEvent) {
			logger.Info("level event", zap.Int("level", ev.Index), zap.String("name", ev.Name), zap.Bool("cleared", ev.Cleared))
		})
	}
}
