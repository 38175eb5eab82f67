package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
)

func TestTimeScale(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		nominal  time.Duration
		maxScale float64
		want     float64
	}{
		{"on time", 16 * time.Millisecond, 16 * time.Millisecond, 3, 1},
		{"late", 32 * time.Millisecond, 16 * time.Millisecond, 3, 2},
		{"early", 8 * time.Millisecond, 16 * time.Millisecond, 3, 0.5},
		{"capped", time.Second, 16 * time.Millisecond, 3, 3},
		{"uncapped", 160 * time.Millisecond, 16 * time.Millisecond, 0, 10},
		{"no elapsed time", 0, 16 * time.Millisecond, 3, 1},
		{"no nominal", 16 * time.Millisecond, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TimeScale(tt.elapsed, tt.nominal, tt.maxScale), 1e-9)
		})
	}
}

func TestGameLoopStopsWhenAfterTickSaysSo(t *testing.T) {
	s := newTestSimulation(t, config.Defaults(), "one")
	loop := NewGameLoop(s, 1000, 3, zaptest.NewLogger(t))

	before := 0
	loop.BeforeTick = func(*Simulation) { before++ }
	loop.AfterTick = func(sim *Simulation) bool { return sim.Stats().Ticks < 3 }

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, loop.Run(ctx))
	assert.Equal(t, uint64(3), s.Stats().Ticks)
	assert.Equal(t, 3, before)
}

func TestGameLoopStopsOnContext(t *testing.T) {
	s := newTestSimulation(t, config.Defaults(), "one")
	loop := NewGameLoop(s, 1000, 3, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
}

func TestGameLoopStopsOnGameOver(t *testing.T) {
	s := newTestSimulation(t, config.Defaults(), "one")
	loop := NewGameLoop(s, 1000, 3, nil)
	loop.BeforeTick = func(sim *Simulation) {
		p, _ := sim.Player()
		components.Player.Get(p).Lives = 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, loop.Run(ctx))
	assert.Equal(t, uint64(1), s.Stats().Ticks)
}
