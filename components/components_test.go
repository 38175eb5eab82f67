package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/navigation"
	"github.com/automoto/bubblebound/shared/tilemap"
)

func TestStateEnter(t *testing.T) {
	s := StateData{CurrentState: config.StatePatrol, StateTimer: 12}

	s.Enter(config.StatePatrol)
	assert.Equal(t, 12.0, s.StateTimer, "re-entering keeps the timer")

	s.Enter(config.StateTrapped)
	assert.Equal(t, config.StateTrapped, s.CurrentState)
	assert.Equal(t, config.StatePatrol, s.PreviousState)
	assert.Zero(t, s.StateTimer)
}

func TestPathClearInvalidatesSearch(t *testing.T) {
	svc := navigation.NewService(navigation.NewGrid(tilemap.MustParse("....\n....\n####\n", 40)), 100)
	future := svc.Request(20, 20, 140, 60)

	ran := false
	future.Then(func([]dmath.Vec2) { ran = true })

	p := PathData{
		Waypoints: []dmath.Vec2{{X: 1}, {X: 2}},
		Index:     1,
		Pending:   future,
		Age:       5,
	}
	assert.True(t, p.Active())

	p.Clear()
	svc.Step()

	assert.False(t, p.Active())
	assert.Nil(t, p.Pending)
	assert.Equal(t, uint64(1), p.Generation)
	assert.Zero(t, p.Age)
	assert.False(t, ran, "cancelled search never calls back")
}

func TestStuckReset(t *testing.T) {
	s := StuckData{WindowTimer: 30, StuckTimer: 120, Relocations: 2}
	s.Reset(5, 6)

	assert.Equal(t, StuckData{AnchorX: 5, AnchorY: 6, Relocations: 2}, s)
}

func TestRelocateReasonString(t *testing.T) {
	assert.Equal(t, "embedded", RelocateEmbedded.String())
	assert.Equal(t, "inactive", RelocateInactive.String())
}
