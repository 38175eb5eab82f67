package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TrapEvent is published when a bubble captures an enemy.
type TrapEvent struct {
	Enemy  *donburi.Entry
	Bubble *donburi.Entry
}

// ReleaseEvent is published when a trapped enemy breaks free.
type ReleaseEvent struct {
	Enemy *donburi.Entry
	X, Y  float64
}

// PopEvent is published when the player pops a trapped enemy.
type PopEvent struct {
	Enemy  *donburi.Entry
	X, Y   float64
	Remain int // enemies left in the level
}

// PlayerHitEvent is published when a free enemy touches the player.
type PlayerHitEvent struct {
	Player *donburi.Entry
	Lives  int
}

// RelocateReason says why stuck recovery moved an enemy.
type RelocateReason int

const (
	RelocateEmbedded RelocateReason = iota
	RelocateInactive
)

func (r RelocateReason) String() string {
	if r == RelocateEmbedded {
		return "embedded"
	}
	return "inactive"
}

// RelocateEvent is published when stuck recovery moves an enemy.
type RelocateEvent struct {
	Enemy        *donburi.Entry
	Reason       RelocateReason
	FromX, FromY float64
	ToX, ToY     float64
}

// JumpEvent is published when enemy AI makes an enemy jump.
type JumpEvent struct {
	Enemy *donburi.Entry
	X, Y  float64
	Wall  bool // blocked by a wall in the direction of the goal
	Path  bool // following a waypoint rather than pursuing directly
}

// WrapEvent is published when a body falls out of the bottom of the world
// and re-enters from the top.
type WrapEvent struct {
	Entity *donburi.Entry
	X      float64
}

// LevelEvent is published when a level is cleared or loaded.
type LevelEvent struct {
	Index   int
	Name    string
	Cleared bool
}

var (
	TrapEvents      = events.NewEventType[TrapEvent]()
	ReleaseEvents   = events.NewEventType[ReleaseEvent]()
	PopEvents       = events.NewEventType[PopEvent]()
	PlayerHitEvents = events.NewEventType[PlayerHitEvent]()
	RelocateEvents  = events.NewEventType[RelocateEvent]()
	JumpEvents      = events.NewEventType[JumpEvent]()
	WrapEvents      = events.NewEventType[WrapEvent]()
	LevelEvents     = events.NewEventType[LevelEvent]()
)
