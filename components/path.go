package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/bubblebound/navigation"
)

// PathData is a chaser's advisory route to its target.
type PathData struct {
	Waypoints []dmath.Vec2
	Index     int

	// Generation increases every time the route is replaced or dropped. A
	// search result carrying an older generation is stale and discarded.
	Generation  uint64
	Pending     *navigation.Future
	RepathTimer float64 // ticks until the next request
	Age         float64 // ticks since Waypoints were delivered
}

// Active reports whether there is a waypoint left to follow.
func (p *PathData) Active() bool {
	return p.Index < len(p.Waypoints)
}

// Clear drops the route and invalidates any in-flight search.
func (p *PathData) Clear() {
	p.Waypoints = nil
	p.Index = 0
	p.Age = 0
	p.Generation++
	if p.Pending != nil {
		p.Pending.Cancel()
		p.Pending = nil
	}
}

var Path = donburi.NewComponentType[PathData]()
