package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/components"
)

// UpdateObjects copies every resolved body into its resolv object so the
// overlap checks in UpdateCaptures see this tick's positions.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Physics) {
			return
		}
		components.Object.Get(e).SyncFrom(&components.Physics.Get(e).Body)
	})
}
