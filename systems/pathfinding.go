package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdatePathfinding advances queued path searches by one tick's budget.
// Futures that finish run their callbacks here, before any AI reads paths.
func UpdatePathfinding(e *ecs.ECS) {
	level := getLevel(e)
	if level == nil || level.Nav == nil {
		return
	}
	level.Nav.Step()
}
