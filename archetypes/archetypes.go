package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/components"
	cfg "github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.State,
		components.Path,
		components.Stuck,
	)
	Bubble = newArchetype(
		tags.Bubble,
		components.Bubble,
		components.Object,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
	)
	Runtime = newArchetype(
		components.Runtime,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
