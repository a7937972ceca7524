package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/archetypes"
	"github.com/mottasm/rollick/components"
	"github.com/mottasm/rollick/physics"
)

// CreateActor spawns the physics actor at a position.
func CreateActor(e *ecs.ECS, position physics.Vec2) *donburi.Entry {
	entry := archetypes.Actor.Spawn(e)
	components.Actor.SetValue(entry, components.ActorData{
		Actor: physics.New(position),
	})
	return entry
}
