package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	cfg "github.com/mottasm/rollick/config"
	"github.com/mottasm/rollick/tags"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{components: cs}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
