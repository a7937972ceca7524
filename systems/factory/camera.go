package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/archetypes"
	"github.com/mottasm/rollick/components"
)

// CreateCamera spawns the camera centered on a position.
func CreateCamera(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(entry, components.CameraData{
		Position: components.Vector{X: x, Y: y},
	})
	return entry
}
