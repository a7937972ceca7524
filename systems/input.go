package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	cfg "github.com/mottasm/rollick/config"
)

// UpdateInput polls the keyboard and updates the input component. Must run
// before UpdateActor in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetAction returns the temporal state of an action.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[action],
		JustPressed:  input.Current[action] && !input.Previous[action],
		JustReleased: !input.Current[action] && input.Previous[action],
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}
