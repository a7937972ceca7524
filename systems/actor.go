package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	cfg "github.com/mottasm/rollick/config"
	"github.com/mottasm/rollick/physics"
)

// UpdateActor forwards the polled input into each actor's input device and
// advances its simulation against the stage's obstacle map. The map is
// borrowed for the duration of the call only.
func UpdateActor(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		pa := components.Actor.Get(entry).Actor

		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			pa.WalkLeft()
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			pa.WalkRight()
		}
		if GetAction(input, cfg.ActionLookUp).Pressed {
			pa.LookUp()
		}
		if GetAction(input, cfg.ActionDuck).Pressed {
			pa.Duck()
		}
		if GetAction(input, cfg.ActionJump).Pressed {
			pa.Jump()
		}

		if GetAction(input, cfg.ActionResetActor).JustPressed {
			respawn(pa, stage)
		}

		pa.Update(stage.Map, physics.FixedTimestep)

		// fell out of the world
		if pa.Position().Y > float32(stage.Level.Height)+256 {
			respawn(pa, stage)
		}
	})
}

func respawn(pa *physics.Actor, stage *components.StageData) {
	if !pa.Resurrect(stage.Spawn) {
		pa.Kill()
		pa.Resurrect(stage.Spawn)
	}
	pa.SetLayer(physics.LayerDefault)
}
