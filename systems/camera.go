package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	"github.com/mottasm/rollick/config"
	"github.com/mottasm/rollick/tags"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	actorEntry, ok := tags.Actor.First(e.World)
	if !ok {
		return
	}
	pa := components.Actor.Get(actorEntry).Actor

	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	// look ahead of the motion
	lookAhead := 0.0
	if pa.IsFacingRight() {
		lookAhead = config.Camera.LookAheadX
	} else {
		lookAhead = -config.Camera.LookAheadX
	}
	camera.LookAheadX += (lookAhead - camera.LookAheadX) * config.Camera.FollowSmoothing

	targetX := float64(pa.Position().X) + camera.LookAheadX
	targetY := float64(pa.Position().Y)

	// keep the level filling the screen
	screenW := float64(config.Window.Width)
	screenH := float64(config.Window.Height)
	levelW := float64(stage.Level.Width)
	levelH := float64(stage.Level.Height)

	targetX = math.Max(screenW/2, math.Min(levelW-screenW/2, targetX))
	targetY = math.Max(screenH/2, math.Min(levelH-screenH/2, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
