package components

import (
	"github.com/yohamta/donburi"

	"github.com/mottasm/rollick/level"
	"github.com/mottasm/rollick/physics"
)

// StageData holds the loaded level and its obstacle map. The map is
// static; the actor borrows it every tick.
type StageData struct {
	Level *level.Level
	Map   *physics.ObstacleMap
	Spawn physics.Vec2
}

var Stage = donburi.NewComponentType[StageData]()
