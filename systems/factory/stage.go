package factory

import (
	"io/fs"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/archetypes"
	"github.com/mottasm/rollick/components"
	"github.com/mottasm/rollick/level"
)

// CreateStage loads a level file and spawns the stage entity holding its
// obstacle map.
func CreateStage(e *ecs.ECS, fsys fs.FS, tmxPath string) (*donburi.Entry, error) {
	lvl, err := level.Load(fsys, tmxPath)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Stage.Spawn(e)
	components.Stage.SetValue(entry, components.StageData{
		Level: lvl,
		Map:   lvl.ObstacleMap(),
		Spawn: lvl.Spawn(),
	})
	return entry, nil
}
