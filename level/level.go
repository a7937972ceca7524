// Package level provides TMX level parsing. It builds physics obstacle
// maps from tile layers and has no dependency on ebitengine or donburi —
// pure data only.
package level

import (
	"github.com/mottasm/rollick/physics"
)

// Level holds everything parsed from a TMX level file.
type Level struct {
	Name      string
	Width     int // pixels
	Height    int // pixels
	Obstacles []*physics.Obstacle
	Spawns    []SpawnPoint
}

// SpawnPoint is an actor start location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// ObstacleMap indexes the level's obstacles into a fresh spatial map.
func (l *Level) ObstacleMap() *physics.ObstacleMap {
	m := physics.NewObstacleMap(l.Width, l.Height)
	for _, o := range l.Obstacles {
		m.Add(o)
	}
	return m
}

// Spawn returns the first spawn point, or the level center when the map
// defines none.
func (l *Level) Spawn() physics.Vec2 {
	if len(l.Spawns) == 0 {
		return physics.Vec2{X: float32(l.Width) / 2, Y: float32(l.Height) / 2}
	}
	return physics.Vec2{X: float32(l.Spawns[0].X), Y: float32(l.Spawns[0].Y)}
}
