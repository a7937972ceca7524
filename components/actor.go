package components

import (
	"github.com/yohamta/donburi"

	"github.com/mottasm/rollick/physics"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// ActorData wraps the physics actor driven by the simulation.
type ActorData struct {
	Actor *physics.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
