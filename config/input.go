package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionLookUp
	ActionDuck
	ActionJump
	ActionToggleSensors
	ActionToggleTuning
	ActionResetActor
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionLookUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionDuck: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
			},
			ActionToggleSensors: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleTuning: {
				Keys: []ebiten.Key{ebiten.KeyTab},
			},
			ActionResetActor: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
		},
	}
}
