package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the playground toggles.
type SettingsData struct {
	ShowSensors bool
	ShowTuning  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
