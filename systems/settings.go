package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	cfg "github.com/mottasm/rollick/config"
)

// UpdateSettings handles the developer toggles.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if GetAction(input, cfg.ActionToggleSensors).JustPressed {
		settings.ShowSensors = !settings.ShowSensors
	}
	if GetAction(input, cfg.ActionToggleTuning).JustPressed {
		settings.ShowTuning = !settings.ShowTuning
	}
}

// GetOrCreateSettings returns the singleton settings component.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Settings))
	settings := components.Settings.Get(entry)
	settings.ShowSensors = cfg.Debug.ShowSensors
	return settings
}
