package config

// WindowConfig contains window and viewport configuration values
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	Title  string
}

// CameraConfig contains camera follow behavior
type CameraConfig struct {
	FollowSmoothing float64
	LookAheadX      float64
}

// DebugConfig contains developer toggles
type DebugConfig struct {
	ShowSensors bool // start with the sensor overlay on
	ShowHUD     bool
}

// StageConfig points at the content shipped with the playground
type StageConfig struct {
	Quest string
}

var Window WindowConfig
var Camera CameraConfig
var Debug DebugConfig
var Stage StageConfig

func init() {
	Window = WindowConfig{
		Width:  640,
		Height: 360,
		Scale:  2,
		Title:  "rollick playground",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		LookAheadX:      48,
	}

	Debug = DebugConfig{
		ShowSensors: true,
		ShowHUD:     true,
	}

	Stage = StageConfig{
		Quest: "quests/playground.qst",
	}
}
