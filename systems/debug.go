package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	"github.com/mottasm/rollick/physics"
)

// DrawDebug renders the obstacle proxies, the seven sensors and the angle
// probe points — the diagnostic surface of the physics core.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowSensors {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	// obstacles: grey solid, cyan cloud, tinted when layered
	stage.Map.Each(func(o *physics.Obstacle) {
		x, y, w, h := o.Bounds()
		c := color.RGBA{100, 100, 100, 255}
		if !o.IsSolid() {
			c = color.RGBA{0, 200, 200, 255}
		}
		switch o.Layer() {
		case physics.LayerGreen:
			c = color.RGBA{0, 160, 60, 255}
		case physics.LayerYellow:
			c = color.RGBA{180, 160, 0, 255}
		}
		vector.StrokeRect(screen,
			float32(float64(x)+camX), float32(float64(y)+camY),
			float32(w), float32(h), 1, c, false)
	})

	actorEntry, ok := components.Actor.First(e.World)
	if !ok {
		return
	}
	pa := components.Actor.Get(actorEntry).Actor

	// sensor segments in their debug colors
	pa.Sensors(func(s *physics.Sensor, x1, y1, x2, y2 int) {
		if !s.Enabled() {
			return
		}
		vector.StrokeLine(screen,
			float32(float64(x1)+camX), float32(float64(y1)+camY),
			float32(float64(x2)+camX), float32(float64(y2)+camY),
			1, s.Color(), false)
	})

	// angle probe points
	for _, p := range pa.AngleSensors() {
		vector.DrawFilledCircle(screen,
			float32(float64(p.X)+camX), float32(float64(p.Y)+camY),
			2, color.RGBA{255, 255, 255, 255}, false)
	}

	// bounding box
	w, h, center := pa.BoundingBox()
	vector.StrokeRect(screen,
		float32(float64(center.X)+camX-float64(w)/2),
		float32(float64(center.Y)+camY-float64(h)/2),
		float32(w), float32(h), 1, color.RGBA{255, 255, 255, 80}, false)
}

// cameraOffset converts world coordinates into screen space.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}
