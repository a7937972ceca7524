package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/components"
	cfg "github.com/mottasm/rollick/config"
	"github.com/mottasm/rollick/fonts"
	"github.com/mottasm/rollick/physics"
)

// DrawActor renders the actor as a filled box with a facing marker; sprite
// playback is out of scope, the animation state shows on the HUD.
func DrawActor(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	actorEntry, ok := components.Actor.First(e.World)
	if !ok {
		return
	}
	pa := components.Actor.Get(actorEntry).Actor

	w, h, center := pa.BoundingBox()
	x := float32(float64(center.X) + camX - float64(w)/2)
	y := float32(float64(center.Y) + camY - float64(h)/2)

	body := color.RGBA{64, 96, 255, 255}
	if pa.State() == physics.Rolling || pa.State() == physics.Jumping {
		body = color.RGBA{255, 160, 32, 255}
	}
	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), body, false)

	// facing marker
	mx := float32(float64(center.X) + camX)
	if pa.IsFacingRight() {
		mx += float32(w) / 2
	} else {
		mx -= float32(w) / 2
	}
	my := float32(float64(center.Y) + camY)
	vector.DrawFilledCircle(screen, mx, my, 2, color.RGBA{255, 255, 255, 255}, false)
}

// DrawHUD prints the simulation readout.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}

	actorEntry, ok := components.Actor.First(e.World)
	if !ok {
		return
	}
	pa := components.Actor.Get(actorEntry).Actor

	face := fonts.HUD.Get()
	white := color.RGBA{255, 255, 255, 255}

	lines := []string{
		fmt.Sprintf("state %s  mode %s  angle %d", pa.State(), pa.Movmode(), pa.Angle()),
		fmt.Sprintf("gsp %7.1f  xsp %7.1f  ysp %7.1f", pa.Gsp(), pa.Xsp(), pa.Ysp()),
		fmt.Sprintf("midair %v  ceiling %v  wall %v", pa.IsMidair(), pa.IsTouchingCeiling(), pa.IsInsideWall()),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, white)
	}

	text.Draw(screen, "arrows move  space jump  F1 sensors  Tab tuning  R respawn",
		fonts.HUDSmall.Get(), 8, cfg.Window.Height-8, color.RGBA{180, 180, 180, 255})
}
