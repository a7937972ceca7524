package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mottasm/rollick/assets"
	"github.com/mottasm/rollick/components"
	cfg "github.com/mottasm/rollick/config"
	"github.com/mottasm/rollick/physics"
	"github.com/mottasm/rollick/quest"
	"github.com/mottasm/rollick/systems"
	"github.com/mottasm/rollick/systems/factory"
	"github.com/mottasm/rollick/ui"
)

// SceneChanger switches the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs the physics playground: one actor on the quest's first
// level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	tuning    *ui.TuningUI
	fade      *gween.Tween
	fadeAlpha float32
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	settings := systems.GetOrCreateSettings(ws.ecs)
	if settings.ShowTuning && ws.tuning != nil {
		ws.tuning.Update()
	}

	if ws.fade != nil {
		alpha, done := ws.fade.Update(float32(physics.FixedTimestep))
		ws.fadeAlpha = alpha
		if done {
			ws.fade = nil
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear the screen to prevent flashes from the OS window
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	settings := systems.GetOrCreateSettings(ws.ecs)
	if settings.ShowTuning && ws.tuning != nil {
		ws.tuning.Draw(screen)
	}

	if ws.fadeAlpha > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
			color.RGBA{0, 0, 0, uint8(ws.fadeAlpha * 255)}, false)
	}
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateActor)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawActor)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	q, err := quest.Load(assets.FS, cfg.Stage.Quest)
	if err != nil {
		log.Fatalf("load quest: %v", err)
	}
	if q.LevelCount() == 0 {
		log.Fatalf("quest %s has no levels", q.File)
	}

	stageEntry, err := factory.CreateStage(e, assets.FS, q.Levels[0])
	if err != nil {
		log.Fatalf("load level: %v", err)
	}
	stage := components.Stage.Get(stageEntry)

	factory.CreateCamera(e, float64(stage.Spawn.X), float64(stage.Spawn.Y))
	actorEntry := factory.CreateActor(e, stage.Spawn)
	pa := components.Actor.Get(actorEntry).Actor

	// restore tuned parameters and keep saving edits
	if err := systems.InitPersistence(); err == nil {
		if tuning, err := systems.LoadTuning(); err == nil {
			systems.ApplyTuning(pa, tuning)
		}
	}
	ws.tuning = ui.NewTuningUI(pa, func() {
		systems.SaveTuning(pa)
	})

	ws.fade = gween.New(1, 0, 1.5, ease.OutQuad)
	ws.fadeAlpha = 1
}
