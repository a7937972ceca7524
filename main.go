package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mottasm/rollick/config"
	"github.com/mottasm/rollick/fonts"
	"github.com/mottasm/rollick/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 12)
	fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, 10)
	fonts.LoadFontWithSize(fonts.HUDTitle, goregular.TTF, 18)

	g := &Game{}
	g.scene = scenes.NewWorldScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func main() {
	ebiten.SetWindowSize(config.Window.Width*config.Window.Scale, config.Window.Height*config.Window.Scale)
	ebiten.SetWindowTitle(config.Window.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
