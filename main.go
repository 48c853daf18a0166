package main

import (
	"log"

	"github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/fonts"
	"github.com/automoto/doodle-anim/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	loadFonts()

	return &Game{
		scene: scenes.NewStageScene(),
	}
}

func loadFonts() {
	ttf := fonts.ReadTTF(config.UI.FontPath)
	sizes := map[fonts.FontName]float64{
		fonts.Regular: config.UI.FontSize,
		fonts.Label:   config.UI.FontSize * config.UI.LabelFontScale,
	}
	for name, size := range sizes {
		if err := fonts.LoadFontWithSize(name, ttf, size); err != nil {
			log.Printf("Warning: %v, using Go Regular", err)
			if err := fonts.LoadFontWithSize(name, goregular.TTF, size); err != nil {
				log.Fatal(err)
			}
		}
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// Close releases everything the game loaded.
func (g *Game) Close() {
	g.scene.Close()
	fonts.Close()
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame()
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
