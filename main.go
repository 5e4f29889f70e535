package main

import (
	"os"

	"github.com/automoto/ratchase/components"
	"github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/fonts"
	"github.com/automoto/ratchase/scenes"
	"github.com/automoto/ratchase/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(store components.ScoreStore) *Game {
	return &Game{
		scene: scenes.NewChaseScene(store, config.World.Seed),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Warn("Some environment overrides were ignored", "err", err)
	}
	if level, err := log.ParseLevel(config.C.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping info", "level", config.C.LogLevel)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("Could not load fonts", "err", err)
	}

	// Persistence is optional; the game runs without a record if it fails.
	var store components.ScoreStore
	if m, err := systems.OpenScoreStore(config.C.AppName); err != nil {
		log.Warn("Could not initialize persistence", "err", err)
	} else {
		store = m
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Rat Chase")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(store)); err != nil {
		log.Error("Game stopped", "err", err)
		os.Exit(1)
	}
}
