package main

import (
	"os"

	"github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
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

func main() {
	config.ParseFlags()
	cfgErr := config.Load(config.ConfigPath())

	logger.Init(config.Logging.Level, config.Logging.LogFile)
	defer logger.Sync()
	if cfgErr != nil {
		logger.Log.Fatal("invalid configuration", zap.Error(cfgErr))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	if config.C.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	scene := scenes.NewPlatformerScene(os.DirFS(config.Assets.Dir), config.Assets.Dir)
	defer scene.Close()

	logger.Log.Info("starting",
		zap.String("title", config.C.Title),
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.String("assets", config.Assets.Dir),
	)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.Log.Error("game exited", zap.Error(err))
	}
}
