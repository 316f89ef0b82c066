package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/save"
	"github.com/milk9111/platformer/scene"
	"go.uber.org/zap"
)

type Game struct {
	scenes  *scene.Manager
	stats   *save.Store
	watcher *prefabs.Watcher
	logger  *zap.Logger
}

func NewGame(cfg config.Config, logger *zap.Logger, stats *save.Store, watcher *prefabs.Watcher) (*Game, error) {
	g := &Game{
		scenes:  scene.NewManager(logger),
		stats:   stats,
		watcher: watcher,
		logger:  logger,
	}

	g.scenes.Register(common.SceneGame, func() (scene.Scene, error) {
		return scene.NewGameScene(scene.GameOptions{
			Level:   cfg.Level,
			Debug:   cfg.Debug,
			ViewW:   common.BaseWidth,
			ViewH:   common.BaseHeight,
			Stats:   stats,
			Watcher: watcher,
			Logger:  logger,
		})
	})
	g.scenes.Register(common.SceneGameOver, func() (scene.Scene, error) {
		return scene.NewGameOverScreen(g.summary(), logger), nil
	})
	g.scenes.Register(common.SceneWin, func() (scene.Scene, error) {
		return scene.NewWinScreen(g.summary(), logger), nil
	})

	if err := g.scenes.Load(common.SceneGame); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) summary() string {
	s := g.stats.Stats()
	return fmt.Sprintf("Runs: %d   Wins: %d   Deaths: %d   Best lives left: %d", s.Runs, s.Wins, s.Deaths, s.BestLivesLeft)
}

func (g *Game) Update() error {
	return g.scenes.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if err := g.scenes.Close(); err != nil {
		g.logger.Warn("close scene", zap.Error(err))
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Warn("close watcher", zap.Error(err))
		}
	}
}
