package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/save"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync() //nolint:errcheck

	assets.SetAudioEnabled(cfg.Audio)

	var stats *save.Store
	if cfg.Save.Enabled {
		stats = save.Open(cfg.Save.AppName, lg)
	} else {
		stats = save.NewStore(nil, lg)
	}

	var watcher *prefabs.Watcher
	if cfg.Debug && cfg.HotReload {
		if watcher, err = prefabs.WatchDefault(); err != nil {
			lg.Warn("hot reload disabled", zap.Error(err))
			watcher = nil
		}
	}

	if cfg.Window.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(cfg, lg, stats, watcher)
	if err != nil {
		lg.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	lg.Info("starting", zap.String("level", cfg.Level), zap.Bool("debug", cfg.Debug), zap.Bool("persistent_stats", stats.Persistent()))
	if err := ebiten.RunGame(game); err != nil {
		lg.Error("run game", zap.Error(err))
	}
}
