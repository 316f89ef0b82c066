package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

const scriptTimeout = time.Second

func main() {
	logLevel := flag.String("log-level", "info", "log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: levelcheck [flags] [level ...]\n\nWith no levels, every embedded level is checked.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := logger.DevelopmentConfig()
	cfg.Level = *logLevel
	lg, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer lg.Sync() //nolint:errcheck

	names := flag.Args()
	if len(names) == 0 {
		if names, err = levels.Names(); err != nil {
			lg.Fatal("list levels", zap.Error(err))
		}
	}

	failed := 0
	runner := system.NewScriptRunner(nil)
	for _, name := range names {
		if err := checkLevel(runner, name); err != nil {
			failed++
			lg.Error("level invalid", zap.String("level", name), zap.Error(err))
			continue
		}
		lg.Info("level ok", zap.String("level", name))
	}
	if failed > 0 {
		lg.Error("check failed", zap.Int("failed", failed), zap.Int("checked", len(names)))
		os.Exit(1)
	}
}

// checkLevel validates the level file, the prefab behind every placed
// trigger and each script trigger's output.
func checkLevel(runner *system.ScriptRunner, name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	if err := lvl.Validate(); err != nil {
		return err
	}

	sx, sy, err := lvl.Spawn()
	if err != nil {
		return err
	}
	px, py := entity.SpawnPosition(sx, sy)
	lives := lvl.Lives
	if lives <= 0 {
		lives = 3
	}

	var errs []error
	checkedPrefabs := map[component.TriggerKind]bool{}
	for i, placed := range lvl.Entities {
		kind, err := component.ParseTriggerKind(placed.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", i, err))
			continue
		}
		if !checkedPrefabs[kind] {
			checkedPrefabs[kind] = true
			if err := checkTriggerPrefab(kind); err != nil {
				errs = append(errs, err)
			}
		}
		if kind != component.TriggerScript {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
		_, err = runner.Run(ctx, placed.Script, system.ScriptInput{Lives: lives, RespawnX: px, RespawnY: py})
		cancel()
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func checkTriggerPrefab(kind component.TriggerKind) error {
	path := kind.String() + ".yaml"
	spec, err := prefabs.LoadEntityBuildSpec(path)
	if err != nil {
		return fmt.Errorf("prefab %s: %w", path, err)
	}
	raw, ok := spec.Components["trigger"]
	if !ok {
		return fmt.Errorf("prefab %s: no trigger component", path)
	}
	ts, err := prefabs.DecodeComponentSpec[prefabs.TriggerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("prefab %s: %w", path, err)
	}
	got, err := component.ParseTriggerKind(strings.TrimSpace(ts.Kind))
	if err != nil {
		return fmt.Errorf("prefab %s: %w", path, err)
	}
	if got != kind {
		return fmt.Errorf("prefab %s: declares %s", path, got)
	}
	if _, ok := spec.Components["transform"]; !ok {
		return fmt.Errorf("prefab %s: no transform component", path)
	}
	return nil
}
