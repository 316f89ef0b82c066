package scene

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

var skyColor = color.RGBA{R: 0x8e, G: 0xc5, B: 0xe8, A: 0xff}

// Stats is what a game scene reports to persistent storage.
type Stats interface {
	system.StatsRecorder
	RecordRun()
}

type GameOptions struct {
	Level string
	Debug bool
	ViewW float64
	ViewH float64
	// Input defaults to the keyboard and first gamepad.
	Input system.InputSource
	Stats Stats
	// Watcher, when set, reloads the scene on prefab or level edits.
	Watcher *prefabs.Watcher
	Logger  *zap.Logger
}

// GameScene runs one level. Every load starts from a fresh world.
type GameScene struct {
	opts      GameOptions
	logger    *zap.Logger
	runID     string
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	scripts   *system.ScriptRunner
	level     entity.LoadedLevel

	next    common.SceneName
	hasNext bool
}

func NewGameScene(opts GameOptions) (*GameScene, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ViewW <= 0 || opts.ViewH <= 0 {
		opts.ViewW, opts.ViewH = common.BaseWidth, common.BaseHeight
	}

	runID := uuid.NewString()
	g := &GameScene{
		opts:    opts,
		runID:   runID,
		logger:  opts.Logger.With(zap.String("run", runID), zap.String("level", opts.Level)),
		scripts: system.NewScriptRunner(nil),
	}
	if err := g.build(); err != nil {
		return nil, err
	}
	if opts.Stats != nil {
		opts.Stats.RecordRun()
	}
	g.logger.Info("run started")
	return g, nil
}

// build loads the level from disk or the embedded copy into a new world.
func (g *GameScene) build() error {
	lvl, err := levels.Load(g.opts.Level)
	if err != nil {
		return fmt.Errorf("game scene: %w", err)
	}

	world := ecs.NewWorld()
	loaded, err := entity.BuildLevel(world, lvl)
	if err != nil {
		return fmt.Errorf("game scene: %w", err)
	}

	var stats system.StatsRecorder
	if g.opts.Stats != nil {
		stats = g.opts.Stats
	}

	physics := system.NewPhysicsSystem()
	scheduler := ecs.NewScheduler()
	scheduler.Add(ecs.PhaseInput, system.NewInputSystem(g.opts.Input))
	scheduler.Add(ecs.PhaseMovement, system.NewGroundProbeSystem(physics))
	scheduler.Add(ecs.PhaseMovement, system.NewPlayerControllerSystem())
	scheduler.Add(ecs.PhaseMovement, system.NewFacingSystem())
	scheduler.Add(ecs.PhasePhysics, physics)
	scheduler.Add(ecs.PhaseCollision, system.NewTriggerSystem(physics, g.scripts, g.logger, stats))
	scheduler.Add(ecs.PhaseRules, system.NewLivesSystem(g.logger, stats))
	scheduler.Add(ecs.PhasePresentation, system.NewAnimationLayerSystem())
	scheduler.Add(ecs.PhasePresentation, system.NewAnimationSystem())
	scheduler.Add(ecs.PhasePresentation, system.NewAudioSystem())
	scheduler.Add(ecs.PhasePresentation, system.NewCameraSystem(g.opts.ViewW, g.opts.ViewH))
	scheduler.AddRender(system.NewRenderSystem())
	scheduler.AddRender(system.NewHUDSystem())
	if g.opts.Debug {
		scheduler.AddRender(system.NewDebugOverlaySystem(physics))
	}

	g.world = world
	g.scheduler = scheduler
	g.physics = physics
	g.level = loaded
	return nil
}

func (g *GameScene) Update() error {
	g.pollWatcher()
	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		requestReload(g.world, "manual")
	}

	g.scheduler.Update(g.world)

	if name, ok := system.PendingScene(g.world); ok && !g.hasNext {
		g.next = name
		g.hasNext = true
		g.logger.Info("scene requested", zap.Stringer("scene", name))
	}
	clearRequests(g.world, component.SceneChangeRequestComponent.Kind())

	if reason, ok := pendingReload(g.world); ok {
		g.reload(reason)
	}
	return nil
}

// reload rebuilds the world in place. A failed rebuild keeps the old world
// running.
func (g *GameScene) reload(reason string) {
	old := g.world
	oldScheduler, oldPhysics, oldLevel := g.scheduler, g.physics, g.level
	g.scripts.Invalidate()
	if err := g.build(); err != nil {
		g.logger.Warn("reload failed", zap.String("reason", reason), zap.Error(err))
		g.world, g.scheduler, g.physics, g.level = old, oldScheduler, oldPhysics, oldLevel
		clearRequests(g.world, component.ReloadRequestComponent.Kind())
		return
	}
	g.hasNext = false
	g.logger.Info("scene reloaded", zap.String("reason", reason))
}

func (g *GameScene) pollWatcher() {
	if g.opts.Watcher == nil {
		return
	}
	for _, change := range g.opts.Watcher.Drain() {
		switch change.Kind {
		case prefabs.ChangeScript:
			g.scripts.Invalidate()
			g.logger.Debug("script changed", zap.String("path", change.Path))
		case prefabs.ChangePrefab:
			requestReload(g.world, change.Path)
		}
	}
}

func (g *GameScene) NextScene() (common.SceneName, bool) {
	return g.next, g.hasNext
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.scheduler.Draw(g.world, screen)
}

func (g *GameScene) Close() error {
	ecs.Clear(g.world)
	return nil
}

func (g *GameScene) World() *ecs.World {
	return g.world
}

func (g *GameScene) Player() ecs.Entity {
	return g.level.Player
}

func (g *GameScene) RunID() string {
	return g.runID
}

func requestReload(w *ecs.World, reason string) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Reason: reason})
}

func pendingReload(w *ecs.World) (string, bool) {
	e, ok := ecs.First(w, component.ReloadRequestComponent.Kind())
	if !ok {
		return "", false
	}
	req, _ := ecs.Get(w, e, component.ReloadRequestComponent.Kind())
	return req.Reason, true
}

func clearRequests[T any](w *ecs.World, kind component.ComponentKind[T]) {
	ecs.ForEach(w, kind, func(e ecs.Entity, _ *T) {
		ecs.DestroyEntity(w, e)
	})
}
