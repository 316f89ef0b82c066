package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// LoadedLevel holds the entities BuildLevel created that scenes refer to.
type LoadedLevel struct {
	Player ecs.Entity
	Camera ecs.Entity
	HUD    ecs.Entity
}

// BuildLevel populates the world from a validated level: bounds, merged
// ground runs, trigger volumes, the player at the spawn tile, the camera
// and the HUD.
func BuildLevel(w *ecs.World, lvl *levels.Level) (LoadedLevel, error) {
	var out LoadedLevel
	if err := lvl.Validate(); err != nil {
		return out, fmt.Errorf("build level %q: %w", lvl.Name, err)
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  float64(lvl.Width()) * common.TileSize,
		Height: float64(lvl.Height()) * common.TileSize,
	}); err != nil {
		return out, fmt.Errorf("build level %q: bounds: %w", lvl.Name, err)
	}

	for _, run := range lvl.SolidRuns() {
		if _, err := newGround(w, run); err != nil {
			return out, fmt.Errorf("build level %q: ground at %d,%d: %w", lvl.Name, run.X, run.Y, err)
		}
	}

	for i, placed := range lvl.Entities {
		if _, err := newTrigger(w, placed); err != nil {
			return out, fmt.Errorf("build level %q: entity %d: %w", lvl.Name, i, err)
		}
	}

	sx, sy, err := lvl.Spawn()
	if err != nil {
		return out, fmt.Errorf("build level %q: %w", lvl.Name, err)
	}
	px, py := SpawnPosition(sx, sy)
	if out.Player, err = NewPlayerAt(w, px, py); err != nil {
		return out, fmt.Errorf("build level %q: player: %w", lvl.Name, err)
	}
	if lvl.Lives > 0 {
		if err := SetPlayerLives(w, out.Player, lvl.Lives); err != nil {
			return out, fmt.Errorf("build level %q: %w", lvl.Name, err)
		}
	}

	if out.Camera, err = NewCameraAt(w, px, py); err != nil {
		return out, fmt.Errorf("build level %q: camera: %w", lvl.Name, err)
	}
	if out.HUD, err = BuildEntity(w, "hud.yaml"); err != nil {
		return out, fmt.Errorf("build level %q: hud: %w", lvl.Name, err)
	}

	return out, nil
}

// SpawnPosition returns the player's body centre standing on the bottom
// edge of the spawn tile.
func SpawnPosition(tx, ty int) (float64, float64) {
	x := (float64(tx) + 0.5) * common.TileSize
	y := float64(ty+1)*common.TileSize - playerHalfHeight
	return x, y
}

// playerHalfHeight matches physics_body.height in player.yaml.
const playerHalfHeight = 20.0

func newGround(w *ecs.World, run levels.Run) (ecs.Entity, error) {
	e, err := BuildEntity(w, "ground.yaml")
	if err != nil {
		return 0, err
	}
	x := float64(run.X) * common.TileSize
	y := float64(run.Y) * common.TileSize
	width := float64(run.Len) * common.TileSize
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, err
	}
	if solid, ok := ecs.Get(w, e, component.SolidComponent.Kind()); ok {
		solid.Width = width
		solid.Height = common.TileSize
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Width = width
		body.Height = common.TileSize
	}
	return e, nil
}

func newTrigger(w *ecs.World, placed levels.Entity) (ecs.Entity, error) {
	kind, err := component.ParseTriggerKind(placed.Type)
	if err != nil {
		return 0, err
	}
	e, err := BuildEntity(w, kind.String()+".yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, float64(placed.X)*common.TileSize, float64(placed.Y)*common.TileSize, 0); err != nil {
		return 0, err
	}
	trigger, ok := ecs.Get(w, e, component.TriggerComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("prefab %s.yaml has no trigger", kind)
	}
	if trigger.Kind != kind {
		return 0, fmt.Errorf("prefab %s.yaml declares trigger %s", kind, trigger.Kind)
	}
	tw, th := placed.Size()
	trigger.Width = float64(tw) * common.TileSize
	trigger.Height = float64(th) * common.TileSize
	if placed.Script != "" {
		trigger.Script = placed.Script
	}
	return e, nil
}
