package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

// NewPlayerAt builds the player centred on x, y and points its respawn
// point there.
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	if rp, ok := ecs.Get(w, entity, component.RespawnPointComponent.Kind()); ok {
		rp.X = x
		rp.Y = y
	}
	return entity, nil
}

// SetPlayerLives overrides the prefab's starting lives.
func SetPlayerLives(w *ecs.World, e ecs.Entity, n int) error {
	lives, ok := ecs.Get(w, e, component.LivesComponent.Kind())
	if !ok {
		return fmt.Errorf("player: set lives: entity %s has no lives", e)
	}
	lives.Count = n
	lives.Initial = n
	return nil
}
