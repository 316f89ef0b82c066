package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestLivesSystem(t *testing.T) {
	tests := []struct {
		name         string
		lives        int
		wantGameOver bool
	}{
		{name: "lives left", lives: 2, wantGameOver: false},
		{name: "exactly zero", lives: 0, wantGameOver: true},
		{name: "negative", lives: -3, wantGameOver: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := ecs.CreateEntity(w)
			mustAdd(t, w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
			mustAdd(t, w, player, component.LivesComponent.Kind(), &component.Lives{Count: tc.lives})

			NewLivesSystem(nil, nil).Update(w)

			_, pending := PendingScene(w)
			if pending != tc.wantGameOver {
				t.Fatalf("game over requested = %v, want %v", pending, tc.wantGameOver)
			}
			if alive := ecs.IsAlive(w, player); alive == tc.wantGameOver {
				t.Fatalf("player alive = %v", alive)
			}
		})
	}
}

func TestLivesText(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	lives := &component.Lives{Count: 3}
	mustAdd(t, w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, player, component.LivesComponent.Kind(), lives)

	if s, ok := LivesText(w, "player"); !ok || s != "Lives: 3" {
		t.Fatalf("label = %q %v, want \"Lives: 3\"", s, ok)
	}

	lives.Count = 0
	if _, ok := LivesText(w, "player"); ok {
		t.Fatal("label should be hidden without lives")
	}
}
