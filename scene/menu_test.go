package scene

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMenuPlayAgain(t *testing.T) {
	m := &MenuScene{kind: common.SceneGameOver, logger: zap.NewNop()}
	if _, ok := m.NextScene(); ok {
		t.Fatal("no transition before a click")
	}
	m.PlayAgain()
	next, ok := m.NextScene()
	if !ok || next != common.SceneGame {
		t.Fatalf("next = %s, %v; want Game", next, ok)
	}
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestMenuQuit(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := &MenuScene{kind: common.SceneWin, logger: zap.New(core)}

	if err := m.Update(); err != nil {
		t.Fatalf("update before quit: %v", err)
	}
	m.Quit()
	if err := m.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want termination", err)
	}
	if logs.FilterMessage("quit").Len() != 1 {
		t.Fatalf("expected one quit log, got %v", logs.All())
	}
}

func TestMenuScreensThroughManager(t *testing.T) {
	m := NewManager(nil)
	m.Register(common.SceneGameOver, func() (Scene, error) { return NewGameOverScreen("Deaths: 3", nil), nil })
	m.Register(common.SceneWin, func() (Scene, error) { return NewWinScreen("", nil), nil })
	games := 0
	m.Register(common.SceneGame, func() (Scene, error) {
		games++
		return &mockScene{}, nil
	})

	for _, name := range []common.SceneName{common.SceneGameOver, common.SceneWin} {
		if err := m.Load(name); err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		menu := m.Current().(*MenuScene)
		if menu.Kind() != name {
			t.Fatalf("kind = %s, want %s", menu.Kind(), name)
		}
		if menu.ui == nil {
			t.Fatal("menu built without a UI")
		}
		// ebitenui polls the cursor; there is no game loop here.
		menu.ui = nil
		menu.PlayAgain()
		if err := m.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
		if m.Name() != common.SceneGame {
			t.Fatalf("play again from %s loaded %s", name, m.Name())
		}
	}
	if games != 2 {
		t.Fatalf("built %d game scenes, want 2", games)
	}
}
