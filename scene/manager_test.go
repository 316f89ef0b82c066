package scene

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

type mockScene struct {
	updates int
	draws   int
	closed  bool
	next    common.SceneName
	err     error
}

func (m *mockScene) Update() error {
	m.updates++
	return m.err
}

func (m *mockScene) Draw(*ebiten.Image) { m.draws++ }

func (m *mockScene) Close() error {
	m.closed = true
	return nil
}

func (m *mockScene) NextScene() (common.SceneName, bool) {
	return m.next, m.next != common.SceneNone
}

func TestManagerLoad(t *testing.T) {
	m := NewManager(nil)
	built := 0
	m.Register(common.SceneGame, func() (Scene, error) {
		built++
		return &mockScene{}, nil
	})

	if err := m.Load(common.SceneGame); err != nil {
		t.Fatalf("load: %v", err)
	}
	first := m.Current().(*mockScene)
	if err := m.Load(common.SceneGame); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if built != 2 || m.Current() == Scene(first) {
		t.Fatal("each load should build a fresh scene")
	}
	if !first.closed {
		t.Fatal("previous scene was not closed")
	}
	if m.Name() != common.SceneGame {
		t.Fatalf("name = %s", m.Name())
	}
}

func TestManagerLoadErrors(t *testing.T) {
	m := NewManager(nil)
	m.Register(common.SceneWin, func() (Scene, error) { return nil, errors.New("boom") })

	cases := []struct {
		name  string
		scene common.SceneName
		want  error
	}{
		{"none", common.SceneNone, common.ErrUnknownScene},
		{"unregistered", common.SceneGameOver, ErrNoFactory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := m.Load(tc.scene); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("factory failure keeps current", func(t *testing.T) {
		cur := &mockScene{}
		m.Register(common.SceneGame, func() (Scene, error) { return cur, nil })
		if err := m.Load(common.SceneGame); err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := m.Load(common.SceneWin); err == nil {
			t.Fatal("expected factory error")
		}
		if m.Current() != Scene(cur) || cur.closed {
			t.Fatal("failed load replaced the active scene")
		}
	})
}

func TestManagerUpdateSwitchesAfterTick(t *testing.T) {
	m := NewManager(nil)
	game := &mockScene{}
	over := &mockScene{}
	m.Register(common.SceneGame, func() (Scene, error) { return game, nil })
	m.Register(common.SceneGameOver, func() (Scene, error) { return over, nil })
	if err := m.Load(common.SceneGame); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Current() != Scene(game) {
		t.Fatal("switched without a request")
	}

	game.next = common.SceneGameOver
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Current() != Scene(over) || game.updates != 2 || !game.closed {
		t.Fatalf("expected switch to game over after the tick")
	}
}

func TestManagerUpdatePassesTermination(t *testing.T) {
	m := NewManager(nil)
	m.Register(common.SceneGameOver, func() (Scene, error) { return &mockScene{err: ebiten.Termination}, nil })
	if err := m.Load(common.SceneGameOver); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := m.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want termination", err)
	}
}

func TestManagerWithoutScene(t *testing.T) {
	m := NewManager(nil)
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	m.Draw(nil)
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
