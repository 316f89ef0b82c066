package save

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "platformer_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	return m
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	m := openTestManager(t)

	s := NewStore(m, zap.NewNop())
	if !s.Persistent() {
		t.Fatal("store with a manager should persist")
	}
	s.RecordRun()
	s.RecordDeath()
	s.RecordDeath()
	s.RecordWin(2)
	s.RecordWin(1)
	s.RecordGameOver()

	reopened := NewStore(m, zap.NewNop())
	want := Stats{Runs: 1, Wins: 2, GameOvers: 1, Deaths: 2, BestLivesLeft: 2}
	if got := reopened.Stats(); got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func TestStoreWithoutManager(t *testing.T) {
	s := NewStore(nil, nil)
	if s.Persistent() {
		t.Fatal("nil manager should not persist")
	}
	s.RecordDeath()
	s.RecordWin(3)
	if err := s.Save(); err != nil {
		t.Fatalf("save without manager: %v", err)
	}
	if got := s.Stats(); got.Deaths != 1 || got.Wins != 1 || got.BestLivesLeft != 3 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestStoreCorruptData(t *testing.T) {
	m := openTestManager(t)
	if err := m.SaveObjectProp(statsObject, statsProperty, []byte("runs: [")); err != nil {
		t.Fatalf("seed corrupt stats: %v", err)
	}

	s := NewStore(m, zap.NewNop())
	if got := s.Stats(); got != (Stats{}) {
		t.Fatalf("corrupt stats should reset, got %+v", got)
	}
	if err := s.Load(); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
