package component

import (
	"errors"
	"testing"
)

func TestParseTriggerKind(t *testing.T) {
	cases := []struct {
		in   string
		want TriggerKind
		err  bool
	}{
		{"kill_zone", TriggerKillZone, false},
		{"checkpoint", TriggerCheckpoint, false},
		{"win_zone", TriggerWinZone, false},
		{"script", TriggerScript, false},
		{"KillZone", TriggerNone, true},
		{"killzone", TriggerNone, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseTriggerKind(c.in)
			if c.err {
				if !errors.Is(err, ErrUnknownTriggerKind) {
					t.Fatalf("expected ErrUnknownTriggerKind, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %v, got %v err=%v", c.want, got, err)
			}
			if got.String() != c.in {
				t.Fatalf("String() = %q, want %q", got.String(), c.in)
			}
		})
	}
}

func TestComponentKindsAreDistinct(t *testing.T) {
	a := NewComponentKind[int]()
	b := NewComponentKind[int]()
	if a.ID() == b.ID() || !a.Valid() || !b.Valid() {
		t.Fatalf("expected two distinct valid kinds, got %d and %d", a.ID(), b.ID())
	}
	var zero ComponentKind[int]
	if zero.Valid() {
		t.Fatalf("zero kind must be invalid")
	}
}
