package levels

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func TestEmbeddedLevelsValidate(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no embedded levels")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if err := lvl.Validate(); err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestLoadWithoutExtension(t *testing.T) {
	lvl, err := Load("meadow")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Name != "meadow" {
		t.Fatalf("name = %q", lvl.Name)
	}
}

func TestSolidRuns(t *testing.T) {
	lvl := &Level{Tiles: []string{
		"..##.#",
		"######",
		"#....#",
	}}
	got := lvl.SolidRuns()
	want := []Run{
		{X: 2, Y: 0, Len: 2},
		{X: 5, Y: 0, Len: 1},
		{X: 0, Y: 1, Len: 6},
		{X: 0, Y: 2, Len: 1},
		{X: 5, Y: 2, Len: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("runs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("run %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	base := []string{
		"#....#",
		"#.P..#",
		"######",
	}

	tests := []struct {
		name    string
		level   Level
		wantErr error
	}{
		{name: "valid", level: Level{Tiles: base, Entities: []Entity{{Type: "checkpoint", X: 3, Y: 1}}}},
		{name: "empty", level: Level{}, wantErr: ErrEmptyLevel},
		{name: "no spawn", level: Level{Tiles: []string{"#..#", "####"}}, wantErr: ErrNoSpawn},
		{name: "two spawns", level: Level{Tiles: []string{"P..P", "####"}}, wantErr: ErrMultipleSpawn},
		{name: "unknown kind", level: Level{Tiles: base, Entities: []Entity{{Type: "lava", X: 1, Y: 1}}}, wantErr: component.ErrUnknownTriggerKind},
		{name: "out of bounds", level: Level{Tiles: base, Entities: []Entity{{Type: "kill_zone", X: 5, Y: 2, Width: 3}}}, wantErr: ErrOutOfBounds},
		{name: "script without source", level: Level{Tiles: base, Entities: []Entity{{Type: "script", X: 1, Y: 0}}}, wantErr: ErrMissingScript},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSpawn(t *testing.T) {
	lvl := &Level{Tiles: []string{"....", "..P.", "####"}}
	x, y, err := lvl.Spawn()
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if x != 2 || y != 1 {
		t.Fatalf("spawn = (%d, %d), want (2, 1)", x, y)
	}
}
