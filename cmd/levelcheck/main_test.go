package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
)

func TestEmbeddedLevelsPass(t *testing.T) {
	if err := checkLevel(system.NewScriptRunner(nil), "meadow"); err != nil {
		t.Fatalf("meadow: %v", err)
	}
}

func TestTriggerPrefabsMatchKinds(t *testing.T) {
	for _, kind := range []component.TriggerKind{
		component.TriggerKillZone,
		component.TriggerCheckpoint,
		component.TriggerWinZone,
		component.TriggerScript,
	} {
		if err := checkTriggerPrefab(kind); err != nil {
			t.Errorf("%s: %v", kind, err)
		}
	}
}

func TestCheckLevelReportsProblems(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "levels"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no spawn",
			body: "tiles:\n  - \"....\"\n  - \"####\"\n",
			want: "no spawn",
		},
		{
			name: "bad kind",
			body: "tiles:\n  - \"P...\"\n  - \"####\"\nentities:\n  - {type: lava, x: 1, y: 0}\n",
			want: "unknown trigger kind",
		},
		{
			name: "script returns unknown scene",
			body: "tiles:\n  - \"P...\"\n  - \"####\"\nentities:\n  - {type: script, x: 1, y: 0, script: scripts/bad_scene.tengo}\n",
			want: "unknown scene",
		},
	}

	scripts := map[string][]byte{
		"scripts/bad_scene.tengo": []byte(`scene = "Credits"`),
	}
	runner := system.NewScriptRunner(func(path string) ([]byte, error) {
		if b, ok := scripts[path]; ok {
			return b, nil
		}
		return nil, os.ErrNotExist
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name := strings.ReplaceAll(tc.name, " ", "_")
			if err := os.WriteFile(filepath.Join(dir, "levels", name+".yaml"), []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			err := checkLevel(runner, name)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}
}
