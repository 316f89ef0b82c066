package prefabs

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedPrefabsParse(t *testing.T) {
	names, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no embedded prefabs")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name == "" || len(spec.Components) == 0 {
				t.Fatalf("prefab %s is missing a name or components", name)
			}
		})
	}
}

func TestTriggerPrefabsDeclareTheirKind(t *testing.T) {
	for _, kind := range []string{"kill_zone", "checkpoint", "win_zone", "script"} {
		spec, err := LoadEntityBuildSpec(kind + ".yaml")
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		trigger, err := DecodeComponentSpec[TriggerComponentSpec](spec.Components["trigger"])
		if err != nil {
			t.Fatalf("%s: decode trigger: %v", kind, err)
		}
		if trigger.Kind != kind {
			t.Fatalf("%s.yaml declares kind %q", kind, trigger.Kind)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{in: `"#ff8000"`, want: [4]uint8{255, 128, 0, 255}},
		{in: `"10203040"`, want: [4]uint8{16, 32, 48, 64}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#gg0000"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := [4]uint8{c.R, c.G, c.B, c.A}
			if got != tc.want {
				t.Fatalf("color = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := map[string]string{
		"extra_life.tengo":                 "scripts/extra_life.tengo",
		"scripts/extra_life.tengo":         "scripts/extra_life.tengo",
		"prefabs/scripts/extra_life.tengo": "scripts/extra_life.tengo",
		"prefabs/extra_life.tengo":         "scripts/extra_life.tengo",
	}
	for in, want := range tests {
		if got := cleanScriptPath(in); got != want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	if _, err := LoadScript("extra_life.tengo"); err != nil {
		t.Fatalf("load script: %v", err)
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "extra.tengo"), []byte("lives += 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Events:
		if c.Kind != ChangeScript || filepath.Base(c.Path) != "extra.tengo" {
			t.Fatalf("change = %+v, want script change for extra.tengo", c)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}
