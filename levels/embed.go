package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/platformer/ecs/component"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk level directory checked before the embedded copies.
const Dir = "levels"

const (
	TileSolid = '#'
	TileSpawn = 'P'
	TileEmpty = '.'
)

// Level is a tile grid plus placed entities. Rows in Tiles are top to
// bottom; every coordinate is in tiles.
type Level struct {
	Name     string   `yaml:"name"`
	Lives    int      `yaml:"lives"`
	Tiles    []string `yaml:"tiles"`
	Entities []Entity `yaml:"entities"`
}

// Entity is a placed prefab. Type names a trigger kind.
type Entity struct {
	Type   string `yaml:"type"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Script string `yaml:"script,omitempty"`
}

// Size returns the entity's extent in tiles, defaulting to one tile.
func (e Entity) Size() (int, int) {
	w, h := e.Width, e.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// Run is a horizontal span of solid tiles.
type Run struct {
	X   int
	Y   int
	Len int
}

var (
	ErrNoSpawn       = errors.New("level has no spawn tile")
	ErrMultipleSpawn = errors.New("level has more than one spawn tile")
	ErrOutOfBounds   = errors.New("entity outside level bounds")
	ErrMissingScript = errors.New("script trigger without a script")
	ErrEmptyLevel    = errors.New("level has no tiles")
)

func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join(Dir, clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %q: %w", name, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %q: %w", name, err)
	}
	return lvl, nil
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() ([]string, error) {
	return fs.Glob(LevelsFS, "*.yaml")
}

func (l *Level) Width() int {
	w := 0
	for _, row := range l.Tiles {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

func (l *Level) Height() int {
	return len(l.Tiles)
}

// Spawn returns the spawn tile.
func (l *Level) Spawn() (int, int, error) {
	found := false
	sx, sy := 0, 0
	for y, row := range l.Tiles {
		for x, c := range row {
			if c != TileSpawn {
				continue
			}
			if found {
				return 0, 0, ErrMultipleSpawn
			}
			found = true
			sx, sy = x, y
		}
	}
	if !found {
		return 0, 0, ErrNoSpawn
	}
	return sx, sy, nil
}

// SolidRuns merges each row's solid tiles into horizontal runs.
func (l *Level) SolidRuns() []Run {
	var runs []Run
	for y, row := range l.Tiles {
		start := -1
		for x := 0; x <= len(row); x++ {
			solid := x < len(row) && row[x] == TileSolid
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				runs = append(runs, Run{X: start, Y: y, Len: x - start})
				start = -1
			}
		}
	}
	return runs
}

// Validate reports every problem found, joined.
func (l *Level) Validate() error {
	var errs []error
	if l.Height() == 0 || l.Width() == 0 {
		return ErrEmptyLevel
	}
	if _, _, err := l.Spawn(); err != nil {
		errs = append(errs, err)
	}
	if l.Lives < 0 {
		errs = append(errs, fmt.Errorf("lives %d is negative", l.Lives))
	}
	for i, e := range l.Entities {
		kind, err := component.ParseTriggerKind(e.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", i, err))
			continue
		}
		w, h := e.Size()
		if e.X < 0 || e.Y < 0 || e.X+w > l.Width() || e.Y+h > l.Height() {
			errs = append(errs, fmt.Errorf("entity %d (%s at %d,%d): %w", i, e.Type, e.X, e.Y, ErrOutOfBounds))
		}
		if kind == component.TriggerScript && strings.TrimSpace(e.Script) == "" {
			errs = append(errs, fmt.Errorf("entity %d: %w", i, ErrMissingScript))
		}
	}
	return errors.Join(errs...)
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, Dir+"/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
