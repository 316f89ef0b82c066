package system

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// ScriptInput is the state a trigger script sees.
type ScriptInput struct {
	Lives    int
	RespawnX float64
	RespawnY float64
}

// ScriptResult is the state after a trigger script ran. Scene is SceneNone
// unless the script asked for a switch.
type ScriptResult struct {
	Lives    int
	RespawnX float64
	RespawnY float64
	Scene    common.SceneName
	Consume  bool
}

// ScriptRunner compiles tengo trigger scripts once per path and runs a
// clone per invocation.
type ScriptRunner struct {
	load func(string) ([]byte, error)

	mu       sync.Mutex
	compiled map[string]*tengo.Compiled
}

func NewScriptRunner(load func(string) ([]byte, error)) *ScriptRunner {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &ScriptRunner{load: load, compiled: map[string]*tengo.Compiled{}}
}

// Invalidate drops every compiled script so the next run reloads from source.
func (r *ScriptRunner) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compiled = map[string]*tengo.Compiled{}
}

func (r *ScriptRunner) Run(ctx context.Context, path string, in ScriptInput) (ScriptResult, error) {
	out := ScriptResult{Lives: in.Lives, RespawnX: in.RespawnX, RespawnY: in.RespawnY}

	base, err := r.compile(path)
	if err != nil {
		return out, err
	}

	c := base.Clone()
	vars := map[string]any{
		"lives":     in.Lives,
		"respawn_x": in.RespawnX,
		"respawn_y": in.RespawnY,
		"scene":     "",
		"consume":   false,
	}
	for name, v := range vars {
		if err := c.Set(name, v); err != nil {
			return out, fmt.Errorf("script: set %s in %q: %w", name, path, err)
		}
	}
	if err := c.RunContext(ctx); err != nil {
		return out, fmt.Errorf("script: run %q: %w", path, err)
	}

	out.Lives = c.Get("lives").Int()
	out.RespawnX = c.Get("respawn_x").Float()
	out.RespawnY = c.Get("respawn_y").Float()
	out.Consume = c.Get("consume").Bool()
	if name := strings.TrimSpace(c.Get("scene").String()); name != "" {
		scene, err := common.ParseSceneName(name)
		if err != nil {
			return out, fmt.Errorf("script: %q: %w", path, err)
		}
		out.Scene = scene
	}
	return out, nil
}

func (r *ScriptRunner) compile(path string) (*tengo.Compiled, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.compiled[path]; ok {
		return c, nil
	}

	src, err := r.load(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %q: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("lives", 0)
	_ = script.Add("respawn_x", 0.0)
	_ = script.Add("respawn_y", 0.0)
	_ = script.Add("scene", "")
	_ = script.Add("consume", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %q: %w", path, err)
	}
	r.compiled[path] = compiled
	return compiled, nil
}
