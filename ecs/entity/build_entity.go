package entity

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"camera_tag":      addCameraTag,
	"ground_tag":      addGroundTag,
	"player":          addPlayer,
	"input":           addInput,
	"transform":       addTransform,
	"sprite":          addSprite,
	"render_layer":    addRenderLayer,
	"camera":          addCamera,
	"animation":       addAnimation,
	"animator":        addAnimator,
	"audio":           addAudio,
	"collision_layer": addCollisionLayer,
	"physics_body":    addPhysicsBody,
	"ground_probe":    addGroundProbe,
	"facing":          addFacing,
	"lives":           addLives,
	"respawn_point":   addRespawnPoint,
	"trigger":         addTrigger,
	"solid":           addSolid,
	"lives_label":     addLivesLabel,
}

// componentBuildOrder lists builders that depend on earlier components
// (physics_body and respawn_point read transform).
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"ground_tag",
	"player",
	"input",
	"transform",
	"sprite",
	"render_layer",
	"camera",
	"animation",
	"animator",
	"audio",
	"collision_layer",
	"physics_body",
	"ground_probe",
	"facing",
	"lives",
	"respawn_point",
	"trigger",
	"solid",
	"lives_label",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

// BuildEntityFromSpec creates an entity from an already decoded prefab.
// Unknown component names fail the build and leave no entity behind.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addGroundTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed <= 0 || spec.JumpImpulse <= 0 {
		return fmt.Errorf("player needs positive move_speed and jump_impulse")
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:   spec.MoveSpeed,
		JumpImpulse: spec.JumpImpulse,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		b := sprite.Image.Bounds()
		sprite.OriginX = float64(b.Dx()) / 2
		sprite.OriginY = float64(b.Dy()) / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; spec.Current != "" && !ok {
		return fmt.Errorf("animation %q is not defined", spec.Current)
	}

	playing := true
	if spec.Playing != nil {
		playing = *spec.Playing
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet: sheet,
		Defs:  defs,
		Clips: component.AnimationClips{
			Idle: spec.Clips.Idle,
			Run:  spec.Clips.Run,
			Jump: spec.Clips.Jump,
			Fall: spec.Clips.Fall,
		},
		Current: spec.Current,
		Playing: playing,
	})
}

type animatorSpec = prefabs.AnimatorComponentSpec

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), component.NewAnimator(spec.Layers))
}

type audioClipSpec = prefabs.AudioClipSpec

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponentFromSpec(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	for _, name := range spec.Autoplay {
		comp.Request(name)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := spec.Category
	mask := spec.Mask
	if cat == 0 {
		cat = component.LayerGround
	}
	if mask == 0 {
		mask = component.LayerAll
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:         spec.Width,
		Height:        spec.Height,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		AlignTopLeft:  spec.AlignTopLeft,
		FixedRotation: spec.FixedRotation,
		OffsetX:       spec.OffsetX,
		OffsetY:       spec.OffsetY,
	})
}

type groundProbeSpec = prefabs.GroundProbeComponentSpec

func addGroundProbe(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[groundProbeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ground probe spec: %w", err)
	}
	if len(spec.Points) == 0 {
		return fmt.Errorf("ground probe needs at least one point")
	}
	if spec.Radius <= 0 {
		spec.Radius = 2
	}
	if spec.Mask == 0 {
		spec.Mask = component.LayerGround
	}
	points := make([]component.ProbePoint, 0, len(spec.Points))
	for _, p := range spec.Points {
		points = append(points, component.ProbePoint{X: p.X, Y: p.Y})
	}
	return ecs.Add(w, e, component.GroundProbeComponent.Kind(), &component.GroundProbe{
		Points: points,
		Radius: spec.Radius,
		Mask:   spec.Mask,
	})
}

type facingSpec = prefabs.FacingComponentSpec

func addFacing(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[facingSpec](raw)
	if err != nil {
		return fmt.Errorf("decode facing spec: %w", err)
	}
	right := true
	if spec.Right != nil {
		right = *spec.Right
	}
	return ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{Right: right})
}

type livesSpec = prefabs.LivesComponentSpec

func addLives(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[livesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode lives spec: %w", err)
	}
	return ecs.Add(w, e, component.LivesComponent.Kind(), &component.Lives{Count: spec.Initial, Initial: spec.Initial})
}

// addRespawnPoint starts the respawn point on the entity's own transform.
func addRespawnPoint(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	rp := &component.RespawnPoint{}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		rp.X = t.X
		rp.Y = t.Y
	}
	return ecs.Add(w, e, component.RespawnPointComponent.Kind(), rp)
}

type triggerSpec = prefabs.TriggerComponentSpec

func addTrigger(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[triggerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trigger spec: %w", err)
	}
	kind, err := component.ParseTriggerKind(spec.Kind)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		Kind:   kind,
		Width:  spec.Width,
		Height: spec.Height,
		Script: spec.Script,
	})
}

type solidSpec = prefabs.SolidComponentSpec

func addSolid(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[solidSpec](raw)
	if err != nil {
		return fmt.Errorf("decode solid spec: %w", err)
	}
	solid := &component.Solid{Width: spec.Width, Height: spec.Height}
	if spec.Color != nil {
		solid.Color = spec.Color.RGBA
	}
	return ecs.Add(w, e, component.SolidComponent.Kind(), solid)
}

type livesLabelSpec = prefabs.LivesLabelComponentSpec

func addLivesLabel(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[livesLabelSpec](raw)
	if err != nil {
		return fmt.Errorf("decode lives label spec: %w", err)
	}
	return ecs.Add(w, e, component.LivesLabelComponent.Kind(), &component.LivesLabel{X: spec.X, Y: spec.Y, Target: spec.Target})
}

func buildAudioComponentFromSpec(audioSpecs []audioClipSpec) (*component.Audio, error) {
	n := len(audioSpecs)

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		player, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}
