package system

import (
	"context"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"go.uber.org/zap"
)

// TriggerSystem resolves every TriggerEnter raised by the last physics step.
// Each event is handled on its own; touching the same volume twice counts
// twice.
type TriggerSystem struct {
	physics *PhysicsSystem
	scripts *ScriptRunner
	logger  *zap.Logger
	stats   StatsRecorder
}

func NewTriggerSystem(physics *PhysicsSystem, scripts *ScriptRunner, logger *zap.Logger, stats StatsRecorder) *TriggerSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stats == nil {
		stats = nopStats{}
	}
	return &TriggerSystem{physics: physics, scripts: scripts, logger: logger, stats: stats}
}

func (t *TriggerSystem) Update(w *ecs.World) {
	if t == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.TriggerEnterComponent.Kind(), func(ev ecs.Entity, enter *component.TriggerEnter) {
		defer ecs.DestroyEntity(w, ev)

		subject := ecs.Entity(enter.Subject)
		volume := ecs.Entity(enter.Trigger)
		trigger, ok := ecs.Get(w, volume, component.TriggerComponent.Kind())
		if !ok || !ecs.IsAlive(w, subject) {
			return
		}

		switch trigger.Kind {
		case component.TriggerKillZone:
			t.kill(w, subject)
		case component.TriggerCheckpoint:
			t.checkpoint(w, subject, volume)
		case component.TriggerWinZone:
			t.win(w, subject)
		case component.TriggerScript:
			t.script(w, subject, volume, trigger)
		}
	})
}

func (t *TriggerSystem) kill(w *ecs.World, subject ecs.Entity) {
	lives, hasLives := ecs.Get(w, subject, component.LivesComponent.Kind())
	if hasLives {
		lives.Count--
	}
	if audioComp, ok := ecs.Get(w, subject, component.AudioComponent.Kind()); ok {
		audioComp.Request(component.SoundDeath)
	}
	if rp, ok := ecs.Get(w, subject, component.RespawnPointComponent.Kind()); ok {
		t.respawn(w, subject, rp.X, rp.Y)
	}
	t.stats.RecordDeath()
	if hasLives {
		t.logger.Info("player died", zap.Int("lives", lives.Count))
	}
}

func (t *TriggerSystem) respawn(w *ecs.World, subject ecs.Entity, x, y float64) {
	if t.physics != nil {
		t.physics.Teleport(w, subject, x, y)
		return
	}
	if transform, ok := ecs.Get(w, subject, component.TransformComponent.Kind()); ok {
		transform.X = x
		transform.Y = y
	}
}

func (t *TriggerSystem) checkpoint(w *ecs.World, subject, volume ecs.Entity) {
	at, ok := ecs.Get(w, volume, component.TransformComponent.Kind())
	if !ok {
		return
	}
	rp, ok := ecs.Get(w, subject, component.RespawnPointComponent.Kind())
	if !ok {
		return
	}
	rp.X = at.X
	rp.Y = at.Y
	t.logger.Debug("checkpoint reached", zap.Float64("x", rp.X), zap.Float64("y", rp.Y))
}

func (t *TriggerSystem) win(w *ecs.World, subject ecs.Entity) {
	livesLeft := 0
	if lives, ok := ecs.Get(w, subject, component.LivesComponent.Kind()); ok {
		livesLeft = lives.Count
	}
	t.logger.Info("level complete", zap.Int("lives", livesLeft))
	t.stats.RecordWin(livesLeft)
	RequestScene(w, common.SceneWin)
}

func (t *TriggerSystem) script(w *ecs.World, subject, volume ecs.Entity, trigger *component.Trigger) {
	if t.scripts == nil {
		return
	}

	var in ScriptInput
	lives, hasLives := ecs.Get(w, subject, component.LivesComponent.Kind())
	if hasLives {
		in.Lives = lives.Count
	}
	rp, hasRespawn := ecs.Get(w, subject, component.RespawnPointComponent.Kind())
	if hasRespawn {
		in.RespawnX = rp.X
		in.RespawnY = rp.Y
	}

	out, err := t.scripts.Run(context.Background(), trigger.Script, in)
	if err != nil {
		t.logger.Warn("trigger script failed", zap.String("script", trigger.Script), zap.Error(err))
		return
	}

	if hasLives {
		lives.Count = out.Lives
	}
	if hasRespawn {
		rp.X = out.RespawnX
		rp.Y = out.RespawnY
	}
	if out.Scene != common.SceneNone {
		RequestScene(w, out.Scene)
	}
	if out.Consume {
		ecs.DestroyEntity(w, volume)
	}
}
