package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"go.uber.org/zap"
)

// LivesSystem ends the run once a player has no lives left.
type LivesSystem struct {
	logger *zap.Logger
	stats  StatsRecorder
}

func NewLivesSystem(logger *zap.Logger, stats StatsRecorder) *LivesSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stats == nil {
		stats = nopStats{}
	}
	return &LivesSystem{logger: logger, stats: stats}
}

func (l *LivesSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.LivesComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, lives *component.Lives) {
		if lives.Count > 0 {
			return
		}
		l.logger.Info("game over", zap.Int("lives", lives.Count))
		l.stats.RecordGameOver()
		RequestScene(w, common.SceneGameOver)
		ecs.DestroyEntity(w, e)
	})
}
