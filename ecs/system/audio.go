package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

// Update starts requested sounds from the beginning and pauses stopped ones.
// Requests are cleared even when the player is missing.
func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			if i >= len(audioComp.Players) || audioComp.Players[i] == nil {
				continue
			}
			player := audioComp.Players[i]
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			if err := player.Rewind(); err != nil {
				continue
			}
			player.Play()
		}

		for i := range audioComp.Stop {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			if i < len(audioComp.Players) && audioComp.Players[i] != nil && audioComp.Players[i].IsPlaying() {
				audioComp.Players[i].Pause()
			}
		}
	})
}
