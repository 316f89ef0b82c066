package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named sound players. Systems request playback by raising the
// matching Play flag; the audio system starts the player and lowers it.
// Players may be nil when no audio device is available.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

const (
	SoundJump  = "jump"
	SoundDeath = "death"
)

// Request raises the play flag for name and reports whether the clip exists.
func (a *Audio) Request(name string) bool {
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

// Requested reports whether name has a pending play request.
func (a *Audio) Requested(name string) bool {
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			return a.Play[i]
		}
	}
	return false
}
