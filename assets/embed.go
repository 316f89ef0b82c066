package assets

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
	audioEnabled = true

	imageMu    sync.Mutex
	imageCache = map[string]*ebiten.Image{}
)

// SetAudioEnabled turns sound creation on or off. With audio off every
// player loads as nil, which the audio system tolerates.
func SetAudioEnabled(enabled bool) {
	audioEnabled = enabled
}

func sharedContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// LoadImage returns the generated image registered under path. Images are
// generated once and shared.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	gen, ok := imageGenerators[clean]
	if !ok {
		return nil, fmt.Errorf("assets: unknown image %q", path)
	}

	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := imageCache[clean]; ok {
		return img, nil
	}
	img := ebiten.NewImageFromImage(gen())
	imageCache[clean] = img
	return img, nil
}

// LoadAudio returns the synthesized PCM for path: 16-bit little-endian
// stereo at SampleRate.
func LoadAudio(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	gen, ok := soundGenerators[clean]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", path)
	}
	return gen(), nil
}

// LoadAudioPlayer creates a player for the sound at path, or nil when audio
// is disabled.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadAudio(path)
	if err != nil {
		return nil, err
	}
	if !audioEnabled {
		return nil, nil
	}
	return sharedContext().NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	s := strings.TrimSpace(path)
	s = strings.TrimPrefix(s, "assets/")
	return strings.TrimSuffix(s, ".png")
}
