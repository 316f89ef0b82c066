package assets

import (
	"testing"
)

func TestPlayerSheetSize(t *testing.T) {
	img := PlayerSheet()
	b := img.Bounds()
	if b.Dx() != 6*PlayerFrameW || b.Dy() != len(playerRows)*PlayerFrameH {
		t.Fatalf("sheet = %dx%d", b.Dx(), b.Dy())
	}
	// Every frame draws something opaque.
	for row, r := range playerRows {
		for f := 0; f < r.frames; f++ {
			_, _, _, a := img.At(f*PlayerFrameW+16, row*PlayerFrameH+26).RGBA()
			if a == 0 {
				t.Fatalf("%s frame %d is empty at the torso", r.name, f)
			}
		}
	}
}

func TestSoundsAreStereoPCM(t *testing.T) {
	for name, gen := range soundGenerators {
		b := gen()
		if len(b) == 0 || len(b)%4 != 0 {
			t.Fatalf("%s: %d bytes is not 16-bit stereo", name, len(b))
		}
	}
}

func TestUnknownAssets(t *testing.T) {
	if _, err := LoadAudio("sfx/nope"); err == nil {
		t.Fatal("expected error for unknown sound")
	}
	if _, err := LoadImage("gen/nope"); err == nil {
		t.Fatal("expected error for unknown image")
	}
}

func TestLoadAudioPlayerDisabled(t *testing.T) {
	SetAudioEnabled(false)
	defer SetAudioEnabled(true)

	p, err := LoadAudioPlayer("sfx/jump")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil player with audio disabled")
	}
}
