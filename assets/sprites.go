package assets

import (
	"image"
	"image/color"
	"math"
)

const (
	PlayerFrameW = 32
	PlayerFrameH = 48
)

var imageGenerators = map[string]func() image.Image{
	"gen/player_sheet": PlayerSheet,
}

// Rows of the player sheet and their frame counts.
var playerRows = []struct {
	name   string
	frames int
}{
	{name: "idle", frames: 4},
	{name: "run", frames: 6},
	{name: "jump", frames: 2},
	{name: "fall", frames: 2},
}

var (
	bodyColor    = color.RGBA{R: 70, G: 130, B: 220, A: 255}
	outlineColor = color.RGBA{R: 20, G: 30, B: 60, A: 255}
	skinColor    = color.RGBA{R: 250, G: 210, B: 170, A: 255}
	eyeColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// PlayerSheet draws a simple right-facing character, one row per clip.
func PlayerSheet() image.Image {
	cols := 0
	for _, r := range playerRows {
		if r.frames > cols {
			cols = r.frames
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*PlayerFrameW, len(playerRows)*PlayerFrameH))
	for row, r := range playerRows {
		for f := 0; f < r.frames; f++ {
			drawPlayerFrame(img, f*PlayerFrameW, row*PlayerFrameH, r.name, f, r.frames)
		}
	}
	return img
}

func drawPlayerFrame(img *image.RGBA, ox, oy int, clip string, frame, frames int) {
	phase := 2 * math.Pi * float64(frame) / float64(frames)
	bob := 0
	legSwing := 0
	armLift := 0
	switch clip {
	case "idle":
		bob = int(math.Round(math.Sin(phase)))
	case "run":
		bob = int(math.Round(math.Abs(math.Sin(phase)) * 2))
		legSwing = int(math.Round(math.Sin(phase) * 5))
	case "jump":
		armLift = 6
		legSwing = 2
	case "fall":
		armLift = 3 + frame
		legSwing = -2
	}

	// Legs
	fillRect(img, ox+10+legSwing, oy+36-bob, 5, 12, outlineColor)
	fillRect(img, ox+17-legSwing, oy+36-bob, 5, 12, outlineColor)
	// Torso
	fillRect(img, ox+8, oy+20-bob, 16, 18, bodyColor)
	strokeRect(img, ox+8, oy+20-bob, 16, 18, outlineColor)
	// Arms
	fillRect(img, ox+5, oy+22-bob-armLift, 3, 10, skinColor)
	fillRect(img, ox+24, oy+22-bob-armLift, 3, 10, skinColor)
	// Head
	fillRect(img, ox+9, oy+6-bob, 14, 14, skinColor)
	strokeRect(img, ox+9, oy+6-bob, 14, 14, outlineColor)
	fillRect(img, ox+18, oy+11-bob, 2, 3, eyeColor)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

func strokeRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for px := x; px < x+w; px++ {
		img.SetRGBA(px, y, c)
		img.SetRGBA(px, y+h-1, c)
	}
	for py := y; py < y+h; py++ {
		img.SetRGBA(x, py, c)
		img.SetRGBA(x+w-1, py, c)
	}
}
