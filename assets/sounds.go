package assets

import (
	"encoding/binary"
	"math"
)

var soundGenerators = map[string]func() []byte{
	"sfx/jump":  JumpSound,
	"sfx/death": DeathSound,
}

// JumpSound is a short rising square chirp.
func JumpSound() []byte {
	return sweep(0.12, 320, 880, square, 0.25)
}

// DeathSound is a falling sine with a slower decay.
func DeathSound() []byte {
	return sweep(0.45, 520, 90, math.Sin, 0.35)
}

func square(x float64) float64 {
	if math.Sin(x) >= 0 {
		return 1
	}
	return -1
}

// sweep renders a linear frequency sweep with a linear fade out.
func sweep(seconds, from, to float64, wave func(float64) float64, gain float64) []byte {
	n := int(seconds * SampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / SampleRate
		v := wave(phase) * gain * (1 - t)
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
