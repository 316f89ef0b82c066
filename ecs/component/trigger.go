package component

import (
	"errors"
	"fmt"
)

var ErrUnknownTriggerKind = errors.New("unknown trigger kind")

// TriggerKind discriminates trigger volumes.
type TriggerKind uint8

const (
	TriggerNone TriggerKind = iota
	TriggerKillZone
	TriggerCheckpoint
	TriggerWinZone
	TriggerScript
)

var triggerKindNames = map[TriggerKind]string{
	TriggerKillZone:   "kill_zone",
	TriggerCheckpoint: "checkpoint",
	TriggerWinZone:    "win_zone",
	TriggerScript:     "script",
}

func (k TriggerKind) String() string {
	if name, ok := triggerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TriggerKind(%d)", uint8(k))
}

func ParseTriggerKind(s string) (TriggerKind, error) {
	for k, name := range triggerKindNames {
		if name == s {
			return k, nil
		}
	}
	return TriggerNone, fmt.Errorf("%w: %q", ErrUnknownTriggerKind, s)
}

// Trigger is a non-solid volume that raises an enter event when the player
// starts overlapping it. Bounds are top-left anchored at the transform.
type Trigger struct {
	Kind   TriggerKind
	Width  float64
	Height float64
	// Script is the prefab-relative tengo script for TriggerScript volumes.
	Script string
}

var TriggerComponent = NewComponent[Trigger]()

// TriggerEnter is a one-shot request created for every begin contact between
// a subject and a trigger volume.
type TriggerEnter struct {
	Subject uint64
	Trigger uint64
}

var TriggerEnterComponent = NewComponent[TriggerEnter]()
