package common

import (
	"errors"
	"fmt"
)

var ErrUnknownScene = errors.New("unknown scene")

// SceneName identifies one of the loadable scenes.
type SceneName uint8

const (
	SceneNone SceneName = iota
	SceneGame
	SceneWin
	SceneGameOver
)

var sceneNames = map[SceneName]string{
	SceneGame:     "Game",
	SceneWin:      "Win",
	SceneGameOver: "GameOver",
}

func (s SceneName) String() string {
	if name, ok := sceneNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SceneName(%d)", uint8(s))
}

func (s SceneName) Valid() bool {
	_, ok := sceneNames[s]
	return ok
}

// ParseSceneName maps "Game", "Win" and "GameOver" to their scene.
func ParseSceneName(name string) (SceneName, error) {
	for s, n := range sceneNames {
		if n == name {
			return s, nil
		}
	}
	return SceneNone, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Scenes lists every loadable scene in a stable order.
func Scenes() []SceneName {
	return []SceneName{SceneGame, SceneWin, SceneGameOver}
}
