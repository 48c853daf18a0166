package components

import (
	"github.com/automoto/doodle-anim/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Stage
}

var Level = donburi.NewComponentType[LevelData]()
