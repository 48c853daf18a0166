package factory

import (
	"github.com/automoto/doodle-anim/archetypes"
	"github.com/automoto/doodle-anim/assets"
	"github.com/automoto/doodle-anim/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, stage *assets.Stage) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{CurrentLevel: stage})
	return level
}
