package archetypes

import (
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Physics,
		components.Sprite,
		components.State,
		components.Object,
		components.Animation,
	)
	Skeleton = newArchetype(
		tags.Skeleton,
		components.Enemy,
		components.Transform,
		components.Physics,
		components.Sprite,
		components.State,
		components.Object,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
