package factory

import (
	"github.com/automoto/doodle-anim/archetypes"
	"github.com/automoto/doodle-anim/assets"
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/shared/gamemath"
	"github.com/automoto/doodle-anim/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSkeleton(ecs *ecs.ECS, lib *assets.Library, manifest assets.Manifest, spawn assets.Spawn) *donburi.Entry {
	skeleton := archetypes.Skeleton.Spawn(ecs)

	components.Transform.SetValue(skeleton, components.TransformData{
		Position: components.Vector{X: spawn.X, Y: spawn.Y},
	})
	components.Sprite.SetValue(skeleton, components.SpriteData{
		Width:  cfg.Skeleton.FrameWidth,
		Height: cfg.Skeleton.FrameHeight,
		Scale:  cfg.Skeleton.Scale,
	})
	components.State.SetValue(skeleton, components.StateData{
		Animation: spawn.Animation,
		Direction: spawn.Direction,
	})
	components.Enemy.SetValue(skeleton, components.EnemyData{
		PatrolSpeed: cfg.Skeleton.PatrolSpeed,
	})

	w, h := gamemath.HitboxSize(cfg.Skeleton.FrameWidth, cfg.Skeleton.FrameHeight, cfg.Skeleton.Scale,
		cfg.Skeleton.HitboxWidthScale, cfg.Skeleton.HitboxHeightTrim)
	x, y := gamemath.SkeletonHitboxOrigin(spawn.X, spawn.Y, int(spawn.Direction), cfg.Skeleton.FacingLeftOffsetX)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSkeleton)
	obj.Data = skeleton
	components.Object.SetValue(skeleton, components.ObjectData{Object: obj})

	animData := GenerateAnimations(lib, manifest.Character(cfg.CharacterSkeleton), cfg.Skeleton.FrameWidth, cfg.Skeleton.FrameHeight)
	animData.SetAnimation(spawn.Animation)
	components.Animation.Set(skeleton, animData)

	return skeleton
}
