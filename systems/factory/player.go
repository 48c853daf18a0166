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

func CreatePlayer(ecs *ecs.ECS, lib *assets.Library, manifest assets.Manifest, spawn assets.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position: components.Vector{X: spawn.X, Y: spawn.Y},
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Width:  cfg.Player.FrameWidth,
		Height: cfg.Player.FrameHeight,
		Scale:  cfg.Player.Scale,
	})
	components.State.SetValue(player, components.StateData{
		Animation: spawn.Animation,
		Direction: spawn.Direction,
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed:          cfg.Player.Speed,
		JumpForce:      cfg.Player.JumpForce,
		LeftBoundScale: cfg.Player.LeftBoundScale,
	})

	w, h := gamemath.HitboxSize(cfg.Player.FrameWidth, cfg.Player.FrameHeight, cfg.Player.Scale,
		cfg.Player.HitboxWidthScale, cfg.Player.HitboxHeightTrim)
	x, y := gamemath.PlayerHitboxOrigin(spawn.X, spawn.Y, cfg.Player.FrameWidth, cfg.Player.HitboxWidthScale)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	animData := GenerateAnimations(lib, manifest.Character(cfg.CharacterPlayer), cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	animData.SetAnimation(spawn.Animation)
	components.Animation.Set(player, animData)

	return player
}
