package systems

import (
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		state := components.State.Get(playerEntry)
		transform := components.Transform.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		sprite := components.Sprite.Get(playerEntry)

		controlPlayer(input, player, state, transform, physics, sprite)
		syncPlayerHitbox(components.Object.Get(playerEntry), transform, sprite)
	})
}

// controlPlayer applies the first matching command: jump, move right, move
// left, primary attack, secondary attack, otherwise idle.
func controlPlayer(input *components.InputData, player *components.PlayerData, state *components.StateData, transform *components.TransformData, physics *components.PhysicsData, sprite *components.SpriteData) {
	rightBound := float64(cfg.C.Width - sprite.Width*sprite.Scale)
	leftBound := -float64(sprite.Width * player.LeftBoundScale)

	switch {
	case GetAction(input, cfg.ActionJump).JustPressed && !state.IsJumping:
		state.Animation = cfg.Jump
		physics.Velocity.Y = player.JumpForce
		state.IsJumping = true
		state.IsMoving = true
	case GetAction(input, cfg.ActionMoveRight).Pressed && transform.Position.X < rightBound:
		state.Animation = cfg.Run
		state.Direction = cfg.Right
		transform.Position.X += player.Speed
		state.IsMoving = true
	case GetAction(input, cfg.ActionMoveLeft).Pressed && transform.Position.X > leftBound:
		state.Animation = cfg.Run
		state.Direction = cfg.Left
		transform.Position.X -= player.Speed
		state.IsMoving = true
	case GetAction(input, cfg.ActionAttackPrimary).JustPressed:
		state.Animation = cfg.Attack1
		state.IsAttacking = true
	case GetAction(input, cfg.ActionAttackSecondary).JustPressed:
		state.Animation = cfg.Attack3
		state.IsAttacking = true
	case !state.IsJumping && !state.IsAttacking:
		state.Animation = cfg.Idle
		state.IsMoving = false
	}
}

func syncPlayerHitbox(obj *components.ObjectData, transform *components.TransformData, sprite *components.SpriteData) {
	obj.X, obj.Y = gamemath.PlayerHitboxOrigin(transform.Position.X, transform.Position.Y, sprite.Width, cfg.Player.HitboxWidthScale)
	obj.Update()
}
