package systems

import (
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics pulls every actor down and rests it on the floor. Runs after
// the control and patrol systems so a fresh jump impulse is integrated in
// the same tick.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := frameTime()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		applyGravity(components.State.Get(e), components.Transform.Get(e), components.Physics.Get(e), dt)
		syncHitbox(e)
	})
}

func applyGravity(state *components.StateData, transform *components.TransformData, physics *components.PhysicsData, dt float64) {
	physics.Velocity.Y, transform.Position.Y = gamemath.ApplyGravity(
		physics.Velocity.Y, transform.Position.Y, cfg.Physics.Gravity, dt)

	var landed bool
	physics.Velocity.Y, transform.Position.Y, landed = gamemath.ClampToFloor(
		physics.Velocity.Y, transform.Position.Y, cfg.Physics.Floor)
	if landed {
		state.IsJumping = false
	}
}

// syncHitbox moves an actor's hitbox to its current position.
func syncHitbox(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	switch {
	case e.HasComponent(components.Player):
		syncPlayerHitbox(components.Object.Get(e), components.Transform.Get(e), components.Sprite.Get(e))
	case e.HasComponent(components.Enemy):
		syncSkeletonHitbox(components.Object.Get(e), components.Transform.Get(e), components.State.Get(e))
	}
}
