package systems

import (
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameTime is the length of one fixed update step in seconds.
func frameTime() float64 {
	return 1.0 / float64(cfg.C.TPS)
}

// UpdateAnimations applies every actor's animation tag to its clip table and
// steps the animator. An attack that reaches its last frame ends the attack.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := frameTime()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		state := components.State.Get(e)
		stepAnimation(animData, state, dt)
	})
}

func stepAnimation(animData *components.AnimationData, state *components.StateData, dt float64) {
	animData.SetAnimation(state.Animation)
	if animData.Current == nil {
		return
	}

	if animData.Animator.Advance(dt, animData.Current.Width) && state.Animation.IsAttack() {
		state.IsAttacking = false
	}
}
