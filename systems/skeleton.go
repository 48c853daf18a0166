package systems

import (
	"log"

	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/shared/gamemath"
	"github.com/automoto/doodle-anim/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateSkeletons(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	msg := getOrCreateMessageState(ecs)
	tags.Skeleton.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		transform := components.Transform.Get(e)
		sprite := components.Sprite.Get(e)
		obj := components.Object.Get(e)

		patrolSkeleton(enemy, state, transform, sprite)
		syncSkeletonHitbox(obj, transform, state)

		touching := touchesPlayer(obj.Object)
		if touching {
			resolvePlayerContact(state, transform)
			syncSkeletonHitbox(obj, transform, state)
			showMessage(msg, cfg.Message.Text)
			if !enemy.InContact && settings.Debug {
				log.Printf("Skeleton hit player at (%.0f, %.0f), now facing %s",
					transform.Position.X, transform.Position.Y, state.Direction)
			}
		}
		enemy.InContact = touching
	})
}

// patrolSkeleton walks the skeleton back and forth between the screen edges.
func patrolSkeleton(enemy *components.EnemyData, state *components.StateData, transform *components.TransformData, sprite *components.SpriteData) {
	if state.Animation == cfg.Walk {
		state.IsMoving = true
	}

	rightBound := float64(cfg.C.Width - sprite.Width*sprite.Scale)
	if transform.Position.X >= rightBound {
		state.Direction = cfg.Left
		state.IsMoving = true
	} else if transform.Position.X < 0 {
		state.Direction = cfg.Right
		state.IsMoving = true
	}

	if state.IsMoving {
		transform.Position.X += float64(state.Direction) * enemy.PatrolSpeed
	}
}

// resolvePlayerContact turns the skeleton around and steps it one pixel away.
func resolvePlayerContact(state *components.StateData, transform *components.TransformData) {
	state.Direction = state.Direction.Reverse()
	transform.Position.X += float64(state.Direction)
}

// touchesPlayer reports whether obj overlaps a player hitbox. The space
// check finds candidates in neighbouring cells; the rectangle test decides.
func touchesPlayer(obj *resolv.Object) bool {
	if obj.Space == nil {
		return false
	}
	collision := obj.Check(0, 0, tags.ResolvPlayer)
	if collision == nil {
		return false
	}

	self := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	for _, other := range collision.ObjectsByTags(tags.ResolvPlayer) {
		if self.Overlaps(gamemath.Rect{X: other.X, Y: other.Y, W: other.W, H: other.H}) {
			return true
		}
	}
	return false
}

func syncSkeletonHitbox(obj *components.ObjectData, transform *components.TransformData, state *components.StateData) {
	obj.X, obj.Y = gamemath.SkeletonHitboxOrigin(transform.Position.X, transform.Position.Y, int(state.Direction), cfg.Skeleton.FacingLeftOffsetX)
	obj.Update()
}
