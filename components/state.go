package components

import (
	"github.com/automoto/doodle-anim/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Animation   config.AnimationID
	Direction   config.Direction
	IsJumping   bool
	IsAttacking bool
	IsMoving    bool
}

var State = donburi.NewComponentType[StateData]()
