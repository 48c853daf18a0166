package config

import "fmt"

// AnimationID identifies which sprite sheet an actor is playing.
type AnimationID int

const (
	Idle AnimationID = iota
	Jump
	Run
	Walk
	Attack1
	Attack3
	Hit
	Death
)

var animationNames = map[AnimationID]string{
	Idle:    "idle",
	Jump:    "jump",
	Run:     "run",
	Walk:    "walk",
	Attack1: "attack1",
	Attack3: "attack3",
	Hit:     "hit",
	Death:   "death",
}

func (a AnimationID) String() string {
	if name, ok := animationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AnimationID(%d)", int(a))
}

// IsAttack reports whether the animation is a one-shot attack.
func (a AnimationID) IsAttack() bool {
	return a == Attack1 || a == Attack3
}

// ParseAnimationID maps a manifest key such as "attack1" back to its ID.
func ParseAnimationID(name string) (AnimationID, error) {
	for id, n := range animationNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown animation %q", name)
}

// Direction is the horizontal facing of an actor.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Reverse returns the opposite facing.
func (d Direction) Reverse() Direction {
	if d == Left {
		return Right
	}
	return Left
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
