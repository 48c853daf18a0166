package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData only tracks velocity. Gravity and the floor are global.
type PhysicsData struct {
	Velocity Vector
}

var Physics = donburi.NewComponentType[PhysicsData]()

type TransformData struct {
	Position Vector
}

var Transform = donburi.NewComponentType[TransformData]()
