package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageData is a singleton holding the on-screen annotation, faded out by
// a tween once it stops being refreshed.
type MessageData struct {
	Text  string
	X, Y  float64
	Alpha float32
	Tween *gween.Tween
}

var Message = donburi.NewComponentType[MessageData]()
