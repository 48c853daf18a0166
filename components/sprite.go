package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData holds the frame size and render scale of an actor. Fixed at
// creation.
type SpriteData struct {
	Width  int
	Height int
	Scale  int
}

var Sprite = donburi.NewComponentType[SpriteData]()
