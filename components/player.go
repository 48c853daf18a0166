package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed          float64 // pixels per frame
	JumpForce      float64
	LeftBoundScale int
}

var Player = donburi.NewComponentType[PlayerData]()
