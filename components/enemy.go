package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	PatrolSpeed float64 // pixels per frame
	InContact   bool    // overlapped the player last frame
}

var Enemy = donburi.NewComponentType[EnemyData]()
