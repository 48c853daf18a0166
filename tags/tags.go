package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Skeleton = donburi.NewTag().SetName("Skeleton")
)

// Resolv tags for hitbox queries
const (
	ResolvPlayer   = "Player"
	ResolvSkeleton = "Skeleton"
)
