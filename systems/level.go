package systems

import (
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel paints the stage's platforms. They are decoration only and take
// no part in collision.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}

	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	for _, p := range levelData.CurrentLevel.Platforms {
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), cfg.UI.PlatformColor, false)
	}
}
