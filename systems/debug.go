package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHitboxes fills every hitbox in the space and labels it with its
// owner's position. Registered before DrawAnimated so sprites cover it.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	label := fonts.Label.Get()

	for _, obj := range space.Objects() {
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), cfg.UI.HitboxColor, false)

		owner, ok := obj.Data.(*donburi.Entry)
		if !ok || !owner.Valid() {
			continue
		}
		pos := components.Transform.Get(owner).Position
		drawText(screen, fmt.Sprintf("X: %d, Y: %d", int(pos.X), int(pos.Y)), label,
			obj.X, obj.Y-cfg.UI.HitboxLabelOffset, cfg.UI.TextColor)
	}
}

// DrawDebug shows the debug banner and the frame rate.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	face := fonts.Regular.Get()
	margin := cfg.UI.TextMargin
	drawText(screen, "DEBUG MODE", face, margin, margin, cfg.UI.TextColor)
	drawText(screen, "Press D to toggle debug mode", face, margin, margin+cfg.UI.LineHeight, cfg.UI.TextColor)

	fps := fmt.Sprintf("%d FPS", int(ebiten.ActualFPS()))
	width := font.MeasureString(face, fps).Ceil()
	drawText(screen, fps, face, float64(screen.Bounds().Dx()-width)-margin, margin, cfg.UI.TextColor)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, int(x), int(y)+ascent, clr) //nolint:staticcheck // TODO: migrate to text/v2
}
