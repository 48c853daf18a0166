package systems

import (
	"image"

	"github.com/automoto/doodle-anim/components"
	"github.com/automoto/doodle-anim/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawAnimated renders entities with an Animation component based on their current frame and facing.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Current == nil || animData.Current.Sheet == nil {
			return
		}

		state := components.State.Get(e)
		transform := components.Transform.Get(e)
		sprite := components.Sprite.Get(e)

		src := gamemath.SourceRect(animData.Animator.FrameWidth, animData.Animator.Frame, int(state.Direction), animData.Current.Height)
		dst := gamemath.DestRect(transform.Position.X, transform.Position.Y, sprite.Width, sprite.Height, sprite.Scale)
		drawFrame(screen, animData.Current, src, dst)
	})
}

// drawFrame stretches the src region of the clip over dst. A mirrored src is
// flipped horizontally within its own bounds.
func drawFrame(screen *ebiten.Image, clip *components.Clip, src, dst gamemath.Rect) {
	abs := src.Abs()
	if abs.W == 0 || abs.H == 0 {
		return
	}
	img := clip.Frame(image.Rect(int(abs.X), int(abs.Y), int(abs.X+abs.W), int(abs.Y+abs.H)))

	// Reset draw options.
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	if src.Mirrored() {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(abs.W, 0)
	}
	drawOp.GeoM.Scale(dst.W/abs.W, dst.H/abs.H)
	drawOp.GeoM.Translate(dst.X, dst.Y)

	screen.DrawImage(img, drawOp)
}
