package components

import (
	"image"

	"github.com/automoto/doodle-anim/assets/animations"
	"github.com/automoto/doodle-anim/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Clip is one entry of an actor's animation table.
type Clip struct {
	Sheet  *ebiten.Image
	Width  int // sheet pixel width
	Height int // sheet pixel height
	Frames int

	cachedFrames map[image.Rectangle]*ebiten.Image
}

// Frame returns the sub-image of the sheet at rect, cached per clip.
func (c *Clip) Frame(rect image.Rectangle) *ebiten.Image {
	if img, ok := c.cachedFrames[rect]; ok {
		return img
	}
	if c.cachedFrames == nil {
		c.cachedFrames = make(map[image.Rectangle]*ebiten.Image)
	}
	img := c.Sheet.SubImage(rect).(*ebiten.Image)
	c.cachedFrames[rect] = img
	return img
}

type AnimationData struct {
	Animator     *animations.Animator
	Clips        map[config.AnimationID]*Clip
	Current      *Clip
	CurrentSheet config.AnimationID
}

// SetAnimation makes the clip for state active and hands its frame count to
// the animator. States without a clip keep whatever sheet was playing.
func (a *AnimationData) SetAnimation(state config.AnimationID) {
	clip, ok := a.Clips[state]
	if !ok {
		return
	}
	a.Current = clip
	a.CurrentSheet = state
	a.Animator.NumFrames = clip.Frames
}

var Animation = donburi.NewComponentType[AnimationData]()
