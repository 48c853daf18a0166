package factory

import (
	"github.com/automoto/doodle-anim/assets"
	"github.com/automoto/doodle-anim/assets/animations"
	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
)

// GenerateAnimations builds the animation table for a character: every
// manifest entry becomes a clip keyed by its animation tag.
func GenerateAnimations(lib *assets.Library, def cfg.CharacterDef, frameWidth, frameHeight int) *components.AnimationData {
	animator := animations.NewAnimator(frameWidth)
	animator.FrameDuration = cfg.Animation.FrameDuration

	animData := &components.AnimationData{
		Animator: animator,
		Clips:    make(map[cfg.AnimationID]*components.Clip, len(def.Animations)),
	}

	for name, a := range def.Animations {
		state, err := cfg.ParseAnimationID(name)
		if err != nil {
			// The manifest is validated on load.
			panic(err)
		}

		sheet := lib.Sheet(def.Dir, a.File, a.Frames, frameWidth, frameHeight)
		bounds := sheet.Bounds()
		animData.Clips[state] = &components.Clip{
			Sheet:  sheet,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Frames: a.Frames,
		}
	}

	return animData
}
