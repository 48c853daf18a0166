package animations

// DefaultFrameDuration is how long each sprite sheet frame stays on screen.
const DefaultFrameDuration = 0.1

// tickEpsilon absorbs float drift when frame times like 1/60 are summed.
const tickEpsilon = 1e-9

// Animator steps through the frames of a horizontal sprite sheet on a
// fixed timer.
type Animator struct {
	Timer         float64 // seconds accumulated since the last frame step
	FrameDuration float64
	NumFrames     int // logical frame count of the active sheet
	FrameWidth    int // sheet width / NumFrames
	MaxFrames     int // sheet width / FrameWidth
	Frame         int
}

func NewAnimator(frameWidth int) *Animator {
	return &Animator{
		FrameDuration: DefaultFrameDuration,
		FrameWidth:    frameWidth,
	}
}

// Advance accumulates dt and steps the frame once for every full frame
// duration elapsed. It reports whether the animator sat on the last frame
// of the sheet at any point during the call, which is the completion signal
// for one-shot animations.
func (a *Animator) Advance(dt float64, sheetWidth int) (lastFrame bool) {
	a.Timer += dt
	a.resize(sheetWidth)

	duration := a.FrameDuration
	if duration <= 0 {
		duration = DefaultFrameDuration
	}

	for a.Timer+tickEpsilon >= duration {
		a.Timer -= duration
		if a.Timer < 0 {
			a.Timer = 0
		}
		a.Frame++
		if a.Frame == a.MaxFrames-1 {
			lastFrame = true
		}
		a.Frame %= a.MaxFrames
	}

	if a.Frame == a.MaxFrames-1 {
		lastFrame = true
	}
	a.Frame %= a.MaxFrames

	return lastFrame
}

// resize derives FrameWidth and MaxFrames from the sheet's pixel width.
// MaxFrames is derived back from FrameWidth so that integer truncation never
// lets a frame index sample past the right edge of the sheet.
func (a *Animator) resize(sheetWidth int) {
	numFrames := a.NumFrames
	if numFrames < 1 {
		numFrames = 1
	}
	a.FrameWidth = sheetWidth / numFrames
	if a.FrameWidth < 1 {
		a.FrameWidth = 1
	}
	a.MaxFrames = sheetWidth / a.FrameWidth
	if a.MaxFrames < 1 {
		a.MaxFrames = 1
	}
}
