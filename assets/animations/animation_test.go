package animations

import (
	"math"
	"testing"
)

func TestAnimatorAdvanceAccumulates(t *testing.T) {
	cases := []struct {
		name      string
		numFrames int
		sheet     int
		dts       []float64
		wantFrame int
		wantTimer float64
	}{
		{"below_threshold", 7, 224, []float64{0.05, 0.04}, 0, 0.09},
		{"exact_threshold", 7, 224, []float64{0.1}, 1, 0},
		{"sixtieths", 7, 224, repeat(1.0/60, 6), 1, 0},
		{"large_step", 7, 224, []float64{0.35}, 3, 0.05},
		{"mixed", 8, 256, []float64{0.07, 0.07, 0.07, 0.2}, 4, 0.01},
		{"wraps", 5, 160, repeat(0.1, 12), 2, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimator(32)
			a.NumFrames = c.numFrames

			var sum float64
			for _, dt := range c.dts {
				a.Advance(dt, c.sheet)
				sum += dt
			}

			steps := int(math.Floor(sum/DefaultFrameDuration + 1e-9))
			if want := steps % a.MaxFrames; a.Frame != want {
				t.Fatalf("frame from sum: want %d, got %d", want, a.Frame)
			}
			if a.Frame != c.wantFrame {
				t.Fatalf("expected frame %d, got %d", c.wantFrame, a.Frame)
			}
			if math.Abs(a.Timer-c.wantTimer) > 1e-6 {
				t.Fatalf("expected timer %.6f, got %.6f", c.wantTimer, a.Timer)
			}
		})
	}
}

func TestAnimatorFrameStaysInRange(t *testing.T) {
	a := NewAnimator(32)
	for _, frames := range []int{8, 5, 12, 3, 7} {
		a.NumFrames = frames
		sheet := frames * 32
		for i := 0; i < 100; i++ {
			a.Advance(0.037, sheet)
			if a.Frame < 0 || a.Frame >= a.MaxFrames {
				t.Fatalf("frame %d outside [0, %d) with %d frames", a.Frame, a.MaxFrames, frames)
			}
		}
	}
}

func TestAnimatorShrinkingSheetWraps(t *testing.T) {
	a := NewAnimator(32)
	a.NumFrames = 8
	for i := 0; i < 7; i++ {
		a.Advance(0.1, 256)
	}
	if a.Frame != 7 {
		t.Fatalf("expected frame 7 on the run sheet, got %d", a.Frame)
	}

	// Switching to a 5 frame sheet keeps the index and wraps it.
	a.NumFrames = 5
	a.Advance(0, 160)
	if a.Frame != 2 {
		t.Fatalf("expected frame 2 after wrap, got %d", a.Frame)
	}
}

func TestAnimatorLastFrameSignal(t *testing.T) {
	a := NewAnimator(32)
	a.NumFrames = 6
	sheet := 6 * 32

	var signals []int
	for step := 1; step <= 12; step++ {
		if a.Advance(0.1, sheet) {
			signals = append(signals, step)
		}
	}

	// Frame 5 is reached on steps 5 and 11.
	want := []int{5, 11}
	if len(signals) != len(want) {
		t.Fatalf("expected signals on steps %v, got %v", want, signals)
	}
	for i := range want {
		if signals[i] != want[i] {
			t.Fatalf("expected signals on steps %v, got %v", want, signals)
		}
	}
}

func TestAnimatorLastFrameSignalWithinLargeStep(t *testing.T) {
	a := NewAnimator(32)
	a.NumFrames = 4

	// One call crossing frames 1, 2, 3 and back to 0.
	if !a.Advance(0.4, 128) {
		t.Fatalf("expected last frame signal while passing frame 3")
	}
	if a.Frame != 0 {
		t.Fatalf("expected frame 0, got %d", a.Frame)
	}
}

func TestAnimatorDerivedWidths(t *testing.T) {
	cases := []struct {
		name          string
		numFrames     int
		sheet         int
		wantWidth     int
		wantMaxFrames int
	}{
		{"even", 7, 224, 32, 7},
		{"truncated", 6, 350, 58, 6},
		{"rounding_artifact", 4, 10, 2, 5},
		{"zero_frames", 0, 64, 64, 1},
		{"narrow_sheet", 8, 4, 1, 4},
		{"empty_sheet", 3, 0, 1, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimator(32)
			a.NumFrames = c.numFrames
			a.Advance(0, c.sheet)
			if a.FrameWidth != c.wantWidth {
				t.Fatalf("expected frame width %d, got %d", c.wantWidth, a.FrameWidth)
			}
			if a.MaxFrames != c.wantMaxFrames {
				t.Fatalf("expected max frames %d, got %d", c.wantMaxFrames, a.MaxFrames)
			}
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
