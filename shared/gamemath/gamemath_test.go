package gamemath

import (
	"math"
	"testing"
)

func TestApplyGravityMatchesEulerAccumulation(t *testing.T) {
	const (
		gravity = 600.0
		dt      = 1.0 / 60
	)

	for _, steps := range []int{1, 10, 60, 137} {
		var vy, y float64
		for i := 0; i < steps; i++ {
			vy, y = ApplyGravity(vy, y, gravity, dt)
		}

		// Closed form of the same explicit Euler sequence:
		// v_n = g*dt*n, y_n = sum_{k=1..n} v_k*dt = g*dt^2*n(n+1)/2
		n := float64(steps)
		wantV := gravity * dt * n
		wantY := gravity * dt * dt * n * (n + 1) / 2

		if math.Abs(vy-wantV) > 1e-6 {
			t.Fatalf("%d steps: expected vy %.6f, got %.6f", steps, wantV, vy)
		}
		if math.Abs(y-wantY) > 1e-6 {
			t.Fatalf("%d steps: expected y %.6f, got %.6f", steps, wantY, y)
		}
		if math.Abs(vy-gravity*n*dt) > 1e-6 {
			t.Fatalf("%d steps: vy should equal gravity*t", steps)
		}
	}
}

func TestClampToFloor(t *testing.T) {
	cases := []struct {
		name       string
		vy, y      float64
		wantVy     float64
		wantY      float64
		wantLanded bool
	}{
		{"above", 120, 300, 120, 300, false},
		{"exact", 50, 458, 0, 458, true},
		{"below", 200, 470.5, 0, 458, true},
		{"rising_below", -10, 460, 0, 458, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vy, y, landed := ClampToFloor(c.vy, c.y, 458)
			if vy != c.wantVy || y != c.wantY || landed != c.wantLanded {
				t.Fatalf("expected (%v, %v, %v), got (%v, %v, %v)", c.wantVy, c.wantY, c.wantLanded, vy, y, landed)
			}
		})
	}
}

func TestFloorHoldsAfterLanding(t *testing.T) {
	vy, y := 0.0, 400.0
	landedAt := -1
	for i := 0; i < 120; i++ {
		vy, y = ApplyGravity(vy, y, 600, 1.0/60)
		var landed bool
		vy, y, landed = ClampToFloor(vy, y, 458)
		if landed && landedAt < 0 {
			landedAt = i
		}
		if landedAt >= 0 && (y != 458 || vy != 0) {
			t.Fatalf("frame %d: expected to rest on floor, got y=%v vy=%v", i, y, vy)
		}
	}
	if landedAt < 0 {
		t.Fatalf("expected to land within two seconds")
	}
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching_edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching_bottom", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"covering", Rect{X: -5, Y: -5, W: 30, H: 30}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Overlaps(c.other); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if got := c.other.Overlaps(base); got != c.want {
				t.Fatalf("overlap should be symmetric")
			}
		})
	}
}

func TestSourceRect(t *testing.T) {
	right := SourceRect(32, 3, 1, 32)
	if right != (Rect{X: 96, Y: 0, W: 32, H: 32}) {
		t.Fatalf("unexpected right facing source %+v", right)
	}
	if right.Mirrored() {
		t.Fatalf("right facing source should not be mirrored")
	}

	left := SourceRect(32, 3, -1, 32)
	if left != (Rect{X: 96, Y: 0, W: -32, H: 32}) {
		t.Fatalf("unexpected left facing source %+v", left)
	}
	if !left.Mirrored() {
		t.Fatalf("left facing source should be mirrored")
	}
	if left.Abs() != right {
		t.Fatalf("mirrored source should sample the same pixels, got %+v", left.Abs())
	}
}

func TestDestRect(t *testing.T) {
	got := DestRect(-64, 200, 32, 32, 6)
	if got != (Rect{X: -64, Y: 200, W: 192, H: 192}) {
		t.Fatalf("unexpected dest %+v", got)
	}
}

func TestHitboxes(t *testing.T) {
	w, h := HitboxSize(32, 32, 6, 2, 50)
	if w != 64 || h != 142 {
		t.Fatalf("player hitbox size: expected 64x142, got %vx%v", w, h)
	}
	w, h = HitboxSize(64, 64, 3, 2, 50)
	if w != 128 || h != 142 {
		t.Fatalf("skeleton hitbox size: expected 128x142, got %vx%v", w, h)
	}

	if x, y := PlayerHitboxOrigin(-64, 200, 32, 2); x != 0 || y != 200 {
		t.Fatalf("player hitbox origin: expected (0, 200), got (%v, %v)", x, y)
	}
	if x, _ := SkeletonHitboxOrigin(500, 200, 1, 50); x != 500 {
		t.Fatalf("right facing skeleton hitbox x: expected 500, got %v", x)
	}
	if x, _ := SkeletonHitboxOrigin(500, 200, -1, 50); x != 550 {
		t.Fatalf("left facing skeleton hitbox x: expected 550, got %v", x)
	}
}
