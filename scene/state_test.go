package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/raycast"
)

func newState(t *testing.T, opts ...Option) State {
	t.Helper()
	st, err := NewState(opts...)
	if err != nil {
		t.Fatalf("NewState() = %v", err)
	}
	return st
}

func TestNewState_Defaults(t *testing.T) {
	st := newState(t)

	if st.Width != DefaultWidth || st.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", st.Width, st.Height, DefaultWidth, DefaultHeight)
	}
	if st.Source != raycast.Pt(640, 360) {
		t.Errorf("Source = %v, want screen center (640, 360)", st.Source)
	}
	if st.Ray.Origin != st.Source {
		t.Errorf("Ray.Origin = %v, want Source", st.Ray.Origin)
	}
	if st.Config().Policy != PolicyRectPrecedence {
		t.Errorf("default policy = %v, want rect", st.Config().Policy)
	}
	if st.Struck != ObstacleNone || st.Frame != 0 {
		t.Errorf("initial state struck=%v frame=%d", st.Struck, st.Frame)
	}
}

func TestNewState_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"zero width", WithSize(0, 100), ErrInvalidSize},
		{"negative height", WithSize(100, -1), ErrInvalidSize},
		{"zero fallback", WithFallbackDistance(0), ErrInvalidFallback},
		{"NaN fallback", WithFallbackDistance(math.NaN()), ErrInvalidFallback},
		{"negative step", WithMoveStep(-1), ErrInvalidStep},
		{"negative rect", WithRect(raycast.Rect{Width: -1, Height: 10}), ErrInvalidRect},
		{"unknown policy", WithPolicy(TerminusPolicy(7)), ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewState(tt.opt)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewState() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdate_Terminus(t *testing.T) {
	tests := []struct {
		name     string
		pointer  raycast.Point
		struck   Obstacle
		terminus raycast.Point
	}{
		{"segment midpoint", raycast.Pt(825, 225), ObstacleSegment, raycast.Pt(825, 225)},
		{"rectangle right face", raycast.Pt(360, 190), ObstacleRect, raycast.Pt(420, 190+170*(420-360.0)/280)},
		{"nothing above", raycast.Pt(640, 0), ObstacleNone, raycast.Pt(640, 360-DefaultFallbackDistance)},
		{"nothing right", raycast.Pt(1000, 360), ObstacleNone, raycast.Pt(640+DefaultFallbackDistance, 360)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Update(newState(t), Input{Pointer: tt.pointer})
			if st.Struck != tt.struck {
				t.Fatalf("Struck = %v, want %v", st.Struck, tt.struck)
			}
			if !st.Terminus.Approx(tt.terminus, 1e-6) {
				t.Errorf("Terminus = %v, want %v", st.Terminus, tt.terminus)
			}
		})
	}
}

// A rectangle sitting behind the segment along the same ray.
var behindSegment = raycast.Rect{X: 880, Y: 140, Width: 60, Height: 60}

func TestUpdate_RectPrecedence(t *testing.T) {
	st := Update(newState(t, WithRect(behindSegment)), Input{Pointer: raycast.Pt(825, 225)})

	if !st.SegmentHit.OK || !st.RectHit.OK {
		t.Fatalf("expected both obstacles hit, segment=%v rect=%v", st.SegmentHit.OK, st.RectHit.OK)
	}
	if st.SegmentHit.T >= st.RectHit.T {
		t.Fatalf("segment should be nearer: segment T=%v rect T=%v", st.SegmentHit.T, st.RectHit.T)
	}
	if st.Struck != ObstacleRect {
		t.Errorf("Struck = %v, want rect", st.Struck)
	}
	want := raycast.Pt(880, 360-135.0/185*240)
	if !st.Terminus.Approx(want, 1e-6) {
		t.Errorf("Terminus = %v, want %v", st.Terminus, want)
	}
}

func TestUpdate_NearestPolicy(t *testing.T) {
	st := Update(
		newState(t, WithRect(behindSegment), WithPolicy(PolicyNearest)),
		Input{Pointer: raycast.Pt(825, 225)},
	)

	if st.Struck != ObstacleSegment {
		t.Errorf("Struck = %v, want segment", st.Struck)
	}
	if !st.Terminus.Approx(raycast.Pt(825, 225), 1e-6) {
		t.Errorf("Terminus = %v, want (825, 225)", st.Terminus)
	}

	// Pointing away from both obstacles nothing is struck.
	st = Update(st, Input{Pointer: raycast.Pt(360, 190)})
	if st.Struck != ObstacleNone {
		t.Errorf("Struck = %v, want none", st.Struck)
	}
}

func TestUpdate_Resize(t *testing.T) {
	st := Update(newState(t), Input{
		Pointer: raycast.Pt(100, 100),
		Resize:  Size{Width: 801, Height: 600},
	})

	if st.Width != 801 || st.Height != 600 {
		t.Errorf("size = %dx%d, want 801x600", st.Width, st.Height)
	}
	if st.Source != raycast.Pt(400, 300) {
		t.Errorf("Source = %v, want (400, 300)", st.Source)
	}
	if st.Ray.Origin != st.Source || st.Triangle.Source != st.Source {
		t.Errorf("ray and triangle must start at the re-anchored origin, got %v / %v", st.Ray.Origin, st.Triangle.Source)
	}

	// A zero or partial size is not a resize.
	again := Update(st, Input{Pointer: raycast.Pt(100, 100), Resize: Size{Width: 10}})
	if again.Width != 801 || again.Source != st.Source {
		t.Errorf("partial resize applied: %dx%d origin %v", again.Width, again.Height, again.Source)
	}
}

func TestUpdate_MoveRect(t *testing.T) {
	tests := []struct {
		name string
		held Keys
		want raycast.Rect
	}{
		{"none", 0, raycast.Rect{X: 300, Y: 150, Width: 120, Height: 80}},
		{"right", KeyRight, raycast.Rect{X: 305, Y: 150, Width: 120, Height: 80}},
		{"left up", KeyLeft | KeyUp, raycast.Rect{X: 295, Y: 145, Width: 120, Height: 80}},
		{"down", KeyDown, raycast.Rect{X: 300, Y: 155, Width: 120, Height: 80}},
		{"left right cancel", KeyLeft | KeyRight, raycast.Rect{X: 300, Y: 150, Width: 120, Height: 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Update(newState(t), Input{Pointer: raycast.Pt(0, 0), Held: tt.held})
			if st.Rect != tt.want {
				t.Errorf("Rect = %+v, want %+v", st.Rect, tt.want)
			}
		})
	}
}

func TestUpdate_MoveRectAcrossFrames(t *testing.T) {
	st := newState(t, WithMoveStep(2))
	for range 10 {
		st = Update(st, Input{Pointer: raycast.Pt(0, 0), Held: KeyRight})
	}
	if st.Rect.X != 320 {
		t.Errorf("Rect.X after 10 frames = %v, want 320", st.Rect.X)
	}
	if st.Frame != 10 {
		t.Errorf("Frame = %d, want 10", st.Frame)
	}
}

func TestUpdate_Fullscreen(t *testing.T) {
	st := newState(t)
	st = Update(st, Input{Pressed: KeyFullscreen})
	if !st.Fullscreen {
		t.Fatal("first press should enter fullscreen")
	}
	st = Update(st, Input{Held: KeyFullscreen})
	if !st.Fullscreen {
		t.Fatal("holding the key must not toggle again")
	}
	st = Update(st, Input{Pressed: KeyFullscreen})
	if st.Fullscreen {
		t.Error("second press should leave fullscreen")
	}
}

func TestUpdate_Pure(t *testing.T) {
	st := newState(t)
	in := Input{Pointer: raycast.Pt(831, 219), Held: KeyDown}

	first := Update(st, in)
	second := Update(st, in)
	if first != second {
		t.Errorf("Update is not deterministic:\n%+v\n%+v", first, second)
	}
	if st.Frame != 0 || st.Rect != DefaultConfig().Rect {
		t.Error("Update must not modify its input state")
	}
}

func TestUpdate_PointerAtOrigin(t *testing.T) {
	st := newState(t)
	st = Update(st, Input{Pointer: st.Source})

	if !st.Ray.Direction.IsNaN() {
		t.Fatalf("direction = %v, want NaN for a degenerate triangle", st.Ray.Direction)
	}
	if st.SegmentHit.OK || st.RectHit.OK || st.Struck != ObstacleNone {
		t.Errorf("NaN direction must not hit anything: %+v %+v %v", st.SegmentHit, st.RectHit, st.Struck)
	}
	if !st.Terminus.IsNaN() {
		t.Errorf("Terminus = %v, want NaN", st.Terminus)
	}
}

func TestState_Stats(t *testing.T) {
	st := Update(newState(t), Input{Pointer: raycast.Pt(640+30, 360-40)})
	got := st.Stats()

	if math.Abs(got.Cos-0.6) > 1e-12 || math.Abs(got.Sin+0.8) > 1e-12 {
		t.Errorf("Stats() = %+v, want cos 0.6 sin -0.8", got)
	}
	if math.Abs(got.Tan+4.0/3) > 1e-12 {
		t.Errorf("Tan = %v, want -4/3", got.Tan)
	}

	// Straight below the origin the tangent is infinite but the ray is fine.
	st = Update(st, Input{Pointer: raycast.Pt(640, 500)})
	if !math.IsInf(st.Stats().Tan, 1) {
		t.Errorf("Tan = %v, want +Inf", st.Stats().Tan)
	}
	if st.Ray.Direction != raycast.Pt(0, 1) {
		t.Errorf("direction = %v, want (0, 1)", st.Ray.Direction)
	}
}
