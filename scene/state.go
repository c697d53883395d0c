package scene

import (
	"log/slog"

	"github.com/gogpu/raycast"
)

// State is the per-frame scene: inputs folded in, ray and hits derived.
// It is a plain value; Update returns a new State and never touches globals.
type State struct {
	cfg Config

	Width, Height int
	Fullscreen    bool

	// Source is the ray origin, anchored to the screen center.
	Source  raycast.Point
	Pointer raycast.Point

	Segment raycast.Segment
	Rect    raycast.Rect

	Triangle raycast.Triangle
	Ray      raycast.Ray

	SegmentHit raycast.Hit
	RectHit    raycast.Hit

	// Terminus is where the visible ray ends. Struck reports which obstacle
	// produced it, ObstacleNone when the fallback distance was used.
	Terminus raycast.Point
	Struck   Obstacle

	Frame uint64
}

// NewState validates the configuration and returns the initial scene.
// The ray points right until the first Update.
func NewState(opts ...Option) (State, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return State{}, err
	}

	center := screenCenter(cfg.Width, cfg.Height)
	st := State{
		cfg:      cfg,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Source:   center,
		Pointer:  center,
		Segment:  cfg.Segment,
		Rect:     cfg.Rect,
		Triangle: raycast.NewTriangle(center, center),
		Ray:      raycast.Ray{Origin: center, Direction: raycast.Pt(1, 0)},
	}
	st.Terminus = st.Ray.At(cfg.FallbackDistance)
	return st, nil
}

// Config returns the configuration the state was created with.
func (s State) Config() Config {
	return s.cfg
}

// Stats returns the trigonometric readout of the pointer triangle.
// It is derived from the triangle, independent of the ray used for hits.
func (s State) Stats() raycast.Trig {
	return s.Triangle.Ratios()
}

// Update folds one frame of input into s and returns the resulting state.
//
// Order: resize (re-anchor the origin), fullscreen toggle, rectangle
// movement, direction from the pointer, obstacle queries, terminus policy.
func Update(s State, in Input) State {
	if in.Resize.Width > 0 && in.Resize.Height > 0 {
		s.Width, s.Height = in.Resize.Width, in.Resize.Height
		s.Source = screenCenter(s.Width, s.Height)
		raycast.Logger().Debug("scene resized",
			"width", s.Width, "height", s.Height, "origin", s.Source)
	}

	if in.Pressed.Has(KeyFullscreen) {
		s.Fullscreen = !s.Fullscreen
	}

	s.Rect = s.Rect.Translate(moveDelta(in.Held, s.cfg.MoveStep))

	s.Pointer = in.Pointer
	s.Triangle = raycast.NewTriangle(s.Source, s.Pointer)
	s.Ray = raycast.Ray{Origin: s.Source, Direction: s.Triangle.Direction()}

	s.SegmentHit = raycast.IntersectSegment(s.Ray, s.Segment)
	s.RectHit = raycast.IntersectRect(s.Ray, s.Rect)

	hit, struck := s.cfg.Policy.choose(s.SegmentHit, s.RectHit)
	if struck != s.Struck {
		raycast.Logger().Debug("terminus obstacle changed",
			slog.Uint64("frame", s.Frame),
			slog.String("from", s.Struck.String()),
			slog.String("to", struck.String()),
			slog.String("policy", s.cfg.Policy.String()))
	}
	s.Struck = struck
	if hit.OK {
		s.Terminus = hit.Point
	} else {
		s.Terminus = s.Ray.At(s.cfg.FallbackDistance)
	}

	s.Frame++
	return s
}

func moveDelta(held Keys, step float64) (dx, dy float64) {
	if held.Has(KeyLeft) {
		dx -= step
	}
	if held.Has(KeyRight) {
		dx += step
	}
	if held.Has(KeyUp) {
		dy -= step
	}
	if held.Has(KeyDown) {
		dy += step
	}
	return dx, dy
}

// screenCenter uses integer halving, so odd sizes anchor on the lower pixel.
func screenCenter(width, height int) raycast.Point {
	return raycast.Pt(float64(width/2), float64(height/2))
}
