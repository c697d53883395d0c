package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/raycast"
)

// Errors returned by NewState for invalid configuration.
var (
	ErrInvalidSize     = errors.New("scene: screen size must be positive")
	ErrInvalidFallback = errors.New("scene: fallback distance must be positive")
	ErrInvalidStep     = errors.New("scene: move step must not be negative")
	ErrInvalidRect     = errors.New("scene: rectangle extent must not be negative")
)

// Defaults used by DefaultConfig.
const (
	DefaultWidth            = 1280
	DefaultHeight           = 720
	DefaultFallbackDistance = 1000
	DefaultMoveStep         = 5
)

// Config describes the static setup of a scene.
type Config struct {
	Width, Height int

	// Segment is the fixed obstacle segment.
	Segment raycast.Segment

	// Rect is the initial position of the movable rectangle.
	Rect raycast.Rect

	// FallbackDistance is how far the ray is drawn when nothing is struck.
	FallbackDistance float64

	// MoveStep is how far the rectangle moves per frame while a direction
	// key is held.
	MoveStep float64

	Policy TerminusPolicy
}

// DefaultConfig returns the configuration of the reference scene.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Segment:          raycast.Seg(800, 200, 850, 250),
		Rect:             raycast.Rect{X: 300, Y: 150, Width: 120, Height: 80},
		FallbackDistance: DefaultFallbackDistance,
		MoveStep:         DefaultMoveStep,
		Policy:           PolicyRectPrecedence,
	}
}

// Option configures a scene during creation.
//
// Example:
//
//	st, err := scene.NewState(
//	    scene.WithSize(800, 600),
//	    scene.WithPolicy(scene.PolicyNearest),
//	)
type Option func(*Config)

// WithSize sets the screen size. The ray origin starts at its center.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
	}
}

// WithSegment replaces the obstacle segment.
func WithSegment(s raycast.Segment) Option {
	return func(c *Config) {
		c.Segment = s
	}
}

// WithRect sets the initial rectangle.
func WithRect(r raycast.Rect) Option {
	return func(c *Config) {
		c.Rect = r
	}
}

// WithFallbackDistance sets how far the ray extends when nothing is struck.
func WithFallbackDistance(d float64) Option {
	return func(c *Config) {
		c.FallbackDistance = d
	}
}

// WithMoveStep sets the per-frame rectangle step.
func WithMoveStep(step float64) Option {
	return func(c *Config) {
		c.MoveStep = step
	}
}

// WithPolicy selects how the terminus is chosen when both obstacles are hit.
func WithPolicy(p TerminusPolicy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !(c.FallbackDistance > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFallback, c.FallbackDistance)
	}
	if !(c.MoveStep >= 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidStep, c.MoveStep)
	}
	if !(c.Rect.Width >= 0 && c.Rect.Height >= 0) {
		return fmt.Errorf("%w: got %vx%v", ErrInvalidRect, c.Rect.Width, c.Rect.Height)
	}
	if !c.Policy.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(c.Policy))
	}
	return nil
}
