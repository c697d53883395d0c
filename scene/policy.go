package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/raycast"
)

// ErrUnknownPolicy is returned for a policy name or value that is not defined.
var ErrUnknownPolicy = errors.New("scene: unknown terminus policy")

// TerminusPolicy decides which obstacle hit becomes the visible end of the ray.
type TerminusPolicy int

const (
	// PolicyRectPrecedence lets a rectangle hit override a segment hit even
	// when the segment is closer along the ray. This is the default.
	PolicyRectPrecedence TerminusPolicy = iota

	// PolicyNearest picks whichever hit lies closest to the ray origin.
	PolicyNearest
)

// String returns the policy name as accepted by ParsePolicy.
func (p TerminusPolicy) String() string {
	switch p {
	case PolicyRectPrecedence:
		return "rect"
	case PolicyNearest:
		return "nearest"
	default:
		return fmt.Sprintf("TerminusPolicy(%d)", int(p))
	}
}

func (p TerminusPolicy) valid() bool {
	return p == PolicyRectPrecedence || p == PolicyNearest
}

// ParsePolicy converts a policy name ("rect" or "nearest") into a TerminusPolicy.
func ParsePolicy(name string) (TerminusPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rect", "":
		return PolicyRectPrecedence, nil
	case "nearest":
		return PolicyNearest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Obstacle identifies what the ray terminus landed on.
type Obstacle int

const (
	ObstacleNone Obstacle = iota
	ObstacleSegment
	ObstacleRect
)

func (o Obstacle) String() string {
	switch o {
	case ObstacleSegment:
		return "segment"
	case ObstacleRect:
		return "rect"
	default:
		return "none"
	}
}

// choose applies the policy to the two candidate hits.
func (p TerminusPolicy) choose(seg, rect raycast.Hit) (raycast.Hit, Obstacle) {
	if p == PolicyNearest {
		hit := seg.Nearer(rect)
		switch {
		case !hit.OK:
			return raycast.Miss, ObstacleNone
		case hit == seg:
			return seg, ObstacleSegment
		default:
			return rect, ObstacleRect
		}
	}

	// Segment first, then the rectangle unconditionally overwrites on hit.
	hit, struck := raycast.Miss, ObstacleNone
	if seg.OK {
		hit, struck = seg, ObstacleSegment
	}
	if rect.OK {
		hit, struck = rect, ObstacleRect
	}
	return hit, struck
}
