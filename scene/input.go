package scene

import (
	"strings"

	"github.com/gogpu/raycast"
)

// Keys is a set of keyboard keys.
type Keys uint8

const (
	KeyLeft Keys = 1 << iota
	KeyRight
	KeyUp
	KeyDown
	KeyFullscreen
)

// Has reports whether every key in k is in the set.
func (s Keys) Has(k Keys) bool {
	return s&k == k
}

func (s Keys) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		key  Keys
		name string
	}{
		{KeyLeft, "left"},
		{KeyRight, "right"},
		{KeyUp, "up"},
		{KeyDown, "down"},
		{KeyFullscreen, "fullscreen"},
	}
	var parts []string
	for _, n := range names {
		if s.Has(n.key) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Size is a screen size in pixels. The zero Size means "unchanged".
type Size struct {
	Width, Height int
}

// IsZero reports whether s carries no resize.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Input is everything the windowing layer reports for one frame.
type Input struct {
	// Pointer is the pointer position in screen coordinates.
	Pointer raycast.Point

	// Held are the keys down during this frame.
	Held Keys

	// Pressed are the keys that went down this frame.
	Pressed Keys

	// Resize is the new screen size if the window was resized.
	Resize Size
}
