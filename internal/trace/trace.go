// Package trace produces scripted per-frame input for the headless driver.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/raycast"
	"github.com/gogpu/raycast/scene"
)

// ErrSyntax is wrapped by every parse error returned by Parse.
var ErrSyntax = errors.New("trace: syntax error")

// Orbit sweeps the pointer once around a circle of the given radius,
// starting to the right of center and moving clockwise on screen.
func Orbit(center raycast.Point, radius float64, frames int) []scene.Input {
	if frames <= 0 {
		return nil
	}
	inputs := make([]scene.Input, frames)
	for i := range inputs {
		a := 2 * math.Pi * float64(i) / float64(frames)
		inputs[i].Pointer = raycast.Pt(
			center.X+radius*math.Cos(a),
			center.Y+radius*math.Sin(a),
		)
	}
	return inputs
}

var heldKeys = map[string]scene.Keys{
	"left":  scene.KeyLeft,
	"right": scene.KeyRight,
	"up":    scene.KeyUp,
	"down":  scene.KeyDown,
}

// Parse reads one frame per line:
//
//	x y [token...]
//
// where x y is the pointer position and each token is one of
// left, right, up, down (held that frame), f (fullscreen key pressed) or
// resize=WxH. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]scene.Input, error) {
	var inputs []scene.Input
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lineNo, err)
		}
		inputs = append(inputs, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trace: read: %w", err)
	}
	return inputs, nil
}

func parseLine(line string) (scene.Input, error) {
	var in scene.Input
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return in, fmt.Errorf("want pointer x y, got %q", line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return in, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return in, fmt.Errorf("pointer y: %w", err)
	}
	in.Pointer = raycast.Pt(x, y)

	for _, tok := range fields[2:] {
		tok = strings.ToLower(tok)
		if k, ok := heldKeys[tok]; ok {
			in.Held |= k
			continue
		}
		switch {
		case tok == "f":
			in.Pressed |= scene.KeyFullscreen
		case strings.HasPrefix(tok, "resize="):
			size, err := parseSize(strings.TrimPrefix(tok, "resize="))
			if err != nil {
				return in, err
			}
			in.Resize = size
		default:
			return in, fmt.Errorf("unknown token %q", tok)
		}
	}
	return in, nil
}

func parseSize(s string) (scene.Size, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return scene.Size{}, fmt.Errorf("resize %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return scene.Size{}, fmt.Errorf("resize width: %w", err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return scene.Size{}, fmt.Errorf("resize height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return scene.Size{}, fmt.Errorf("resize %dx%d: size must be positive", w, h)
	}
	return scene.Size{Width: w, Height: h}, nil
}
