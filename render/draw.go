// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/raycast"
	"github.com/gogpu/raycast/scene"
)

// Palette and stroke widths of the scene.
var (
	Background   = gg.Black
	AdjacentLeg  = gg.Blue
	OppositeLeg  = gg.Green
	Hypotenuse   = gg.Red
	ObstacleLine = gg.White
	OriginDot    = gg.White
	RectOutline  = gg.RGB(1, 0.6, 0.1)
	RayLine      = gg.Yellow
)

const (
	lineWidth     = 2
	originRadius  = 5
	statsX        = 20
	statsY        = 20
	statsLineStep = 20
)

// ErrDraw wraps every failure reported by the canvas during Draw.
var ErrDraw = errors.New("render: draw failed")

// Draw forwards the draw requests for one frame of st to c.
//
// Order: background, pointer triangle, readout text (only when face is
// non-nil), origin dot, obstacle segment, rectangle outline, ray. The ray is
// skipped when its terminus is undefined (pointer on the origin).
func Draw(c Canvas, st scene.State, face text.Face) error {
	d := drawer{c: c}

	c.ClearWithColor(Background)
	c.SetLineWidth(lineWidth)

	tri := st.Triangle
	d.line(tri.Source, tri.Corner, AdjacentLeg)
	d.line(tri.Corner, tri.Target, OppositeLeg)
	d.line(tri.Target, tri.Source, Hypotenuse)

	if face != nil {
		c.SetFont(face)
		colors := [3]gg.RGBA{AdjacentLeg, OppositeLeg, Hypotenuse}
		for i, line := range StatsLines(st.Stats()) {
			setColor(c, colors[i])
			c.DrawString(line, statsX, float64(statsY+statsLineStep*(i+1)))
		}
	}

	setColor(c, OriginDot)
	c.DrawCircle(st.Source.X, st.Source.Y, originRadius)
	d.record("origin", c.Fill())

	d.line(st.Segment.Start, st.Segment.End, ObstacleLine)

	setColor(c, RectOutline)
	c.DrawRectangle(st.Rect.X, st.Rect.Y, st.Rect.Width, st.Rect.Height)
	d.record("rect", c.Stroke())

	if !st.Terminus.IsNaN() {
		d.line(st.Ray.Origin, st.Terminus, RayLine)
	}

	if len(d.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrDraw, errors.Join(d.errs...))
	}
	return nil
}

type drawer struct {
	c    Canvas
	errs []error
}

func (d *drawer) line(a, b raycast.Point, col gg.RGBA) {
	setColor(d.c, col)
	d.c.DrawLine(a.X, a.Y, b.X, b.Y)
	d.record("line", d.c.Stroke())
}

func (d *drawer) record(what string, err error) {
	if err != nil {
		raycast.Logger().Warn("render: draw call failed", "shape", what, "err", err)
		d.errs = append(d.errs, fmt.Errorf("%s: %w", what, err))
	}
}

func setColor(c Canvas, col gg.RGBA) {
	c.SetRGBA(col.R, col.G, col.B, col.A)
}
