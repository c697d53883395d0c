// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Canvas is the subset of a gg drawing context the scene needs.
//
// *gg.Context implements Canvas directly. A *recording.Recorder is adapted
// with Recorder.
type Canvas interface {
	ClearWithColor(c gg.RGBA)
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetFont(face text.Face)

	DrawLine(x1, y1, x2, y2 float64)
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	DrawString(s string, x, y float64)

	Stroke() error
	Fill() error
}

var _ Canvas = (*gg.Context)(nil)

// RecorderCanvas adapts a recording.Recorder to Canvas. The recorder never
// fails while recording; errors surface at playback.
type RecorderCanvas struct {
	*recording.Recorder
}

var _ Canvas = RecorderCanvas{}

// Recorder wraps rec so it can be passed to Draw.
func Recorder(rec *recording.Recorder) RecorderCanvas {
	return RecorderCanvas{Recorder: rec}
}

// Stroke records a stroke of the current path.
func (c RecorderCanvas) Stroke() error {
	c.Recorder.Stroke()
	return nil
}

// Fill records a fill of the current path.
func (c RecorderCanvas) Fill() error {
	c.Recorder.Fill()
	return nil
}
