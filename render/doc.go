// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render forwards a scene frame to a gg drawing surface.
//
// [Draw] issues the line, circle, rectangle and text calls for one
// [scene.State]. The target is any [Canvas]: a *gg.Context rasterizes
// immediately, while [Recorder] wraps a *recording.Recorder so the frame
// can be played back later to any registered recording backend.
//
//	dc := gg.NewContext(st.Width, st.Height)
//	if err := render.Draw(dc, st, face); err != nil {
//	    return err
//	}
//	return dc.SavePNG("frame.png")
package render
