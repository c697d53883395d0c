// Package scene drives the interactive ray scene one frame at a time.
//
// A [State] holds everything that lives across frames: the screen size and
// the ray origin anchored at its center, the pointer, the fixed obstacle
// segment and the movable rectangle. [Update] folds one frame of [Input]
// into a State and recomputes the ray direction from the pointer, both
// obstacle hits and the visible terminus:
//
//	st, err := scene.NewState()
//	if err != nil {
//	    return err
//	}
//	for _, in := range inputs {
//	    st = scene.Update(st, in)
//	    draw(st.Ray.Origin, st.Terminus)
//	}
//
// When both obstacles are hit, the [TerminusPolicy] decides which one ends
// the ray. [PolicyRectPrecedence] (the default) always prefers the
// rectangle; [PolicyNearest] prefers the closer hit. When nothing is hit the
// ray is extended to Config.FallbackDistance for display.
package scene
