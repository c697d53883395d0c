// Command raycast renders the ray scene headlessly, one PNG per frame.
//
// The pointer either orbits the screen center or follows a trace file
// (see internal/trace for the format). Each frame the ray is recomputed
// from the pointer and clipped to the obstacle it strikes.
//
// Usage:
//
//	raycast -frames 120 -out frames
//	raycast -trace session.txt -policy nearest -mode recording
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // Built-in raster backend
	"github.com/gogpu/gg/text"
	"github.com/gogpu/raycast"
	"github.com/gogpu/raycast/internal/trace"
	"github.com/gogpu/raycast/render"
	"github.com/gogpu/raycast/scene"
)

type options struct {
	width, height     int
	fsWidth, fsHeight int
	frames            int
	tracePath         string
	outDir            string
	policy            string
	mode              string
	orbitRadius       float64
	noText            bool
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "width", scene.DefaultWidth, "window width")
	flag.IntVar(&opts.height, "height", scene.DefaultHeight, "window height")
	flag.IntVar(&opts.fsWidth, "fs-width", 1920, "fullscreen width")
	flag.IntVar(&opts.fsHeight, "fs-height", 1080, "fullscreen height")
	flag.IntVar(&opts.frames, "frames", 60, "number of frames (orbit length, or trace limit when > 0)")
	flag.StringVar(&opts.tracePath, "trace", "", "input trace file (default: pointer orbits the center)")
	flag.StringVar(&opts.outDir, "out", "frames", "output directory")
	flag.StringVar(&opts.policy, "policy", "rect", "terminus policy: rect or nearest")
	flag.StringVar(&opts.mode, "mode", "png", "output mode: png or recording")
	flag.Float64Var(&opts.orbitRadius, "radius", 300, "orbit radius when no trace is given")
	flag.BoolVar(&opts.noText, "no-text", false, "skip the trigonometry readout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	raycast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		log.Fatalf("raycast: %v", err)
	}
}

func run(opts options) error {
	policy, err := scene.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}
	st, err := scene.NewState(
		scene.WithSize(opts.width, opts.height),
		scene.WithPolicy(policy),
	)
	if err != nil {
		return err
	}

	inputs, err := loadInputs(opts, st.Source)
	if err != nil {
		return err
	}

	out, err := newOutput(opts.mode)
	if err != nil {
		return err
	}
	defer out.close()

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var face text.Face
	if !opts.noText {
		src, err := render.NewFontSource()
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()
		face = src.Face(render.OverlayFontSize)
	}

	d := driver{fullscreen: scene.Size{Width: opts.fsWidth, Height: opts.fsHeight}}
	struck := make(map[scene.Obstacle]int)
	for i, in := range inputs {
		st = d.step(st, in)
		struck[st.Struck]++

		path := filepath.Join(opts.outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := out.write(st, face, path); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	raycast.Logger().Info("frames written",
		"count", len(inputs),
		"dir", opts.outDir,
		"mode", opts.mode,
		"policy", policy.String(),
		"segment", struck[scene.ObstacleSegment],
		"rect", struck[scene.ObstacleRect],
		"none", struck[scene.ObstacleNone])
	return nil
}

func loadInputs(opts options, center raycast.Point) ([]scene.Input, error) {
	if opts.tracePath == "" {
		return trace.Orbit(center, opts.orbitRadius, opts.frames), nil
	}
	f, err := os.Open(opts.tracePath)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	inputs, err := trace.Parse(f)
	if err != nil {
		return nil, err
	}
	if opts.frames > 0 && len(inputs) > opts.frames {
		inputs = inputs[:opts.frames]
	}
	return inputs, nil
}

// driver stands in for the window system: a fullscreen toggle is answered
// with a resize notification on the following frame.
type driver struct {
	fullscreen scene.Size
	windowed   scene.Size
	pending    scene.Size
}

func (d *driver) step(st scene.State, in scene.Input) scene.State {
	if in.Resize.IsZero() {
		in.Resize = d.pending
	}
	d.pending = scene.Size{}

	wasFullscreen := st.Fullscreen
	st = scene.Update(st, in)
	switch {
	case st.Fullscreen && !wasFullscreen:
		d.windowed = scene.Size{Width: st.Width, Height: st.Height}
		d.pending = d.fullscreen
	case !st.Fullscreen && wasFullscreen:
		d.pending = d.windowed
	}
	if !d.pending.IsZero() {
		raycast.Logger().Debug("fullscreen toggled",
			"fullscreen", st.Fullscreen, "next_size", fmt.Sprintf("%dx%d", d.pending.Width, d.pending.Height))
	}
	return st
}

// output writes one rendered frame to a file.
type output interface {
	write(st scene.State, face text.Face, path string) error
	close()
}

func newOutput(mode string) (output, error) {
	switch mode {
	case "png":
		return &pngOutput{}, nil
	case "recording":
		if !recording.IsRegistered("raster") {
			return nil, errors.New("raster recording backend not registered")
		}
		return recordingOutput{}, nil
	default:
		return nil, fmt.Errorf("unknown output mode %q", mode)
	}
}

// pngOutput rasterizes directly into a reused gg.Context.
type pngOutput struct {
	dc *gg.Context
}

func (o *pngOutput) write(st scene.State, face text.Face, path string) error {
	switch {
	case o.dc == nil:
		o.dc = gg.NewContext(st.Width, st.Height)
	case o.dc.Width() != st.Width || o.dc.Height() != st.Height:
		if err := o.dc.Resize(st.Width, st.Height); err != nil {
			return fmt.Errorf("resize canvas: %w", err)
		}
	}
	if err := render.Draw(o.dc, st, face); err != nil {
		return err
	}
	return o.dc.SavePNG(path)
}

func (o *pngOutput) close() {
	if o.dc != nil {
		_ = o.dc.Close()
	}
}

// recordingOutput records each frame and plays it back through the raster
// recording backend.
type recordingOutput struct{}

func (recordingOutput) write(st scene.State, face text.Face, path string) error {
	rec := recording.NewRecorder(st.Width, st.Height)
	if err := render.Draw(render.Recorder(rec), st, face); err != nil {
		return err
	}
	r := rec.FinishRecording()

	backend, err := recording.NewBackend("raster")
	if err != nil {
		return err
	}
	if err := r.Playback(backend); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return errors.New("raster backend cannot write files")
	}
	raycast.Logger().Debug("frame recorded", "commands", len(r.Commands()), "path", path)
	return fb.SaveToFile(path)
}

func (recordingOutput) close() {}
