package trace

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/raycast"
	"github.com/gogpu/raycast/scene"
)

func TestOrbit(t *testing.T) {
	center := raycast.Pt(640, 360)
	inputs := Orbit(center, 100, 4)
	want := []raycast.Point{
		raycast.Pt(740, 360),
		raycast.Pt(640, 460),
		raycast.Pt(540, 360),
		raycast.Pt(640, 260),
	}
	if len(inputs) != len(want) {
		t.Fatalf("len = %d, want %d", len(inputs), len(want))
	}
	for i, in := range inputs {
		if !in.Pointer.Approx(want[i], 1e-9) {
			t.Errorf("frame %d pointer = %v, want %v", i, in.Pointer, want[i])
		}
		if d := in.Pointer.Distance(center); math.Abs(d-100) > 1e-9 {
			t.Errorf("frame %d off the circle: distance %v", i, d)
		}
	}

	if got := Orbit(center, 100, 0); got != nil {
		t.Errorf("Orbit with zero frames = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	src := `# pointer sweep
825 225

100.5 -3 right up
0 0 f resize=800x600
1 2 LEFT down
`
	inputs, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	want := []scene.Input{
		{Pointer: raycast.Pt(825, 225)},
		{Pointer: raycast.Pt(100.5, -3), Held: scene.KeyRight | scene.KeyUp},
		{Pointer: raycast.Pt(0, 0), Pressed: scene.KeyFullscreen, Resize: scene.Size{Width: 800, Height: 600}},
		{Pointer: raycast.Pt(1, 2), Held: scene.KeyLeft | scene.KeyDown},
	}
	if len(inputs) != len(want) {
		t.Fatalf("got %d inputs, want %d", len(inputs), len(want))
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("input %d = %+v, want %+v", i, inputs[i], want[i])
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line string
	}{
		{"missing y", "10\n", "line 1"},
		{"bad x", "a 1\n", "line 1"},
		{"bad y", "# c\n1 b\n", "line 2"},
		{"unknown token", "1 1 jump\n", "line 1"},
		{"bad resize", "1 1 resize=800\n", "line 1"},
		{"zero resize", "1 1\n1 1 resize=0x600\n", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Parse() error = %v, want ErrSyntax", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q does not name %s", err, tt.line)
			}
		})
	}
}
