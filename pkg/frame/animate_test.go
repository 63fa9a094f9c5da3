package frame

import (
	"testing"

	"github.com/lucidcoons/meshgrad/pkg/meshgrid"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

func TestAnimatePointZeroAmplitudeIsNoop(t *testing.T) {
	d := AnimatePoint(12.5, 7, 0)
	if d.X != 0 || d.Y != 0 {
		t.Errorf("zero amplitude should produce zero displacement, got %v", d)
	}
}

func TestAnimatePointDeterministic(t *testing.T) {
	a := AnimatePoint(3, 42, 8)
	b := AnimatePoint(3, 42, 8)
	if a != b {
		t.Errorf("AnimatePoint is not deterministic for the same inputs: %v != %v", a, b)
	}
}

func TestAnimatedGridPreservesShape(t *testing.T) {
	g := meshgrid.NewGrid(2, 2)
	animated := animatedGrid(g, 1.5, 8)

	if animated.Rows != g.Rows || animated.Cols != g.Cols {
		t.Fatalf("animatedGrid changed dimensions: got %dx%d, want %dx%d", animated.Rows, animated.Cols, g.Rows, g.Cols)
	}
	g.Each(func(row, col int, p vec2.Vec2) {
		if _, ok := animated.Point(row, col); !ok {
			t.Errorf("animated grid missing point (%d,%d) present in the original", row, col)
		}
	})
}

func TestMappedGridMapsEveryPoint(t *testing.T) {
	g := meshgrid.NewGrid(1, 1)
	target := Target{Width: 100, Height: 100, Margins: Margins{}}
	mapped := mappedGrid(g, target)

	g.Each(func(row, col int, p vec2.Vec2) {
		want := vec2.V2(target.MapX(p.X), target.MapY(p.Y))
		got, ok := mapped.Point(row, col)
		if !ok {
			t.Fatalf("mapped grid missing point (%d,%d)", row, col)
		}
		if got != want {
			t.Errorf("mapped point (%d,%d) = %v, want %v", row, col, got, want)
		}
	})
}
