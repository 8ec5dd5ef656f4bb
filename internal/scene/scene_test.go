package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"soft-raster/internal/raster"
)

func TestDemoAttributeCombinations(t *testing.T) {
	polys := Demo()
	if len(polys) != 3 {
		t.Fatalf("demo scene has %d polygons, want 3", len(polys))
	}

	if polys[0].Colours == nil || polys[0].TexCoords == nil {
		t.Error("first polygon should carry both colours and tex coords")
	}
	if polys[1].Colours == nil || polys[1].TexCoords != nil {
		t.Error("second polygon should carry colours only")
	}
	if polys[2].Colours != nil || polys[2].TexCoords == nil {
		t.Error("third polygon should carry tex coords only")
	}
}

func TestDemoWinding(t *testing.T) {
	// Every polygon must keep the positive winding the inside test expects,
	// otherwise it silently rasterizes to nothing.
	for i, p := range Demo() {
		w, inside := p.TestInside(centroid(p.Vertices))
		if !inside {
			t.Errorf("polygon %d does not contain its own centroid; winding flipped?", i)
			continue
		}
		sum := w[0] + w[1] + w[2]
		if math32.Abs(sum-1) > 1e-4 {
			t.Errorf("polygon %d centroid weights sum to %f", i, sum)
		}
	}
}

func TestFrameZeroMatchesDemo(t *testing.T) {
	demo := Demo()
	frame := Frame(0)

	for i := range demo {
		for j := range demo[i].Vertices {
			got := frame[i].Vertices[j]
			want := demo[i].Vertices[j]
			if math32.Abs(got.X-want.X) > 1e-4 || math32.Abs(got.Y-want.Y) > 1e-4 {
				t.Errorf("polygon %d vertex %d moved at angle 0: got (%f,%f), want (%f,%f)",
					i, j, got.X, got.Y, want.X, want.Y)
			}
		}
	}
}

func TestFrameHalfTurn(t *testing.T) {
	frame := Frame(math32.Pi)

	// The apex (127.5,32) reflects through the centre to (128.5,224).
	got := frame[0].Vertices[0]
	if math32.Abs(got.X-128.5) > 1e-3 || math32.Abs(got.Y-224) > 1e-3 {
		t.Errorf("half-turn apex at (%f,%f), want (128.5,224)", got.X, got.Y)
	}

	// Rotation must not flip the winding.
	if _, inside := frame[0].TestInside(centroid(frame[0].Vertices)); !inside {
		t.Error("rotated polygon no longer contains its centroid")
	}
}

func centroid(v [3]raster.Coord) raster.Coord {
	return raster.Coord{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
	}
}
