package raster

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline/testcases"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// grid collects emitted coverage into a dense width×height array.
type grid struct {
	w, h int
	c    []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, c: make([]float32, w*h)}
}

func (g *grid) emit(t *testing.T) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		if y < 0 || y >= g.h || xMin < 0 || xMin+len(coverage) > g.w {
			t.Errorf("row %d [%d, %d) outside the clip rectangle", y, xMin, xMin+len(coverage))
			return
		}
		for i, c := range coverage {
			if c < 0 || c > 1 {
				t.Errorf("pixel (%d,%d): coverage %g out of range", xMin+i, y, c)
			}
			g.c[y*g.w+xMin+i] += c
		}
	}
}

func (g *grid) at(x, y int) float32 {
	return g.c[y*g.w+x]
}

func (g *grid) total() float64 {
	var sum float64
	for _, c := range g.c {
		sum += float64(c)
	}
	return sum
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel
// x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	for _, threshold := range []int{1 << 30, 0} {
		r := NewRasteriser(clipRect(10, 1))
		r.smallPathThreshold = threshold
		g := newGrid(10, 1)
		r.FillPolygon([]vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 1)}, NonZero, g.emit(t))

		for x := range 10 {
			want := float32(2*x+1) / 20
			if got := g.at(x, 0); math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("threshold %d, pixel %d: got %.4f, want %.4f", threshold, x, got, want)
			}
		}
	}
}

func TestHalfPixelSquare(t *testing.T) {
	r := NewRasteriser(clipRect(4, 4))
	g := newGrid(4, 4)
	r.FillPolygon([]vec.Vec2{pt(0.5, 0.5), pt(2.5, 0.5), pt(2.5, 2.5), pt(0.5, 2.5)}, NonZero, g.emit(t))

	want := [][]float32{
		{0.25, 0.5, 0.25, 0},
		{0.5, 1, 0.5, 0},
		{0.25, 0.5, 0.25, 0},
		{0, 0, 0, 0},
	}
	for y, row := range want {
		for x, w := range row {
			if got := g.at(x, y); math.Abs(float64(got-w)) > 1e-6 {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, w)
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	a := []vec.Vec2{pt(1, 1), pt(7, 1), pt(7, 7), pt(1, 7)}
	b := []vec.Vec2{pt(4, 4), pt(10, 4), pt(10, 10), pt(4, 10)}

	r := NewRasteriser(clipRect(12, 12))
	g := newGrid(12, 12)
	r.FillPolygons([][]vec.Vec2{a, b}, NonZero, g.emit(t))
	if got := g.at(5, 5); got != 1 {
		t.Errorf("nonzero overlap: %g", got)
	}
	if got := g.total(); math.Abs(got-(36+36-9)) > 1e-3 {
		t.Errorf("nonzero area: %g", got)
	}

	g = newGrid(12, 12)
	r.FillPolygons([][]vec.Vec2{a, b}, EvenOdd, g.emit(t))
	if got := g.at(5, 5); got != 0 {
		t.Errorf("evenodd overlap: %g", got)
	}
	if got := g.at(2, 2); got != 1 {
		t.Errorf("evenodd single: %g", got)
	}
}

func TestClip(t *testing.T) {
	r := NewRasteriser(clipRect(8, 8))
	g := newGrid(8, 8)
	r.FillPolygon([]vec.Vec2{pt(-20, -20), pt(4, -20), pt(4, 20), pt(-20, 20)}, NonZero, g.emit(t))
	if got := g.total(); math.Abs(got-32) > 1e-3 {
		t.Errorf("clipped area %g, want 32", got)
	}
	if got := g.at(0, 0); got != 1 {
		t.Errorf("pixel (0,0): %g", got)
	}

	// entirely outside
	called := false
	r.FillPolygon([]vec.Vec2{pt(20, 20), pt(30, 20), pt(30, 30)}, NonZero, func(int, int, []float32) {
		called = true
	})
	if called {
		t.Error("emit called for a shape outside the clip rectangle")
	}
}

func TestDegeneratePolygons(t *testing.T) {
	r := NewRasteriser(clipRect(8, 8))
	emit := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	}
	r.FillPolygon(nil, NonZero, emit)
	r.FillPolygon([]vec.Vec2{pt(1, 1)}, NonZero, emit)
	r.FillPolygon([]vec.Vec2{pt(1, 1), pt(5, 5)}, NonZero, emit)
	r.FillPolygon([]vec.Vec2{pt(1, 1), pt(5, 1), pt(7, 1)}, NonZero, emit)
}

func strokeArea(t *testing.T, lineCap graphics.LineCapStyle, width float64, points ...vec.Vec2) float64 {
	t.Helper()
	r := NewRasteriser(clipRect(64, 64))
	r.Width = width
	r.Cap = lineCap
	g := newGrid(64, 64)
	r.StrokeSegments(points, g.emit(t))
	return g.total()
}

func TestStrokeCaps(t *testing.T) {
	a, b := pt(20, 32), pt(40, 32)

	butt := strokeArea(t, graphics.LineCapButt, 10, a, b)
	round := strokeArea(t, graphics.LineCapRound, 10, a, b)
	square := strokeArea(t, graphics.LineCapSquare, 10, a, b)

	if math.Abs(butt-200) > 1e-3 {
		t.Errorf("butt: area %g, want 200", butt)
	}
	if math.Abs(square-300) > 1e-3 {
		t.Errorf("square: area %g, want 300", square)
	}
	// polygonal half discs are slightly smaller than the true area
	disc := math.Pi * 25
	if round > 200+disc || round < 200+0.85*disc {
		t.Errorf("round: area %g, want about %g", round, 200+disc)
	}
}

func TestStrokeZeroLength(t *testing.T) {
	p := pt(32, 32)
	if a := strokeArea(t, graphics.LineCapButt, 6, p, p); a != 0 {
		t.Errorf("butt: area %g, want 0", a)
	}
	if a := strokeArea(t, graphics.LineCapSquare, 6, p, p); math.Abs(a-36) > 1e-3 {
		t.Errorf("square: area %g, want 36", a)
	}
	disc := math.Pi * 9
	if a := strokeArea(t, graphics.LineCapRound, 6, p, p); a > disc || a < 0.85*disc {
		t.Errorf("round: area %g, want about %g", a, disc)
	}
}

func TestStrokeOverlapPaintedOnce(t *testing.T) {
	a, b := pt(10, 10), pt(50, 10)
	once := strokeArea(t, graphics.LineCapButt, 4, a, b)
	twice := strokeArea(t, graphics.LineCapButt, 4, a, b, b, a)
	if math.Abs(once-twice) > 1e-3 {
		t.Errorf("overlapping segments: %g != %g", twice, once)
	}

	crossing := strokeArea(t, graphics.LineCapButt, 2, pt(10, 32), pt(50, 32), pt(30, 12), pt(30, 52))
	if math.Abs(crossing-(80+80-4)) > 1e-3 {
		t.Errorf("crossing segments: area %g, want 156", crossing)
	}
}

// TestStrokeDotOnSegment checks that a zero-length segment lying on top of
// another segment does not cut a hole into it.
func TestStrokeDotOnSegment(t *testing.T) {
	for _, lineCap := range []graphics.LineCapStyle{graphics.LineCapRound, graphics.LineCapSquare} {
		stroke := func(points ...vec.Vec2) *grid {
			r := NewRasteriser(clipRect(24, 20))
			r.Width = 6
			r.Cap = lineCap
			g := newGrid(24, 20)
			r.StrokeSegments(points, g.emit(t))
			return g
		}
		alone := stroke(pt(2, 10), pt(18, 10))
		withDot := stroke(pt(2, 10), pt(18, 10), pt(10, 10), pt(10, 10))

		if got, want := withDot.at(10, 10), alone.at(10, 10); got != want {
			t.Errorf("%s: pixel (10,10) = %g, want %g", lineCap, got, want)
		}
		if got, want := withDot.total(), alone.total(); math.Abs(got-want) > 1e-3 {
			t.Errorf("%s: area %g, want %g", lineCap, got, want)
		}
	}
}

func TestStrokeIgnoresUnpairedPoint(t *testing.T) {
	a, b := pt(10, 10), pt(50, 10)
	want := strokeArea(t, graphics.LineCapButt, 2, a, b)
	got := strokeArea(t, graphics.LineCapButt, 2, a, b, pt(30, 30))
	if got != want {
		t.Errorf("got %g, want %g", got, want)
	}
}

func TestStrokeWidth(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN()} {
		if a := strokeArea(t, graphics.LineCapRound, w, pt(1, 1), pt(9, 9)); a != 0 {
			t.Errorf("width %g: area %g", w, a)
		}
	}
}

func TestStrokeTransform(t *testing.T) {
	r := NewRasteriser(clipRect(64, 64))
	r.CTM = matrix.Scale(2, 2)
	r.Width = 1
	g := newGrid(64, 64)
	r.StrokeSegments([]vec.Vec2{pt(4, 4), pt(14, 4)}, g.emit(t))
	if got := g.total(); math.Abs(got-40) > 1e-3 {
		t.Errorf("area %g, want 40", got)
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(clipRect(4, 4))
	r.CTM = matrix.Scale(3, 3)
	r.Width = 7
	r.Cap = graphics.LineCapRound
	r.Flatness = 2

	clip := clipRect(9, 9)
	r.Reset(clip)
	if r.CTM != matrix.Identity || r.Clip != clip || r.Width != DefaultWidth ||
		r.Cap != graphics.LineCapButt || r.Flatness != DefaultFlatness {
		t.Errorf("Reset left %+v", r)
	}
}

// TestApproachesAgree renders every test case with both the buffered and
// the scanning code path and compares the results.
func TestApproachesAgree(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				a := render(t, tc, 1<<30)
				b := render(t, tc, 0)
				if a.total() == 0 {
					t.Fatal("nothing drawn")
				}
				for i := range a.c {
					if d := math.Abs(float64(a.c[i] - b.c[i])); d > 1e-4 {
						t.Fatalf("pixel (%d,%d): %g != %g", i%a.w, i/a.w, a.c[i], b.c[i])
					}
				}
			})
		}
	}
}

func render(t *testing.T, tc testcases.TestCase, threshold int) *grid {
	r := NewRasteriser(clipRect(tc.Width, tc.Height))
	r.smallPathThreshold = threshold
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	g := newGrid(tc.Width, tc.Height)

	switch op := tc.Op.(type) {
	case testcases.Fill:
		rule := NonZero
		if op.Rule == testcases.EvenOdd {
			rule = EvenOdd
		}
		r.FillPolygon(tc.Points, rule, g.emit(t))
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.StrokeSegments(tc.Points, g.emit(t))
	}
	return g
}

// BenchmarkRasteriseAll measures steady-state performance by reusing a
// single Rasteriser across all test cases.
func BenchmarkRasteriseAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	r := NewRasteriser(rect.Rect{})
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for _, tc := range cases {
			r.Reset(clipRect(tc.Width, tc.Height))
			if tc.CTM != (matrix.Matrix{}) {
				r.CTM = tc.CTM
			}
			switch op := tc.Op.(type) {
			case testcases.Fill:
				rule := NonZero
				if op.Rule == testcases.EvenOdd {
					rule = EvenOdd
				}
				r.FillPolygon(tc.Points, rule, emit)
			case testcases.Stroke:
				r.Width = op.Width
				r.Cap = op.Cap
				r.StrokeSegments(tc.Points, emit)
			}
		}
	}
}
