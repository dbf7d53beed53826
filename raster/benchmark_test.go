package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/multiline"
)

var benchSizes = []int{20, 200, 2000}

// ringPolygons returns an "O" shape: the outer loop counter-clockwise
// and the inner loop clockwise.
func ringPolygons(size int) [][]vec.Vec2 {
	c := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
	outer := multiline.RegularConvexPolygonVertices(c, float64(size)*0.45, 64, 0)
	inner := multiline.RegularConvexPolygonVertices(c, float64(size)*0.30, 64, 0)
	for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
		inner[i], inner[j] = inner[j], inner[i]
	}
	return [][]vec.Vec2{outer, inner}
}

// spokes returns a segment batch of lines radiating from the centre.
func spokes(size int) []vec.Vec2 {
	s := float64(size)
	c := vec.Vec2{X: s / 2, Y: s / 2}
	m := multiline.New()
	m.RegularConvexPolygon(c, s*0.45, 48, 0)
	for _, v := range multiline.RegularConvexPolygonVertices(c, s*0.4, 48, 0) {
		m.Line(c, v)
	}
	return m.Points()
}

// BenchmarkRasteriserRing benchmarks filling an "O" shape.
func BenchmarkRasteriserRing(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			polys := ringPolygons(size)
			emit := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range coverage {
					row[i] = uint8(c * 255)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillPolygons(polys, NonZero, emit)
			}
		})
	}
}

// BenchmarkVectorRing benchmarks x/image/vector filling the same shape.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			polys := ringPolygons(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for _, poly := range polys {
					addPolygonToVector(r, poly)
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeSegments benchmarks stroking a segment batch.
func BenchmarkStrokeSegments(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			pts := spokes(size)
			emit := func(y, xMin int, coverage []float32) {}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 2
				r.StrokeSegments(pts, emit)
			}
		})
	}
}

// BenchmarkVectorSegments benchmarks x/image/vector drawing the same
// segments as thin quadrilaterals.
func BenchmarkVectorSegments(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			pts := spokes(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for i := 0; i+1 < len(pts); i += 2 {
					a, c := pts[i], pts[i+1]
					d := c.Sub(a)
					n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(1 / d.Length())
					addPolygonToVector(r, []vec.Vec2{a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)})
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func addPolygonToVector(r *vector.Rasterizer, poly []vec.Vec2) {
	r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, v := range poly[1:] {
		r.LineTo(float32(v.X), float32(v.Y))
	}
	r.ClosePath()
}
