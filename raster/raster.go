// seehuhn.de/go/multiline - line segment batches for 2D drawing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster is a small software renderer for segment batches and
// filled polygons. It computes exact per-pixel area coverage and hands
// the result to the caller one row at a time, leaving compositing to the
// caller.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row. coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, in [0, 1]. The slice
// is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// FillRule selects how overlapping and self-intersecting outlines are
// filled.
type FillRule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

// Default values for the Rasteriser parameters.
const (
	// DefaultFlatness is the maximum distance, in device pixels, between a
	// round cap and its polygonal approximation.
	DefaultFlatness = 0.25

	// DefaultWidth is the stroke width used by NewRasteriser.
	DefaultWidth = 1.0
)

const (
	// edges with a smaller vertical extent (in device space) cannot
	// contribute coverage and are dropped
	horizontalEdgeThreshold = 1e-10

	// segments shorter than this are stroked as dots
	zeroLengthThreshold = 1e-10

	// bounding box area, in pixels, up to which a shape is rasterised
	// with full 2D accumulation buffers
	smallPathThreshold = 65536
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x-coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// box is an integer pixel rectangle [x0, x1) × [y0, y1).
type box struct {
	x0, x1, y0, y1 int
}

func (b box) width() int  { return b.x1 - b.x0 }
func (b box) height() int { return b.y1 - b.y0 }

// Rasteriser converts polygons and segment batches into pixel coverage.
// A Rasteriser keeps its internal buffers between calls, so that
// repeated use does not allocate once the buffers have grown to size.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be invertible.
	CTM matrix.Matrix

	// Clip restricts output to this rectangle in device space. The
	// coordinates must be integers.
	Clip rect.Rect

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape drawn at both ends of every stroked segment.
	Cap graphics.LineCapStyle

	// Flatness is the tolerance for approximating round caps, in device
	// pixels. Must be positive.
	Flatness float64

	// smallPathThreshold overrides the constant of the same name in
	// tests.
	smallPathThreshold int

	cover     []float32
	area      []float32
	edges     []edge
	active    []int
	rowInUse  []bool
	outline   []vec.Vec2 // vertices of all outlines, back to back
	outlineAt []int      // start of each outline in outline

	// device space bounding box of edges
	haveBBox       bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, an
// identity transformation, stroke width 1, butt caps and the default
// flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to the values set by [NewRasteriser],
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = DefaultWidth
	r.Cap = graphics.LineCapButt
	r.Flatness = DefaultFlatness
	r.smallPathThreshold = smallPathThreshold

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
	r.outlineAt = r.outlineAt[:0]
}

// FillPolygon fills the polygon with the given vertices. The polygon is
// closed implicitly.
func (r *Rasteriser) FillPolygon(vertices []vec.Vec2, rule FillRule, emit EmitFunc) {
	r.beginEdges()
	r.addPolygonEdges(vertices)
	r.render(rule, emit)
}

// FillPolygons fills several polygons together, as one compound shape.
// The fill rule decides how overlaps between the polygons are treated.
func (r *Rasteriser) FillPolygons(polys [][]vec.Vec2, rule FillRule, emit EmitFunc) {
	r.beginEdges()
	for _, poly := range polys {
		r.addPolygonEdges(poly)
	}
	r.render(rule, emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addPolygonEdges adds the edges of the closed polygon through vertices.
func (r *Rasteriser) addPolygonEdges(vertices []vec.Vec2) {
	n := len(vertices)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		r.addEdge(vertices[i-1], vertices[i])
	}
	r.addEdge(vertices[n-1], vertices[0])
}

// toDevice maps a user space point to device space.
func (r *Rasteriser) toDevice(p vec.Vec2) (x, y float64) {
	m := &r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

// deviceLength returns the larger of the device space lengths of the two
// user space axis vectors of length l.
func (r *Rasteriser) deviceLength(l float64) float64 {
	m := &r.CTM
	lx := math.Hypot(m[0], m[1]) * l
	ly := math.Hypot(m[2], m[3]) * l
	return max(lx, ly)
}

// addEdge transforms the user space segment p0→p1 to device space and
// records it, unless it is horizontal.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.toDevice(p0)
	x1, y1 := r.toDevice(p1)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if !r.haveBBox {
		r.bbXMin, r.bbXMax = min(x0, x1), max(x0, x1)
		r.bbYMin, r.bbYMax = min(y0, y1), max(y0, y1)
		r.haveBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, x0, x1)
	r.bbXMax = max(r.bbXMax, x0, x1)
	r.bbYMin = min(r.bbYMin, y0, y1)
	r.bbYMax = max(r.bbYMax, y0, y1)
}

// bounds returns the pixel box covered by the collected edges, clipped to
// r.Clip. ok is false if the box is empty.
func (r *Rasteriser) bounds() (b box, ok bool) {
	if len(r.edges) == 0 {
		return box{}, false
	}
	b = box{
		x0: max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx)),
		x1: min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx)),
		y0: max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy)),
		y1: min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy)),
	}
	if b.x0 >= b.x1 || b.y0 >= b.y1 {
		return box{}, false
	}
	return b, true
}

// render rasterises the collected edges.
func (r *Rasteriser) render(rule FillRule, emit EmitFunc) {
	b, ok := r.bounds()
	if !ok {
		return
	}
	if b.width()*b.height() < r.smallPathThreshold {
		r.renderBuffered(b, rule, emit)
	} else {
		r.renderScanning(b, rule, emit)
	}
}

// Coverage is accumulated per pixel in two quantities. For the part of
// an edge inside a pixel, with signed height h (positive for edges going
// down) and mean horizontal position f within the pixel:
//
//	cover += h
//	area  += h * (1 - f)
//
// Scanning a row left to right, the coverage of a pixel is the running
// sum of cover over all pixels to its left plus its own area. The
// absolute value of this sum is the winding-weighted covered area.

// accumulate adds the contribution of e to scanline y. The buffers hold
// the pixels b.x0 ≤ x < b.x1; everything left of b.x0 is folded into the
// first pixel.
func accumulate(e *edge, y int, cover, area []float32, b box) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixL := int(math.Floor(xa))
	pixR := int(math.Floor(xb))

	switch {
	case pixL >= b.x1:
		return
	case pixR < b.x0:
		h := sign * float32(yBot-yTop)
		cover[0] += h
		area[0] += h
		return
	case pixL == pixR:
		addPiece(e, yTop, yBot, sign, pixL, cover, area, b)
		return
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixL; pix <= pixR && pix < b.x1; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addPiece(e, lo, hi, sign, pix, cover, area, b)
	}
}

// addPiece records the part of e between heights yTop and yBot, which
// lies inside pixel column pix.
func addPiece(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, b box) {
	h := sign * float32(yBot-yTop)
	if pix < b.x0 {
		cover[0] += h
		area[0] += h
		return
	}
	if pix >= b.x1 {
		return
	}
	f := e.xAt((yTop+yBot)/2) - float64(pix)
	i := pix - b.x0
	cover[i] += h
	area[i] += h * float32(1-f)
}

// integrate turns one row of accumulated cover and area values into
// coverage, in place in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			raw = 1 - abs32(1-raw)
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips leading and trailing zeros from coverage.
// It returns nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// renderBuffered accumulates all rows at once into width×height buffers.
// This is fast for small shapes, where the buffers fit into cache.
func (r *Rasteriser) renderBuffered(b box, rule FillRule, emit EmitFunc) {
	w, h := b.width(), b.height()
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowInUse = slices.Grow(r.rowInUse[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowInUse)

	for i := range r.edges {
		e := &r.edges[i]
		yFirst := max(int(math.Floor(e.yMin())), b.y0)
		yLast := min(int(math.Floor(e.yMax()))+1, b.y1)
		for y := yFirst; y < yLast; y++ {
			row := y - b.y0
			accumulate(e, y, r.cover[row*w:(row+1)*w], r.area[row*w:(row+1)*w], b)
			r.rowInUse[row] = true
		}
	}

	for row := range h {
		if !r.rowInUse[row] {
			continue
		}
		cov := r.cover[row*w : (row+1)*w]
		integrate(cov, r.area[row*w:(row+1)*w], rule)
		if trimmed, off := trimZeros(cov); trimmed != nil {
			emit(b.y0+row, b.x0+off, trimmed)
		}
	}
}

// renderScanning processes one row at a time, keeping a list of the edges
// which intersect the current row. Memory use is proportional to the
// width of the shape only.
func (r *Rasteriser) renderScanning(b box, rule FillRule, emit EmitFunc) {
	w := b.width()
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := b.y0; y < b.y1; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if e.yMin() < yBot {
				accumulate(e, y, r.cover, r.area, b)
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, off := trimZeros(r.cover); trimmed != nil {
			emit(y, b.x0+off, trimmed)
		}
	}
}
