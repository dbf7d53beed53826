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

// Package multiline builds batches of independent line segments for 2D
// drawing: dots, crosses, arrows, rulers, coordinate axes, triangle,
// rectangle and polygon outlines, candlestick bars and node connections.
//
// A batch is a flat slice of points where points 2i and 2i+1 are the
// start and end of segment i. Such batches are what immediate-mode
// renderers typically accept for drawing many disjoint lines in one call
// (see [SegmentDrawer]).
//
// Shapes can be built in two ways. The Append* functions take the output
// slice explicitly and allocate nothing beyond it. The [Multiline] type
// wraps a buffer and a [LineStyle] and offers the same operations as
// chainable methods, with argument checking:
//
//	m := multiline.New(multiline.WithStyle(multiline.Dotted{SegmentLength: 4}))
//	m.Triangle(a, b, c).Arrow(p, q, multiline.DefaultArrowHeadRadius, multiline.DefaultArrowHeadAngle)
//	if err := m.Err(); err != nil {
//		return err
//	}
//	pts := m.Points()
//
// All angles are in radians. Rotations by a positive angle turn the
// positive x-axis towards the positive y-axis; on a device with the
// y-axis pointing down this is clockwise on screen.
package multiline

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Multiline accumulates segment pairs.
//
// Every method appends the pairs for one shape and returns the receiver,
// so that calls can be chained. Before appending, a method checks its
// arguments. If the check fails, nothing is appended and the error is
// remembered; the first such error is returned by [Multiline.Err].
//
// A Multiline is not safe for concurrent use.
type Multiline struct {
	points []vec.Vec2
	style  LineStyle
	err    error
}

// Option configures a Multiline created by [New].
type Option func(*Multiline)

// WithStyle sets the line style used for all segments.
// The default is [Solid].
func WithStyle(style LineStyle) Option {
	return func(m *Multiline) {
		if style != nil {
			m.style = style
		}
	}
}

// WithCapacity pre-allocates room for n points.
func WithCapacity(n int) Option {
	return func(m *Multiline) {
		if n > cap(m.points) {
			m.points = make([]vec.Vec2, 0, n)
		}
	}
}

// WithBuffer makes the Multiline use buf as its backing storage.
// The contents of buf are discarded.
func WithBuffer(buf []vec.Vec2) Option {
	return func(m *Multiline) {
		m.points = buf[:0]
	}
}

// New returns an empty Multiline.
func New(opts ...Option) *Multiline {
	m := &Multiline{style: Solid{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Points returns a copy of the accumulated points.
func (m *Multiline) Points() []vec.Vec2 {
	return slices.Clone(m.points)
}

// Len returns the number of accumulated points. This is always even.
func (m *Multiline) Len() int {
	return len(m.points)
}

// Style returns the line style in use.
func (m *Multiline) Style() LineStyle {
	return m.style
}

// Err returns the first error encountered since the Multiline was
// created or last cleared.
func (m *Multiline) Err() error {
	return m.err
}

// Clear removes all points and resets the error state.
// The allocated storage is kept for reuse.
func (m *Multiline) Clear() *Multiline {
	m.points = m.points[:0]
	m.err = nil
	return m
}

// apply runs fn unless c recorded a precondition failure.
func (m *Multiline) apply(op string, c *check, fn func([]vec.Vec2) []vec.Vec2) *Multiline {
	if c.err != nil {
		Logger().Debug("multiline: operation rejected", "op", op, "err", c.err)
		if m.err == nil {
			m.err = &OpError{Op: op, Err: c.err}
		}
		return m
	}
	m.points = fn(m.points)
	return m
}

// Dot appends a dot at position.
func (m *Multiline) Dot(position vec.Vec2) *Multiline {
	c := new(check).points(position)
	return m.apply("dot", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendDot(p, position)
	})
}

// Dots appends a dot at each position.
func (m *Multiline) Dots(positions []vec.Vec2) *Multiline {
	c := new(check).points(positions...)
	return m.apply("dots", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendDots(p, positions)
	})
}

// Line appends the segment from start to end.
func (m *Multiline) Line(start, end vec.Vec2) *Multiline {
	c := new(check).points(start, end)
	return m.apply("line", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendLine(p, m.style, start, end)
	})
}

// LineOffset appends the segment from start to end, shortened by the
// given distances at both ends.
func (m *Multiline) LineOffset(start vec.Vec2, startOffset float64, end vec.Vec2, endOffset float64) *Multiline {
	c := new(check).points(start, end).values(startOffset, endOffset).
		nonNegative("offset", startOffset, endOffset).distinct(start, end)
	return m.apply("line offset", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendLineOffset(p, m.style, start, startOffset, end, endOffset)
	})
}

// Cross appends a cross with arms of length radius.
func (m *Multiline) Cross(center vec.Vec2, radius float64) *Multiline {
	c := new(check).points(center).values(radius).nonNegative("radius", radius)
	return m.apply("cross", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendCross(p, m.style, center, radius)
	})
}

// Cross2 appends a cross with a gap of innerRadius around the center.
func (m *Multiline) Cross2(center vec.Vec2, outerRadius, innerRadius float64) *Multiline {
	c := new(check).points(center).values(outerRadius, innerRadius).
		nonNegative("radius", outerRadius, innerRadius)
	return m.apply("cross2", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendCross2(p, m.style, center, outerRadius, innerRadius)
	})
}

// ArrowHead appends an arrow head at tip for an arrow pointing along dir.
func (m *Multiline) ArrowHead(dir, tip vec.Vec2, headRadius, angle float64) *Multiline {
	c := new(check).points(dir, tip).values(headRadius, angle).
		nonNegative("head radius", headRadius).direction(dir)
	return m.apply("arrow head", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendArrowHead(p, m.style, dir, tip, headRadius, angle)
	})
}

// Arrow appends an arrow from start to top.
func (m *Multiline) Arrow(start, top vec.Vec2, headRadius, angle float64) *Multiline {
	c := new(check).points(start, top).values(headRadius, angle).
		nonNegative("head radius", headRadius).distinct(start, top)
	return m.apply("arrow", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendArrow(p, m.style, start, top, headRadius, angle)
	})
}

// DoubleArrow appends an arrow between start and top with heads at both
// ends.
func (m *Multiline) DoubleArrow(start, top vec.Vec2, headRadius, angle float64) *Multiline {
	c := new(check).points(start, top).values(headRadius, angle).
		nonNegative("head radius", headRadius).distinct(start, top)
	return m.apply("double arrow", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendDoubleArrow(p, m.style, start, top, headRadius, angle)
	})
}

// SegmentedLine appends a ruler from start along dir.
// See [AppendSegmentedLine].
func (m *Multiline) SegmentedLine(start, dir vec.Vec2, distances []float64) *Multiline {
	c := new(check).points(start, dir).values(distances...).
		nonNegative("distance", distances...).direction(dir)
	return m.apply("segmented line", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendSegmentedLine(p, m.style, start, dir, distances)
	})
}

// SegmentedArrow appends a ruler from start along dir, ending in an
// arrow head. See [AppendSegmentedArrow].
func (m *Multiline) SegmentedArrow(start, dir vec.Vec2, distances []float64, headRadius, angle float64) *Multiline {
	c := new(check).points(start, dir).values(distances...).values(headRadius, angle).
		nonNegative("distance", distances...).nonNegative("head radius", headRadius).
		direction(dir)
	return m.apply("segmented arrow", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendSegmentedArrow(p, m.style, start, dir, distances, headRadius, angle)
	})
}

// SegmentedLineBetween appends the line from start to end, divided into
// segmentCount equal units. See [AppendSegmentedLineBetween].
func (m *Multiline) SegmentedLineBetween(start, end vec.Vec2, segmentCount int) *Multiline {
	c := new(check).points(start, end).distinct(start, end)
	if segmentCount < 1 {
		c.fail("segment count %d", segmentCount)
	}
	return m.apply("segmented line", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendSegmentedLineBetween(p, m.style, start, end, segmentCount)
	})
}

// SegmentedArrowBetween appends a segmented arrow from start towards top
// with units of length unitLength. See [AppendSegmentedArrowBetween].
func (m *Multiline) SegmentedArrowBetween(start, top vec.Vec2, unitLength, headRadius, angle float64) *Multiline {
	c := new(check).points(start, top).values(unitLength, headRadius, angle).
		nonNegative("head radius", headRadius).distinct(start, top)
	if !(unitLength > 0) {
		c.fail("unit length %g", unitLength)
	}
	return m.apply("segmented arrow", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendSegmentedArrowBetween(p, m.style, start, top, unitLength, headRadius, angle)
	})
}

// VectorsRelatively appends the vectors as a chain of arrows starting at
// zero.
func (m *Multiline) VectorsRelatively(zero vec.Vec2, vectors []vec.Vec2, angle float64) *Multiline {
	c := new(check).points(zero).points(vectors...).values(angle)
	for _, v := range vectors {
		c.direction(v)
	}
	return m.apply("vectors", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendVectorsRelatively(p, m.style, zero, vectors, angle)
	})
}

// VectorsAbsolutely appends every vector as an arrow starting at zero.
func (m *Multiline) VectorsAbsolutely(zero vec.Vec2, vectors []vec.Vec2, angle float64) *Multiline {
	c := new(check).points(zero).points(vectors...).values(angle)
	for _, v := range vectors {
		c.direction(v)
	}
	return m.apply("vectors", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendVectorsAbsolutely(p, m.style, zero, vectors, angle)
	})
}

// Axes appends a pair of coordinate axes. See [AppendAxes].
func (m *Multiline) Axes(origin, xDir vec.Vec2, xUnitLength float64, xUnitCount int, yUnitLength float64, yUnitCount int, headRadius, angle float64) *Multiline {
	c := new(check).points(origin, xDir).values(xUnitLength, yUnitLength, headRadius, angle).
		nonNegative("unit length", xUnitLength, yUnitLength).
		nonNegative("head radius", headRadius).
		nonNegative("unit count", float64(xUnitCount), float64(yUnitCount)).
		direction(xDir)
	return m.apply("axes", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendAxes(p, m.style, origin, xDir, xUnitLength, xUnitCount, yUnitLength, yUnitCount, headRadius, angle)
	})
}

// Triangle appends the perimeter of the triangle abc.
func (m *Multiline) Triangle(a, b, c vec.Vec2) *Multiline {
	chk := new(check).points(a, b, c)
	return m.apply("triangle", chk, func(p []vec.Vec2) []vec.Vec2 {
		return AppendTriangle(p, m.style, a, b, c)
	})
}

// Rectangle appends the perimeter of a rotated rectangle given by its
// center and half side lengths.
func (m *Multiline) Rectangle(center vec.Vec2, halfLength, halfWidth, rotation float64) *Multiline {
	c := new(check).points(center).values(halfLength, halfWidth, rotation).
		nonNegative("half size", halfLength, halfWidth)
	return m.apply("rectangle", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendRectangle(p, m.style, center, halfLength, halfWidth, rotation)
	})
}

// RectangleFromSide appends the perimeter of a rectangle given by one
// side and its height. See [AppendRectangleFromSide].
func (m *Multiline) RectangleFromSide(origin, side vec.Vec2, height float64) *Multiline {
	c := new(check).points(origin, side).values(height).direction(side)
	return m.apply("rectangle", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendRectangleFromSide(p, m.style, origin, side, height)
	})
}

// RegularConvexPolygon appends the perimeter of a regular polygon with n
// vertices.
func (m *Multiline) RegularConvexPolygon(center vec.Vec2, radius float64, n int, rotation float64) *Multiline {
	c := new(check).points(center).values(radius, rotation).nonNegative("radius", radius)
	if n < 3 {
		c.fail("polygon with %d vertices", n)
	}
	return m.apply("polygon", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendRegularConvexPolygon(p, m.style, center, radius, n, rotation)
	})
}

// CandleBar appends a candlestick glyph. See [AppendCandleBar].
func (m *Multiline) CandleBar(bottom vec.Vec2, bottomOffset float64, top vec.Vec2, topOffset float64, bodyHalfWidth float64) *Multiline {
	c := new(check).points(bottom, top).values(bottomOffset, topOffset, bodyHalfWidth).
		nonNegative("offset", bottomOffset, topOffset).
		nonNegative("half width", bodyHalfWidth).
		distinct(bottom, top)
	return m.apply("candle bar", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendCandleBar(p, m.style, bottom, bottomOffset, top, topOffset, bodyHalfWidth)
	})
}

// Connection appends an edge between two circular nodes.
// See [AppendConnection].
func (m *Multiline) Connection(aCenter vec.Vec2, aRadius float64, bCenter vec.Vec2, bRadius float64, heads ConnectionHeads) *Multiline {
	c := new(check).points(aCenter, bCenter).values(aRadius, bRadius, heads.A, heads.B).
		nonNegative("radius", aRadius, bRadius).
		nonNegative("head radius", heads.A, heads.B).
		distinct(aCenter, bCenter)
	return m.apply("connection", c, func(p []vec.Vec2) []vec.Vec2 {
		return AppendConnection(p, m.style, aCenter, aRadius, bCenter, bRadius, heads)
	})
}
