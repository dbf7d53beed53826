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

package multiline

import "seehuhn.de/go/geom/vec"

// The functions in this file return a freshly allocated batch for a
// single solid shape, sized exactly for its output.

// Dot returns a dot at position.
func Dot(position vec.Vec2) []vec.Vec2 {
	return AppendDot(make([]vec.Vec2, 0, 2), position)
}

// Dots returns a dot at every position.
func Dots(positions []vec.Vec2) []vec.Vec2 {
	return AppendDots(make([]vec.Vec2, 0, 2*len(positions)), positions)
}

// Line returns the segment from start to end.
func Line(start, end vec.Vec2) []vec.Vec2 {
	return []vec.Vec2{start, end}
}

// Cross returns a cross with arms of length radius.
func Cross(center vec.Vec2, radius float64) []vec.Vec2 {
	return AppendCross(make([]vec.Vec2, 0, 2*2), nil, center, radius)
}

// Cross2 returns a cross with a gap around the center.
func Cross2(center vec.Vec2, outerRadius, innerRadius float64) []vec.Vec2 {
	return AppendCross2(make([]vec.Vec2, 0, 2*4), nil, center, outerRadius, innerRadius)
}

// Arrow returns an arrow from start to top.
func Arrow(start, top vec.Vec2, headRadius, angle float64) []vec.Vec2 {
	return AppendArrow(make([]vec.Vec2, 0, 2*3), nil, start, top, headRadius, angle)
}

// DoubleArrow returns an arrow from start to top with heads at both ends.
func DoubleArrow(start, top vec.Vec2, headRadius, angle float64) []vec.Vec2 {
	return AppendDoubleArrow(make([]vec.Vec2, 0, 2*5), nil, start, top, headRadius, angle)
}

// SegmentedLine returns the line from start to end divided into
// segmentCount units, with a separator at the start and at the end of
// every unit.
func SegmentedLine(start, end vec.Vec2, segmentCount int) []vec.Vec2 {
	n := 2 + 2*(max(segmentCount, 0)+1)
	return AppendSegmentedLineBetween(make([]vec.Vec2, 0, n), nil, start, end, segmentCount)
}

// SegmentedArrow returns a segmented arrow from start along dir.
// See [AppendSegmentedArrow].
func SegmentedArrow(start, dir vec.Vec2, distances []float64, headRadius, angle float64) []vec.Vec2 {
	n := 2*3 + 2*len(distances)
	return AppendSegmentedArrow(make([]vec.Vec2, 0, n), nil, start, dir, distances, headRadius, angle)
}

// VectorsRelatively returns the vectors drawn as a chain of arrows.
func VectorsRelatively(zero vec.Vec2, vectors []vec.Vec2, angle float64) []vec.Vec2 {
	return AppendVectorsRelatively(make([]vec.Vec2, 0, 2*3*len(vectors)), nil, zero, vectors, angle)
}

// VectorsAbsolutely returns the vectors drawn as arrows from a common
// origin.
func VectorsAbsolutely(zero vec.Vec2, vectors []vec.Vec2, angle float64) []vec.Vec2 {
	return AppendVectorsAbsolutely(make([]vec.Vec2, 0, 2*3*len(vectors)), nil, zero, vectors, angle)
}

// Axes returns a pair of coordinate axes. See [AppendAxes].
func Axes(origin, xDir vec.Vec2, xUnitLength float64, xUnitCount int, yUnitLength float64, yUnitCount int, headRadius, angle float64) []vec.Vec2 {
	n := 2*3*2 + 2*(max(xUnitCount, 0)+max(yUnitCount, 0))
	return AppendAxes(make([]vec.Vec2, 0, n), nil, origin, xDir, xUnitLength, xUnitCount, yUnitLength, yUnitCount, headRadius, angle)
}

// Triangle returns the perimeter of the triangle abc.
func Triangle(a, b, c vec.Vec2) []vec.Vec2 {
	return AppendTriangle(make([]vec.Vec2, 0, 2*3), nil, a, b, c)
}

// Rectangle returns the perimeter of a rotated rectangle.
// See [AppendRectangle].
func Rectangle(center vec.Vec2, halfLength, halfWidth, rotation float64) []vec.Vec2 {
	return AppendRectangle(make([]vec.Vec2, 0, 2*4), nil, center, halfLength, halfWidth, rotation)
}

// RegularConvexPolygon returns the perimeter of a regular polygon with n
// vertices.
func RegularConvexPolygon(center vec.Vec2, radius float64, n int, rotation float64) []vec.Vec2 {
	return AppendRegularConvexPolygon(make([]vec.Vec2, 0, 2*max(n, 0)), nil, center, radius, n, rotation)
}

// CandleBar returns a candlestick glyph. See [AppendCandleBar].
func CandleBar(bottom vec.Vec2, bottomOffset float64, top vec.Vec2, topOffset float64, bodyHalfWidth float64) []vec.Vec2 {
	return AppendCandleBar(make([]vec.Vec2, 0, 2*6), nil, bottom, bottomOffset, top, topOffset, bodyHalfWidth)
}
