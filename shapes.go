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

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Default values for arrow heads and shape decorations.
const (
	// DefaultArrowHeadRadius is the length of the two lines forming an
	// arrow head.
	DefaultArrowHeadRadius = 20

	// DefaultArrowHeadAngle is the angle between the shaft and each side
	// of an arrow head, in radians.
	DefaultArrowHeadAngle = math.Pi / 14

	// SeparatorHalfLength is half the length of the tick marks drawn by
	// the segmented line and arrow functions.
	SeparatorHalfLength = 2

	// MinVectorHeadRadius and MaxVectorHeadRadius bound the arrow head
	// size used when drawing vectors. Within these bounds the head radius
	// is a quarter of the vector length.
	MinVectorHeadRadius = 14
	MaxVectorHeadRadius = 20
)

// dotOffset is the second point of a dot pair, relative to the first.
// This points down on a y-down device.
var dotOffset = vec.Vec2{X: 0, Y: 1}

// The functions in this file append to an explicitly given point slice
// and return the extended slice, like the built-in append. The style
// argument selects how individual segments are drawn; nil means Solid.
//
// None of the functions check their arguments. Where a direction has to
// be derived from two coincident points, the zero vector is used instead,
// which collapses the affected segments. The Multiline methods check all
// preconditions before appending anything.

// AppendDot appends a short segment starting at position, so that
// renderers without point primitives draw a visible dot.
func AppendDot(points []vec.Vec2, position vec.Vec2) []vec.Vec2 {
	return append(points, position, position.Add(dotOffset))
}

// AppendDots appends a dot for every position.
func AppendDots(points []vec.Vec2, positions []vec.Vec2) []vec.Vec2 {
	points = slices.Grow(points, 2*len(positions))
	for _, p := range positions {
		points = AppendDot(points, p)
	}
	return points
}

// AppendLine appends the segment from start to end.
func AppendLine(points []vec.Vec2, style LineStyle, start, end vec.Vec2) []vec.Vec2 {
	return styleOrSolid(style).AppendLine(points, start, end)
}

// AppendLineOffset appends the segment from start to end, shortened by
// startOffset at the start and by endOffset at the end.
func AppendLineOffset(points []vec.Vec2, style LineStyle, start vec.Vec2, startOffset float64, end vec.Vec2, endOffset float64) []vec.Vec2 {
	dir := direction(start, end)
	return AppendLine(points, style,
		start.Add(dir.Mul(startOffset)),
		end.Sub(dir.Mul(endOffset)))
}

// AppendSeparators appends a tick mark across the line through start with
// the given direction at each cumulative distance.
func AppendSeparators(points []vec.Vec2, style LineStyle, start, dir vec.Vec2, distances []float64) []vec.Vec2 {
	dir = unit(dir)
	normal := vec.Vec2{X: dir.Y, Y: -dir.X}.Mul(SeparatorHalfLength)

	sum := 0.0
	for _, d := range distances {
		sum += d
		p := start.Add(dir.Mul(sum))
		points = AppendLine(points, style, p.Add(normal), p.Sub(normal))
	}
	return points
}

// AppendCross appends a horizontal and a vertical line of length
// 2*radius through center.
func AppendCross(points []vec.Vec2, style LineStyle, center vec.Vec2, radius float64) []vec.Vec2 {
	points = AppendLine(points, style,
		vec.Vec2{X: center.X - radius, Y: center.Y},
		vec.Vec2{X: center.X + radius, Y: center.Y})
	return AppendLine(points, style,
		vec.Vec2{X: center.X, Y: center.Y - radius},
		vec.Vec2{X: center.X, Y: center.Y + radius})
}

// AppendCross2 appends a cross with a gap in the middle: four radial
// ticks from innerRadius to outerRadius along both axes.
func AppendCross2(points []vec.Vec2, style LineStyle, center vec.Vec2, outerRadius, innerRadius float64) []vec.Vec2 {
	cx, cy := center.X, center.Y
	points = AppendLine(points, style, vec.Vec2{X: cx - innerRadius, Y: cy}, vec.Vec2{X: cx - outerRadius, Y: cy})
	points = AppendLine(points, style, vec.Vec2{X: cx + innerRadius, Y: cy}, vec.Vec2{X: cx + outerRadius, Y: cy})
	points = AppendLine(points, style, vec.Vec2{X: cx, Y: cy - innerRadius}, vec.Vec2{X: cx, Y: cy - outerRadius})
	return AppendLine(points, style, vec.Vec2{X: cx, Y: cy + innerRadius}, vec.Vec2{X: cx, Y: cy + outerRadius})
}

// AppendArrowHead appends the two sides of an arrow head with its tip at
// tip, for an arrow pointing in direction dir. Each side has length
// headRadius and encloses the given angle with the shaft.
func AppendArrowHead(points []vec.Vec2, style LineStyle, dir, tip vec.Vec2, headRadius, angle float64) []vec.Vec2 {
	dir = unit(dir)
	points = AppendLine(points, style, tip, tip.Add(rotate(dir, math.Pi+angle).Mul(headRadius)))
	return AppendLine(points, style, tip, tip.Add(rotate(dir, math.Pi-angle).Mul(headRadius)))
}

// AppendArrow appends a shaft from start to top and an arrow head at top.
func AppendArrow(points []vec.Vec2, style LineStyle, start, top vec.Vec2, headRadius, angle float64) []vec.Vec2 {
	points = AppendLine(points, style, start, top)
	return AppendArrowHead(points, style, direction(start, top), top, headRadius, angle)
}

// AppendDoubleArrow appends a shaft from start to top with arrow heads at
// both ends.
func AppendDoubleArrow(points []vec.Vec2, style LineStyle, start, top vec.Vec2, headRadius, angle float64) []vec.Vec2 {
	points = AppendLine(points, style, start, top)
	points = AppendArrowHead(points, style, direction(start, top), top, headRadius, angle)
	return AppendArrowHead(points, style, direction(top, start), start, headRadius, angle)
}

// AppendSegmentedLine appends a line from start along dir with total
// length sum(distances), and a separator at each cumulative distance.
func AppendSegmentedLine(points []vec.Vec2, style LineStyle, start, dir vec.Vec2, distances []float64) []vec.Vec2 {
	dir = unit(dir)
	points = AppendLine(points, style, start, start.Add(dir.Mul(sum(distances))))
	return AppendSeparators(points, style, start, dir, distances)
}

// AppendSegmentedArrow is like [AppendSegmentedLine], but the line is
// extended by 2*headRadius past the last separator and ends in an arrow
// head.
func AppendSegmentedArrow(points []vec.Vec2, style LineStyle, start, dir vec.Vec2, distances []float64, headRadius, angle float64) []vec.Vec2 {
	dir = unit(dir)
	top := start.Add(dir.Mul(sum(distances) + 2*headRadius))
	points = AppendArrow(points, style, start, top, headRadius, angle)
	return AppendSeparators(points, style, start, dir, distances)
}

// AppendSegmentedLineBetween appends the line from start to end divided
// into segmentCount equal units, with separators at start and at the end
// of every unit.
func AppendSegmentedLineBetween(points []vec.Vec2, style LineStyle, start, end vec.Vec2, segmentCount int) []vec.Vec2 {
	if segmentCount <= 0 {
		return AppendLine(points, style, start, end)
	}
	unitLength := end.Sub(start).Length() / float64(segmentCount)
	distances := make([]float64, segmentCount+1)
	for i := 1; i <= segmentCount; i++ {
		distances[i] = unitLength
	}
	return AppendSegmentedLine(points, style, start, end.Sub(start), distances)
}

// AppendSegmentedArrowBetween appends a segmented arrow from start in the
// direction of top. The number of units is the number of whole
// unitLength steps between start and top; the separators mark all but
// the last of them and the arrow extends past them by 2*headRadius.
func AppendSegmentedArrowBetween(points []vec.Vec2, style LineStyle, start, top vec.Vec2, unitLength, headRadius, angle float64) []vec.Vec2 {
	count := 0
	if unitLength > 0 {
		count = int(top.Sub(start).Length() / unitLength)
	}
	distances := make([]float64, max(0, count-1))
	for i := range distances {
		distances[i] = unitLength
	}
	return AppendSegmentedArrow(points, style, start, top.Sub(start), distances, headRadius, angle)
}

// vectorHeadRadius returns the arrow head size for drawing v.
func vectorHeadRadius(v vec.Vec2) float64 {
	return clamp(v.Length()/4, MinVectorHeadRadius, MaxVectorHeadRadius)
}

// AppendVectorsRelatively draws the vectors as a chain of arrows: the
// first starts at zero and each further arrow starts at the tip of the
// previous one.
func AppendVectorsRelatively(points []vec.Vec2, style LineStyle, zero vec.Vec2, vectors []vec.Vec2, angle float64) []vec.Vec2 {
	offset := zero
	for _, v := range vectors {
		next := offset.Add(v)
		points = AppendArrow(points, style, offset, next, vectorHeadRadius(v), angle)
		offset = next
	}
	return points
}

// AppendVectorsAbsolutely draws every vector as an arrow starting at zero.
func AppendVectorsAbsolutely(points []vec.Vec2, style LineStyle, zero vec.Vec2, vectors []vec.Vec2, angle float64) []vec.Vec2 {
	for _, v := range vectors {
		points = AppendArrow(points, style, zero, zero.Add(v), vectorHeadRadius(v), angle)
	}
	return points
}

// AppendAxes appends two segmented arrows starting at origin. The x-axis
// points along xDir and has xUnitCount units of length xUnitLength. The
// y-axis is xDir turned by +90° and has yUnitCount units of length
// yUnitLength.
func AppendAxes(points []vec.Vec2, style LineStyle, origin, xDir vec.Vec2, xUnitLength float64, xUnitCount int, yUnitLength float64, yUnitCount int, headRadius, angle float64) []vec.Vec2 {
	points = AppendSegmentedArrow(points, style, origin, xDir, repeat(xUnitLength, xUnitCount), headRadius, angle)
	return AppendSegmentedArrow(points, style, origin, perp(xDir), repeat(yUnitLength, yUnitCount), headRadius, angle)
}

// AppendTriangle appends the perimeter a→b→c→a.
func AppendTriangle(points []vec.Vec2, style LineStyle, a, b, c vec.Vec2) []vec.Vec2 {
	points = AppendLine(points, style, a, b)
	points = AppendLine(points, style, b, c)
	return AppendLine(points, style, c, a)
}

// AppendRectangle appends the perimeter of the rectangle with the given
// center and half side lengths, rotated about the center by rotation
// radians. halfLength is measured along the rotated x-axis.
func AppendRectangle(points []vec.Vec2, style LineStyle, center vec.Vec2, halfLength, halfWidth, rotation float64) []vec.Vec2 {
	v1 := center.Add(rotate(vec.Vec2{X: halfLength, Y: -halfWidth}, rotation))
	v2 := center.Add(rotate(vec.Vec2{X: halfLength, Y: halfWidth}, rotation))
	v3 := center.Add(rotate(vec.Vec2{X: -halfLength, Y: halfWidth}, rotation))
	v4 := center.Add(rotate(vec.Vec2{X: -halfLength, Y: -halfWidth}, rotation))
	return appendLoop(points, style, v1, v2, v3, v4)
}

// AppendRectangleFromSide appends the perimeter of a rectangle with one
// side from origin to origin+side. The opposite side is at distance
// height; positive heights lie on the side reached by turning side by
// +90°.
func AppendRectangleFromSide(points []vec.Vec2, style LineStyle, origin, side vec.Vec2, height float64) []vec.Vec2 {
	offset := unit(perp(side)).Mul(height)
	v1 := origin
	v2 := origin.Add(side)
	v3 := v2.Add(offset)
	v4 := v1.Add(offset)
	return appendLoop(points, style, v1, v2, v3, v4)
}

// RegularConvexPolygonVertices returns the vertices of a regular polygon
// around center. Vertex i lies at angle rotation + 2πi/n.
// Each call computes a fresh slice.
func RegularConvexPolygonVertices(center vec.Vec2, radius float64, n int, rotation float64) []vec.Vec2 {
	return AppendRegularConvexPolygonVertices(nil, center, radius, n, rotation)
}

// AppendRegularConvexPolygonVertices appends the vertex loop of a regular
// polygon, as returned by [RegularConvexPolygonVertices]. The result is a
// polygon boundary, not a list of segment pairs.
func AppendRegularConvexPolygonVertices(points []vec.Vec2, center vec.Vec2, radius float64, n int, rotation float64) []vec.Vec2 {
	if n <= 0 {
		return points
	}
	points = slices.Grow(points, n)
	step := 2 * math.Pi / float64(n)
	for i := range n {
		sin, cos := math.Sincos(rotation + step*float64(i))
		points = append(points, vec.Vec2{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		})
	}
	return points
}

// AppendRegularConvexPolygon appends the n edges of a regular polygon,
// including the closing edge from the last vertex to the first.
// The caller must ensure n >= 3.
func AppendRegularConvexPolygon(points []vec.Vec2, style LineStyle, center vec.Vec2, radius float64, n int, rotation float64) []vec.Vec2 {
	var buf [16]vec.Vec2
	vertices := AppendRegularConvexPolygonVertices(buf[:0], center, radius, n, rotation)
	return appendLoop(points, style, vertices...)
}

// AppendCandleBar appends a candlestick glyph. The body is a rectangle
// between bottom+bottomOffset and top-topOffset (measured along the line
// from bottom to top) with half width bodyHalfWidth; the wicks connect
// the body to bottom and top.
func AppendCandleBar(points []vec.Vec2, style LineStyle, bottom vec.Vec2, bottomOffset float64, top vec.Vec2, topOffset float64, bodyHalfWidth float64) []vec.Vec2 {
	dir := direction(bottom, top)
	bodyBottom := bottom.Add(dir.Mul(bottomOffset))
	bodyTop := top.Sub(dir.Mul(topOffset))
	center := midpoint(bodyBottom, bodyTop)

	points = AppendLine(points, style, bottom, bodyBottom)
	points = AppendLine(points, style, top, bodyTop)
	return AppendRectangle(points, style, center,
		center.Sub(bodyBottom).Length(), bodyHalfWidth, angleOf(dir))
}

// ConnectionHeads gives the arrow head sizes at the two ends of a
// connection. A zero radius means no arrow head at that end.
type ConnectionHeads struct {
	A, B float64
}

// AppendConnection appends an edge between two circular nodes. The line
// runs between the circles' boundaries, not their centers. An arrow head
// at an end sits on that node's boundary and points at its center; the
// tip is not placed at the center itself, where the node would hide it.
func AppendConnection(points []vec.Vec2, style LineStyle, aCenter vec.Vec2, aRadius float64, bCenter vec.Vec2, bRadius float64, heads ConnectionHeads) []vec.Vec2 {
	points = AppendLineOffset(points, style, aCenter, aRadius, bCenter, bRadius)

	dir := direction(aCenter, bCenter)
	if heads.A > 0 {
		tip := aCenter.Add(dir.Mul(aRadius))
		points = AppendArrowHead(points, style, dir.Mul(-1), tip, heads.A, DefaultArrowHeadAngle)
	}
	if heads.B > 0 {
		tip := bCenter.Sub(dir.Mul(bRadius))
		points = AppendArrowHead(points, style, dir, tip, heads.B, DefaultArrowHeadAngle)
	}
	return points
}

// appendLoop appends the closed perimeter through the given vertices.
func appendLoop(points []vec.Vec2, style LineStyle, vertices ...vec.Vec2) []vec.Vec2 {
	n := len(vertices)
	if n < 2 {
		return points
	}
	points = slices.Grow(points, 2*n)
	for i := 1; i < n; i++ {
		points = AppendLine(points, style, vertices[i-1], vertices[i])
	}
	return AppendLine(points, style, vertices[n-1], vertices[0])
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func repeat(x float64, n int) []float64 {
	xs := make([]float64, max(0, n))
	for i := range xs {
		xs[i] = x
	}
	return xs
}
