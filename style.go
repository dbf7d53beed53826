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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// LineStyle decides how a single logical segment is rendered as one or
// more segment pairs.
//
// AppendLine appends the pairs for the segment from start to end to
// points and returns the extended slice. Implementations must only ever
// append an even number of points.
type LineStyle interface {
	AppendLine(points []vec.Vec2, start, end vec.Vec2) []vec.Vec2
}

// Solid draws every segment as a single pair.
type Solid struct{}

// AppendLine implements the [LineStyle] interface.
func (Solid) AppendLine(points []vec.Vec2, start, end vec.Vec2) []vec.Vec2 {
	return append(points, start, end)
}

// Dotted splits every segment into equal sub-segments of approximately
// SegmentLength. The number of sub-segments is ceil(L/SegmentLength) for
// a segment of length L, and the actual sub-segment length is adjusted so
// that the pieces tile the segment exactly.
//
// A zero-length segment produces no output. If SegmentLength is not
// positive, every segment is emitted as a single pair.
type Dotted struct {
	SegmentLength float64
}

// NewDotted returns a Dotted style with the given nominal sub-segment
// length.
func NewDotted(segmentLength float64) (Dotted, error) {
	if !(segmentLength > 0) || math.IsInf(segmentLength, 0) {
		return Dotted{}, fmt.Errorf("dotted line segment length %g: %w",
			segmentLength, ErrInvalidGeometry)
	}
	return Dotted{SegmentLength: segmentLength}, nil
}

// AppendLine implements the [LineStyle] interface.
func (d Dotted) AppendLine(points []vec.Vec2, start, end vec.Vec2) []vec.Vec2 {
	delta := end.Sub(start)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return points
	}

	n := 1
	if d.SegmentLength > 0 && !math.IsInf(d.SegmentLength, 0) {
		n = max(1, int(math.Ceil(length/d.SegmentLength)))
	}

	points = slices.Grow(points, 2*n)
	prev := start
	for i := 1; i <= n; i++ {
		// interpolate from the endpoints so that the last piece ends exactly at end
		var next vec.Vec2
		if i == n {
			next = end
		} else {
			next = start.Add(delta.Mul(float64(i) / float64(n)))
		}
		points = append(points, prev, next)
		prev = next
	}
	return points
}

// Dots marks a segment with evenly spaced dots. Each dot is a pair as
// produced by [AppendDot]. The first dot is at the start of the segment
// and the last dot ends at its far end: the dot positions span L-1 (the
// dot itself has length 1), divided into floor((L-1)/Spacing) equal
// intervals.
type Dots struct {
	Spacing float64
}

// AppendLine implements the [LineStyle] interface.
func (d Dots) AppendLine(points []vec.Vec2, start, end vec.Vec2) []vec.Vec2 {
	delta := end.Sub(start)
	length := delta.Length()
	span := length - dotOffset.Length()
	if span <= 0 || !(d.Spacing > 0) {
		return AppendDot(points, start)
	}

	n := max(1, int(math.Floor(span/d.Spacing)))
	step := unit(delta).Mul(span / float64(n))
	points = slices.Grow(points, 2*(n+1))
	for i := range n + 1 {
		points = AppendDot(points, start.Add(step.Mul(float64(i))))
	}
	return points
}

// styleOrSolid returns style, or Solid if style is nil.
func styleOrSolid(style LineStyle) LineStyle {
	if style == nil {
		return Solid{}
	}
	return style
}
