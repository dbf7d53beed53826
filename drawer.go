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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SegmentDrawer is implemented by renderers which can draw a batch of
// independent line segments in one call. Points 2i and 2i+1 are the
// endpoints of segment i. Implementations return [ErrOddPoints] if the
// number of points is odd.
type SegmentDrawer interface {
	DrawMultiline(points []vec.Vec2, c color.Color, width float64) error
}

// PolygonDrawer is implemented by renderers which can fill a closed
// polygon. The vertices are given in order; the closing edge from the
// last vertex back to the first is implied.
type PolygonDrawer interface {
	DrawPolygon(vertices []vec.Vec2, c color.Color) error
}

// Draw sends the points accumulated in m to d.
// If m has recorded an error, nothing is drawn and the error is returned.
func (m *Multiline) Draw(d SegmentDrawer, c color.Color, width float64) error {
	if m.err != nil {
		return m.err
	}
	return d.DrawMultiline(m.points, c, width)
}

// SegmentsPath converts a segment batch into a path with one open
// subpath per segment. A trailing unpaired point is ignored.
func SegmentsPath(points []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i := 0; i+1 < len(points); i += 2 {
		p.MoveTo(points[i]).LineTo(points[i+1])
	}
	return p
}

// PolygonPath converts a vertex loop into a closed path.
func PolygonPath(vertices []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(vertices) == 0 {
		return p
	}
	p.MoveTo(vertices[0])
	for _, v := range vertices[1:] {
		p.LineTo(v)
	}
	return p.Close()
}
