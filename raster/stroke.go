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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeSegments strokes a segment batch: points 2i and 2i+1 are the
// endpoints of segment i. A trailing unpaired point is ignored.
//
// Every segment is outlined on its own, with caps of style r.Cap at both
// ends and no joins. A segment of zero length becomes a disc for round
// caps and an axis-aligned square for square caps, and is invisible for
// butt caps. The outlines are filled together using the nonzero rule, so
// that pixels where segments overlap are not painted twice.
func (r *Rasteriser) StrokeSegments(points []vec.Vec2, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	d := r.Width / 2

	r.outline = r.outline[:0]
	r.outlineAt = r.outlineAt[:0]
	for i := 0; i+1 < len(points); i += 2 {
		start := len(r.outline)
		r.addSegmentOutline(points[i], points[i+1], d)
		if len(r.outline)-start >= 3 {
			r.outlineAt = append(r.outlineAt, start)
		} else {
			r.outline = r.outline[:start]
		}
	}

	r.beginEdges()
	for i, start := range r.outlineAt {
		end := len(r.outline)
		if i+1 < len(r.outlineAt) {
			end = r.outlineAt[i+1]
		}
		r.addPolygonEdges(r.outline[start:end])
	}
	r.render(NonZero, emit)
}

// addSegmentOutline appends the closed outline of the segment a→b with
// half-width d to r.outline.
func (r *Rasteriser) addSegmentOutline(a, b vec.Vec2, d float64) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, vec.Vec2{X: 1, Y: 0}, -2*math.Pi)
		case graphics.LineCapSquare:
			r.addSquare(a, vec.Vec2{X: 1, Y: 0}, d)
		}
		return
	}

	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)

	// Walk around the outline: cap at a, the +n side forwards, cap at b,
	// the -n side backwards.
	r.addCap(a, t.Mul(-1), d)
	r.outline = append(r.outline, a.Add(n), b.Add(n))
	r.addCap(b, t, d)
	r.outline = append(r.outline, b.Sub(n), a.Sub(n))
}

// addCap appends the cap at endpoint p. t is the unit tangent pointing
// away from the segment and d is the half-width.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +n through t to -n
		r.addArc(p, d, n, -math.Pi)
	}
}

// addArc appends points on a circular arc around center, including both
// end points. startDir is the unit vector towards the first point and
// sweep is the signed arc angle. A negative sweep gives the same
// orientation as the segment outlines.
// The number of points is chosen so that the chords stay within
// r.Flatness of the circle in device space.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := r.deviceLength(radius)

	// at least one point per quarter turn
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), n)
	}
	n = max(n, 1)

	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addSquare appends a square with side length 2d centred at center and
// aligned with the unit vector t.
func (r *Rasteriser) addSquare(center, t vec.Vec2, d float64) {
	u := t.Mul(d)
	v := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
	r.outline = append(r.outline,
		center.Add(u).Add(v),
		center.Add(u).Sub(v),
		center.Sub(u).Sub(v),
		center.Sub(u).Add(v),
	)
}
