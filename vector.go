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

	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the length below which a vector has no usable
// direction.
const zeroLengthThreshold = 1e-12

// unit returns v scaled to length 1.
// The zero vector (and anything shorter than zeroLengthThreshold) maps to
// the zero vector.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// direction returns the unit vector pointing from a to b.
func direction(a, b vec.Vec2) vec.Vec2 {
	return unit(b.Sub(a))
}

// rotate turns v counter-clockwise by angle radians (in a y-up frame;
// clockwise on a y-down device).
func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// angleOf returns the angle of v against the positive x-axis.
func angleOf(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// perp returns v rotated by +90°.
func perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}

func isFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func finitePoints(pts ...vec.Vec2) bool {
	for _, p := range pts {
		if !isFinite(p.X, p.Y) {
			return false
		}
	}
	return true
}
