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


package main

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline/testcases"
)

// A painter is an output format for the scenarios. Both the png and the
// pdf command paint white shapes on a black background in a y-down
// coordinate system, so that gray values equal coverage and the outputs
// can be compared pixel by pixel.
type painter interface {
	// begin prepares a black page of the given size. ctm maps scenario
	// coordinates to y-down page coordinates.
	begin(width, height int, ctm matrix.Matrix) error
	fill(vertices []vec.Vec2, rule testcases.FillRule) error
	stroke(points []vec.Vec2, width float64, lineCap graphics.LineCapStyle) error
}

// paintCase draws a test case using p.
func paintCase(p painter, tc testcases.TestCase) error {
	if err := p.begin(tc.Width, tc.Height, caseCTM(tc)); err != nil {
		return err
	}
	switch op := tc.Op.(type) {
	case testcases.Fill:
		return p.fill(tc.Points, op.Rule)
	case testcases.Stroke:
		lineCap := op.Cap
		if lineCap != graphics.LineCapRound && lineCap != graphics.LineCapSquare {
			lineCap = graphics.LineCapButt
		}
		return p.stroke(tc.Points, op.Width, lineCap)
	default:
		return fmt.Errorf("unsupported operation %T", tc.Op)
	}
}

// hasCTM reports whether the test case carries a non-trivial
// transformation.
func hasCTM(tc testcases.TestCase) bool {
	return tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity
}

// caseCTM returns the transformation of a test case. The zero matrix
// stands for the identity.
func caseCTM(tc testcases.TestCase) matrix.Matrix {
	if !hasCTM(tc) {
		return matrix.Identity
	}
	return tc.CTM
}
