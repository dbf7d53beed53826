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

// Package testcases holds named drawing scenarios built with the
// multiline builder. They are shared by the renderer tests, the
// benchmarks and the command line tool.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
)

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2    // a segment batch for Stroke, a vertex loop for Fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Operation is the rendering operation to apply to the points.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill fills the polygon given by the points.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke draws the points as a segment batch.
type Stroke struct {
	Width float64               // line width (>0)
	Cap   graphics.LineCapStyle // LineCapButt, LineCapRound, LineCapSquare
}

func (Stroke) isOperation() {}

// build runs fn on a fresh builder and returns the resulting points.
// The scenarios are fixed, so a rejected operation is a programming
// error.
func build(style multiline.LineStyle, fn func(m *multiline.Multiline)) []vec.Vec2 {
	m := multiline.New(multiline.WithStyle(style))
	fn(m)
	if err := m.Err(); err != nil {
		panic(fmt.Sprintf("testcases: %v", err))
	}
	return m.Points()
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
