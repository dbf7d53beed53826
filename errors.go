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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidGeometry is reported when a shape parameter violates the
	// preconditions of an operation, for example a polygon with fewer
	// than three vertices or a direction given by two coincident points.
	ErrInvalidGeometry = errors.New("invalid geometry parameter")

	// ErrOddPoints is returned by drawers when a segment batch does not
	// consist of complete (start, end) pairs.
	ErrOddPoints = errors.New("odd number of points in segment batch")
)

// OpError records a rejected [Multiline] operation.
type OpError struct {
	Op  string // name of the operation, e.g. "arrow"
	Err error
}

func (e *OpError) Error() string {
	return "multiline: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// check collects precondition violations for a single operation.
// Only the first failure is kept.
type check struct {
	err error
}

func (c *check) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf(format+": %w", append(args, ErrInvalidGeometry)...)
	}
}

func (c *check) points(pts ...vec.Vec2) *check {
	if !finitePoints(pts...) {
		c.fail("non-finite coordinate")
	}
	return c
}

func (c *check) values(xs ...float64) *check {
	if !isFinite(xs...) {
		c.fail("non-finite parameter")
	}
	return c
}

// nonNegative requires every x to be >= 0. The caller passes a short name
// for the error message.
func (c *check) nonNegative(name string, xs ...float64) *check {
	for _, x := range xs {
		if x < 0 {
			c.fail("negative %s %g", name, x)
			break
		}
	}
	return c
}

// distinct requires a and b to be far enough apart to define a direction.
func (c *check) distinct(a, b vec.Vec2) *check {
	return c.direction(b.Sub(a))
}

// direction requires v to be usable as a direction.
func (c *check) direction(v vec.Vec2) *check {
	if v.Length() < zeroLengthThreshold {
		c.fail("zero-length direction")
	}
	return c
}
