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

// Package canvas provides an in-memory RGBA image which segment batches
// and polygons can be drawn onto.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
	"seehuhn.de/go/multiline/raster"
)

// Canvas is an RGBA image with anti-aliased drawing operations.
// The origin is the top-left corner and the y-axis points down, unless
// changed with [WithTransform].
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	r    *raster.Rasteriser
	mask *image.Alpha
	src  *image.Uniform

	lineCap graphics.LineCapStyle
	ctm     matrix.Matrix
}

var (
	_ multiline.SegmentDrawer = (*Canvas)(nil)
	_ multiline.PolygonDrawer = (*Canvas)(nil)
)

// Option configures a Canvas created by [New].
type Option func(*Canvas)

// WithBackground fills the canvas with c. The default background is
// transparent.
func WithBackground(c color.Color) Option {
	return func(cv *Canvas) {
		draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

// WithCap sets the cap style for the ends of drawn segments.
// The default is [graphics.LineCapButt].
func WithCap(lineCap graphics.LineCapStyle) Option {
	return func(cv *Canvas) {
		cv.lineCap = lineCap
	}
}

// WithTransform sets the map from drawing coordinates to pixel
// coordinates. Line widths are given in drawing coordinates and scale
// with the transformation.
func WithTransform(m matrix.Matrix) Option {
	return func(cv *Canvas) {
		cv.ctm = m
	}
}

// New returns a canvas of the given size in pixels.
func New(width, height int, opts ...Option) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	cv := &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		r:       raster.NewRasteriser(clip),
		mask:    image.NewAlpha(image.Rect(0, 0, width, 1)),
		src:     image.NewUniform(color.Black),
		lineCap: graphics.LineCapButt,
		ctm:     matrix.Identity,
	}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

// DrawMultiline draws a segment batch with the given colour and line
// width. It implements [multiline.SegmentDrawer].
func (cv *Canvas) DrawMultiline(points []vec.Vec2, c color.Color, width float64) error {
	if len(points)%2 != 0 {
		return fmt.Errorf("canvas: %d points: %w", len(points), multiline.ErrOddPoints)
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return fmt.Errorf("canvas: line width %g: %w", width, multiline.ErrInvalidGeometry)
	}
	if err := checkFinite(points); err != nil {
		return err
	}
	cv.setup()
	cv.r.Width = width
	cv.src.C = c
	cv.r.StrokeSegments(points, cv.composite)
	return nil
}

// DrawPolygon fills the polygon with the given vertices using the
// nonzero winding rule. It implements [multiline.PolygonDrawer].
func (cv *Canvas) DrawPolygon(vertices []vec.Vec2, c color.Color) error {
	return cv.FillPolygon(vertices, raster.NonZero, c)
}

// FillPolygon fills the polygon with the given vertices using the given
// fill rule.
func (cv *Canvas) FillPolygon(vertices []vec.Vec2, rule raster.FillRule, c color.Color) error {
	if err := checkFinite(vertices); err != nil {
		return err
	}
	cv.setup()
	cv.src.C = c
	cv.r.FillPolygon(vertices, rule, cv.composite)
	return nil
}

// checkFinite reports an error if any point has a NaN or infinite
// coordinate. Such a point would spoil the bounding box of the whole
// shape.
func checkFinite(points []vec.Vec2) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("canvas: point %d (%g,%g): %w", i, p.X, p.Y, multiline.ErrInvalidGeometry)
		}
	}
	return nil
}

func (cv *Canvas) setup() {
	cv.r.Reset(cv.r.Clip)
	cv.r.CTM = cv.ctm
	cv.r.Cap = cv.lineCap
}

// composite paints one row of coverage onto the image, using cv.src as
// the colour and Porter-Duff "over" compositing.
func (cv *Canvas) composite(y, xMin int, coverage []float32) {
	row := cv.mask.Pix[:len(coverage)]
	for i, a := range coverage {
		row[i] = uint8(min(max(a, 0), 1)*255 + 0.5)
	}
	r := image.Rect(xMin, y, xMin+len(coverage), y+1)
	draw.DrawMask(cv.img, r, cv.src, image.Point{}, cv.mask, image.Point{}, draw.Over)
}

// Image returns the underlying image. Later drawing operations modify
// the returned image.
func (cv *Canvas) Image() *image.RGBA {
	return cv.img
}

// WritePNG encodes the canvas as a PNG image.
func (cv *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, cv.img)
}
