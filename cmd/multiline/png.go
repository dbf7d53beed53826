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
	"image/color"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
	"seehuhn.de/go/multiline/canvas"
	"seehuhn.de/go/multiline/raster"
	"seehuhn.de/go/multiline/testcases"
)

var pngCmd = &cobra.Command{
	Use:   "png",
	Short: "Render the scenarios to PNG images",
	Long: `Render the selected scenarios with the built-in rasteriser and write one
PNG image per scenario to the output directory. Shapes are drawn in
white on a black background, so that pixel values equal coverage.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := selectCases()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
		for _, c := range cases {
			fname := filepath.Join(outDir, c.FullName()+".png")
			if err := writePNG(c.TestCase, fname); err != nil {
				return fmt.Errorf("%s: %w", c.FullName(), err)
			}
			multiline.Logger().Info("wrote image", "file", fname)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pngCmd)
}

func writePNG(tc testcases.TestCase, fname string) error {
	cv, err := renderCase(tc)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := cv.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderCase draws a test case onto a new canvas.
func renderCase(tc testcases.TestCase) (*canvas.Canvas, error) {
	p := &canvasPainter{}
	if err := paintCase(p, tc); err != nil {
		return nil, err
	}
	return p.cv, nil
}

// canvasPainter paints onto a [canvas.Canvas]. The canvas is created by
// the paint operation, since the cap style is fixed at creation.
type canvasPainter struct {
	width, height int
	ctm           matrix.Matrix
	cv            *canvas.Canvas
}

func (p *canvasPainter) begin(width, height int, ctm matrix.Matrix) error {
	p.width, p.height, p.ctm = width, height, ctm
	return nil
}

func (p *canvasPainter) newCanvas(opts ...canvas.Option) *canvas.Canvas {
	opts = append(opts, canvas.WithBackground(color.Black), canvas.WithTransform(p.ctm))
	p.cv = canvas.New(p.width, p.height, opts...)
	return p.cv
}

func (p *canvasPainter) fill(vertices []vec.Vec2, rule testcases.FillRule) error {
	r := raster.NonZero
	if rule == testcases.EvenOdd {
		r = raster.EvenOdd
	}
	return p.newCanvas().FillPolygon(vertices, r, color.White)
}

func (p *canvasPainter) stroke(points []vec.Vec2, width float64, lineCap graphics.LineCapStyle) error {
	return p.newCanvas(canvas.WithCap(lineCap)).DrawMultiline(points, color.White, width)
}
