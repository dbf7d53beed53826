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
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/multiline"
	"seehuhn.de/go/multiline/testcases"
)

var runGhostscript bool

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Write the scenarios as PDF files",
	Long: `Write one single-page PDF file per selected scenario to the output
directory. With --gs, each PDF is also rendered to a PNG image using
Ghostscript, which gives an independent rendering to compare the
output of the png command against.`,
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
			pdfPath := filepath.Join(outDir, c.FullName()+".pdf")
			if err := generatePDF(c.TestCase, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", c.FullName(), err)
			}
			multiline.Logger().Info("wrote PDF", "file", pdfPath)

			if !runGhostscript {
				continue
			}
			pngPath := filepath.Join(outDir, c.FullName()+"_gs.png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", c.FullName(), err)
			}
			multiline.Logger().Info("wrote image", "file", pngPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().BoolVar(&runGhostscript, "gs", false, "Also render each PDF to PNG using Ghostscript")
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	p := &pdfPainter{fname: pdfPath}
	err := paintCase(p, tc)
	if p.page == nil {
		return err
	}
	if cerr := p.page.Close(); err == nil {
		err = cerr
	}
	return err
}

// pdfPainter writes a single-page PDF file. One PDF point corresponds to
// one pixel of the png command at 72 DPI.
type pdfPainter struct {
	fname string
	page  *document.Page
}

func (p *pdfPainter) begin(width, height int, ctm matrix.Matrix) error {
	w, h := float64(width), float64(height)
	page, err := document.CreateSinglePage(p.fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	p.page = page

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF places the origin at the bottom left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.Transform(ctm)

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	return nil
}

func (p *pdfPainter) fill(vertices []vec.Vec2, rule testcases.FillRule) error {
	if err := p.addPath(multiline.PolygonPath(vertices)); err != nil {
		return err
	}
	if rule == testcases.EvenOdd {
		p.page.FillEvenOdd()
	} else {
		p.page.Fill()
	}
	return nil
}

func (p *pdfPainter) stroke(points []vec.Vec2, width float64, lineCap graphics.LineCapStyle) error {
	p.page.SetLineWidth(width)
	p.page.SetLineCap(lineCap)
	if err := p.addPath(multiline.SegmentsPath(points)); err != nil {
		return err
	}
	p.page.Stroke()
	return nil
}

// addPath appends the commands of a straight-line path to the current
// PDF path.
func (p *pdfPainter) addPath(data *path.Data) error {
	k := 0
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(data.Coords[k].X, data.Coords[k].Y)
			k++
		case path.CmdLineTo:
			p.page.LineTo(data.Coords[k].X, data.Coords[k].Y)
			k++
		case path.CmdClose:
			p.page.ClosePath()
		default:
			return fmt.Errorf("unexpected path command %v", cmd)
		}
	}
	return nil
}

// renderPNG converts a PDF file to an 8-bit grayscale PNG at 72 DPI,
// using 4x supersampling for anti-aliasing.
func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
