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
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/multiline"
	"seehuhn.de/go/multiline/testcases"
)

var exportStdout bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the scenarios as JSON",
	Long: `Write the selected scenarios to testcases.json in the output directory.
Each scenario is stored as a path of M, L and Z commands together with
the paint operation, so that other renderers can draw the same picture.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := selectCases()
		if err != nil {
			return err
		}

		var out struct {
			TestCases []jsonTestCase `json:"testcases"`
		}
		for _, c := range cases {
			out.TestCases = append(out.TestCases, toJSON(c))
		}

		if exportStdout {
			return writeJSON(os.Stdout, out)
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
		fname := filepath.Join(outDir, "testcases.json")
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		if err := writeJSON(f, out); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		multiline.Logger().Info("wrote scenarios", "file", fname, "count", len(cases))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to standard output instead of a file")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Path      []jsonSegment `json:"path"`
	CTM       []float64     `json:"ctm,omitempty"`
	Op        string        `json:"op"`
	FillRule  string        `json:"fill_rule,omitempty"`
	LineWidth float64       `json:"line_width,omitempty"`
	LineCap   string        `json:"line_cap,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(c namedCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   c.FullName(),
		Width:  c.Width,
		Height: c.Height,
		Path:   pathToJSON(casePath(c.TestCase)),
	}
	if hasCTM(c.TestCase) {
		jtc.CTM = c.CTM[:]
	}

	switch op := c.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
	}
	return jtc
}

// casePath converts the points of a test case into a path: one closed
// subpath for fills, one open subpath per segment for strokes.
func casePath(tc testcases.TestCase) *path.Data {
	if _, isFill := tc.Op.(testcases.Fill); isFill {
		return multiline.PolygonPath(tc.Points)
	}
	return multiline.SegmentsPath(tc.Points)
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		default:
			multiline.Logger().Debug("unknown path command", "cmd", cmd)
			continue
		}
		seg.Pts = make([][]float64, n)
		for i := range n {
			pt := p.Coords[k+i]
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}
