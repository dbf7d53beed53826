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


// Command multiline renders the built-in drawing scenarios, for visual
// inspection and for comparison with other renderers.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/multiline"
	"seehuhn.de/go/multiline/testcases"
)

var (
	outDir     string
	caseFilter string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "multiline",
	Short: "Render the multiline drawing scenarios",
	Long: `multiline renders the built-in drawing scenarios (dots, arrows, rulers,
axes, polygons, candlestick charts and more) to PNG or PDF files, or
exports their point lists as JSON.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		multiline.SetLogger(slog.New(h))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "Output directory")
	rootCmd.PersistentFlags().StringVarP(&caseFilter, "case", "c", "", "Only use the given category or category/name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// namedCase is a test case together with its category.
type namedCase struct {
	Category string
	testcases.TestCase
}

// FullName returns the name used for output files.
func (c namedCase) FullName() string {
	return c.Category + "_" + c.Name
}

// selectCases returns the test cases matching the --case flag, in a
// stable order.
func selectCases() ([]namedCase, error) {
	category, name, _ := strings.Cut(caseFilter, "/")

	if name != "" {
		tc, ok := testcases.Find(category, name)
		if !ok {
			return nil, fmt.Errorf("unknown test case %q", caseFilter)
		}
		return []namedCase{{Category: category, TestCase: tc}}, nil
	}

	var res []namedCase
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if category != "" && cat != category {
			continue
		}
		for _, tc := range testcases.All[cat] {
			res = append(res, namedCase{Category: cat, TestCase: tc})
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return res, nil
}
