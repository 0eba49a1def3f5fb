// seehuhn.de/go/boxgeom - triangle strip geometry for rounded boxes
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


// Command boxpng renders a box to a PNG image, using the triangle strips
// generated by boxgeom.  The box is either read from a YAML file or taken
// from the built-in test cases.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/spf13/pflag"

	"seehuhn.de/go/boxgeom"
	"seehuhn.de/go/boxgeom/testcases"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		boxFile  string
		caseName string
		outFile  string
		scale    float64
		list     bool
		debug    bool
	)

	pflag.StringVarP(&boxFile, "box", "b", "", "YAML file describing the box")
	pflag.StringVarP(&caseName, "case", "c", "", "Name of a built-in test case, e.g. border_rounded_uniform")
	pflag.StringVarP(&outFile, "output", "o", "box.png", "Output PNG file")
	pflag.Float64VarP(&scale, "scale", "s", 1, "Scale factor from box coordinates to pixels")
	pflag.BoolVarP(&list, "list", "l", false, "List the built-in test cases")
	pflag.BoolVar(&debug, "debug", false, "Log debug messages to stderr")
	pflag.Parse()

	if list {
		for _, name := range caseNames() {
			fmt.Println(name)
		}
		return 0
	}

	if debug {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		boxgeom.SetLogger(slog.New(h))
	}

	if scale <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid scale %g\n", scale)
		return 1
	}

	var (
		box           boxgeom.Box
		width, height int
	)
	switch {
	case boxFile != "" && caseName != "":
		fmt.Fprintln(os.Stderr, "Error: --box and --case are mutually exclusive")
		return 1
	case boxFile != "":
		cfg, err := loadConfig(boxFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", boxFile, err)
			return 1
		}
		box, err = cfg.Box()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in %s: %v\n", boxFile, err)
			return 1
		}
		width, height = cfg.Width, cfg.Height
	case caseName != "":
		tc, ok := findCase(caseName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown test case %q\n", caseName)
			return 1
		}
		box = tc.Box()
		width, height = tc.Width, tc.Height
	default:
		fmt.Fprintln(os.Stderr, "Error: either --box or --case is required")
		pflag.Usage()
		return 1
	}

	w := int(float64(width)*scale + 0.5)
	h := int(float64(height)*scale + 0.5)
	img, err := renderBox(box, w, h, scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	f, err := os.Create(outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		return 1
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
		return 1
	}
	return 0
}

func caseNames() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			names = append(names, category+"_"+tc.Name)
		}
	}
	return names
}

func findCase(name string) (testcases.TestCase, bool) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			if category+"_"+tc.Name == name {
				return tc, true
			}
		}
	}
	return testcases.TestCase{}, false
}
