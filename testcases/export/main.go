// Command export writes the box test cases, together with their exact
// outlines and the line counts of the generated strips, to JSON.
// Run from the boxgeom module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/boxgeom"
	"seehuhn.de/go/boxgeom/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string        `json:"name"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Rect    [4]float64    `json:"rect"`
	Radii   [4][2]float64 `json:"radii"`
	Border  [4]float64    `json:"border"`
	Outline []jsonSegment `json:"outline"`
	Inner   []jsonSegment `json:"inner,omitempty"`

	BorderLines int `json:"border_lines"`
	FillLines   int `json:"fill_lines"`
	BoxLines    int `json:"box_lines"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	m := tc.Metrics()
	b := tc.Box()

	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		Rect:    [4]float64{tc.Rect.LLx, tc.Rect.LLy, tc.Rect.URx, tc.Rect.URy},
		Border:  [4]float64{tc.Border.Left, tc.Border.Top, tc.Border.Right, tc.Border.Bottom},
		Outline: pathToJSON(testcases.Outline(&m)),
		Inner:   pathToJSON(testcases.InnerOutline(&m)),
	}
	for i, c := range m.Corners {
		jtc.Radii[i] = [2]float64{c.RadiusX, c.RadiusY}
	}

	jtc.BorderLines = boxgeom.ColoredBorderLineCount(b.Rect, b.Shape, b.Border, b.BorderColors)
	if n, err := boxgeom.ColoredFillLineCount(b.Rect, b.Shape, b.Border, b.Fill); err == nil {
		jtc.FillLines = n
	}
	if n, err := b.LineCount(); err == nil {
		jtc.BoxLines = n
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
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
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[k : k+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}
