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


package boxgeom_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/boxgeom"
	"seehuhn.de/go/boxgeom/raster"
	"seehuhn.de/go/boxgeom/testcases"
)

// TestCoverage compares the area covered by the generated triangle strips
// with the exact outline of the box.
func TestCoverage(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			m := tc.Metrics()
			b := tc.Box()

			t.Run(name+"_fill", func(t *testing.T) {
				n, err := boxgeom.ColoredFillLineCount(b.Rect, b.Shape, b.Border, b.Fill)
				if err != nil {
					t.Fatal(err)
				}
				lines := make([]boxgeom.ColoredLine, n)
				if _, err := boxgeom.SetColoredFillLines(b.Rect, b.Shape, b.Border, b.Fill, lines); err != nil {
					t.Fatal(err)
				}
				checkCoverage(t, name+"_fill", &tc, lines, testcases.InnerOutline(&m))
			})

			t.Run(name+"_border", func(t *testing.T) {
				n := boxgeom.ColoredBorderLineCount(b.Rect, b.Shape, b.Border, b.BorderColors)
				lines := make([]boxgeom.ColoredLine, n)
				boxgeom.SetColoredBorderLines(b.Rect, b.Shape, b.Border, b.BorderColors, lines)
				checkCoverage(t, name+"_border", &tc, lines, testcases.BorderOutline(&m))
			})

			t.Run(name+"_box", func(t *testing.T) {
				n, err := b.LineCount()
				if err != nil {
					t.Fatal(err)
				}
				lines := make([]boxgeom.ColoredLine, n)
				if k, err := b.SetLines(lines); err != nil || k != n {
					t.Fatalf("SetLines: %d lines, %v", k, err)
				}
				checkCoverage(t, name+"_box", &tc, lines, testcases.Outline(&m))
			})
		}
	}
}

// TestFillColors checks the interpolated vertex colors of the fill against
// the gradient, at the pixel centers inside the box.
func TestFillColors(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Fill == nil {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				b := tc.Box()
				n, err := boxgeom.ColoredFillLineCount(b.Rect, b.Shape, b.Border, b.Fill)
				if err != nil {
					t.Fatal(err)
				}
				lines := make([]boxgeom.ColoredLine, n)
				boxgeom.SetColoredFillLines(b.Rect, b.Shape, b.Border, b.Fill, lines)
				pts, cols := boxgeom.ColoredStripPoints(nil, nil, lines)

				start, end := b.Fill.Endpoints(b.Rect)
				d := end.Sub(start)
				value := func(p vec.Vec2) float64 {
					return p.Sub(start).Dot(d) / d.Dot(d)
				}

				checked := 0
				for y := range tc.Height {
					for x := range tc.Width {
						p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
						v := value(p)
						if nearStop(b.Fill, v) {
							continue
						}
						got, ok := interpolate(pts, cols, p)
						if !ok {
							continue
						}
						want := b.Fill.ColorAt(v)
						if !closeColor(got, want, 3) {
							t.Errorf("pixel (%d,%d): color %v, want %v", x, y, got, want)
							return
						}
						checked++
					}
				}
				if checked == 0 {
					t.Error("no pixel inside the fill")
				}
			})
		}
	}
}

func TestUnsupportedGradient(t *testing.T) {
	r := rect.Rect{URx: 40, URy: 30}
	g := boxgeom.NewLinearGradient(0, 0, 1, 1,
		boxgeom.Stop{Position: 0, Color: color.RGBA{R: 255, A: 255}},
		boxgeom.Stop{Position: 1, Color: color.RGBA{B: 255, A: 255}})

	radial := g
	radial.Type = boxgeom.RadialGradient
	repeat := g
	repeat.Spread = boxgeom.RepeatSpread

	for _, bad := range []boxgeom.Gradient{radial, repeat} {
		if boxgeom.IsGradientSupported(bad) {
			t.Errorf("%v is supported", bad)
		}
		if _, err := boxgeom.ColoredFillLineCount(r, boxgeom.Shape{}, boxgeom.Border{}, bad); !errors.Is(err, boxgeom.ErrUnsupportedGradient) {
			t.Errorf("ColoredFillLineCount: %v", err)
		}
		if _, err := boxgeom.SetColoredFillLines(r, boxgeom.Shape{}, boxgeom.Border{}, bad, nil); !errors.Is(err, boxgeom.ErrUnsupportedGradient) {
			t.Errorf("SetColoredFillLines: %v", err)
		}
		err := boxgeom.SetColoredBorderAndFillLines(r, boxgeom.Shape{}, boxgeom.Border{},
			boxgeom.BorderColors{}, bad, nil, nil)
		if !errors.Is(err, boxgeom.ErrUnsupportedGradient) {
			t.Errorf("SetColoredBorderAndFillLines: %v", err)
		}

		b := boxgeom.Box{Rect: r, Fill: bad}
		if _, err := b.LineCount(); !errors.Is(err, boxgeom.ErrUnsupportedGradient) {
			t.Errorf("Box.LineCount: %v", err)
		}
	}

	// A fill which is not painted does not need to be supported.
	radial.Stops = []boxgeom.Stop{{Position: 0}, {Position: 1}}
	b := boxgeom.Box{
		Rect:         r,
		Border:       boxgeom.UniformBorder(2),
		BorderColors: boxgeom.UniformBorderColors(color.RGBA{A: 255}),
		Fill:         radial,
	}
	n, err := b.LineCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("%d lines for a plain border", n)
	}
}

func TestBorderAndFill(t *testing.T) {
	r := rect.Rect{LLx: 4, LLy: 4, URx: 92, URy: 60}
	shape := boxgeom.UniformShape(16)
	border := boxgeom.UniformBorder(3)
	bc := boxgeom.UniformBorderColors(color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	for _, g := range []boxgeom.Gradient{
		boxgeom.NewLinearGradient(0, 0, 0, 1, boxgeom.Stop{Position: 0, Color: red}, boxgeom.Stop{Position: 1, Color: blue}),
		boxgeom.NewLinearGradient(0, 0, 1, 1, boxgeom.Stop{Position: 0.4, Color: red}, boxgeom.Stop{Position: 0.6, Color: blue}),
	} {
		nb := boxgeom.ColoredBorderLineCount(r, shape, border, bc)
		nf, err := boxgeom.ColoredFillLineCount(r, shape, border, g)
		if err != nil {
			t.Fatal(err)
		}
		borderLines := make([]boxgeom.ColoredLine, nb)
		fillLines := make([]boxgeom.ColoredLine, nf)
		if err := boxgeom.SetColoredBorderAndFillLines(r, shape, border, bc, g, borderLines, fillLines); err != nil {
			t.Fatal(err)
		}

		wantBorder := make([]boxgeom.ColoredLine, nb)
		boxgeom.SetColoredBorderLines(r, shape, border, bc, wantBorder)
		wantFill := make([]boxgeom.ColoredLine, nf)
		boxgeom.SetColoredFillLines(r, shape, border, g, wantFill)

		for i := range borderLines {
			if !nearLine(borderLines[i], wantBorder[i]) {
				t.Errorf("border line %d: %v != %v", i, borderLines[i], wantBorder[i])
			}
		}
		for i := range fillLines {
			if !nearLine(fillLines[i], wantFill[i]) || !closeColor(fillLines[i].C1, wantFill[i].C1, 1) {
				t.Errorf("fill line %d: %v != %v", i, fillLines[i], wantFill[i])
			}
		}
	}
}

// TestAgainstGhostscript compares the box coverage with reference images
// produced by "go run ./testcases/genpdf".  Cases without a reference image
// are skipped.
func TestAgainstGhostscript(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, os.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				b := tc.Box()
				n, err := b.LineCount()
				if err != nil {
					t.Fatal(err)
				}
				lines := make([]boxgeom.ColoredLine, n)
				b.SetLines(lines)
				actual := renderStrip(tc.Width, tc.Height, lines)

				if err := compareImages(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func checkCoverage(t *testing.T, name string, tc *testcases.TestCase, lines []boxgeom.ColoredLine, outline *path.Data) {
	t.Helper()
	w, h := tc.Width, tc.Height
	expected := renderOutline(w, h, outline)
	actual := renderStrip(w, h, lines)
	if err := compareImages(name, expected, actual, w, h); err != nil {
		t.Error(err)
	}
}

// renderStrip rasterizes the triangle strip given by lines into a
// grayscale coverage buffer.
func renderStrip(w, h int, lines []boxgeom.ColoredLine) []byte {
	buf := make([]byte, w*h)
	pts, _ := boxgeom.ColoredStripPoints(nil, nil, lines)

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.FillStrip(pts, func(y, xMin int, coverage []float32) {
		row := buf[y*w:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	})
	return buf
}

// renderOutline rasterizes an outline with x/image/vector.
func renderOutline(w, h int, p *path.Data) []byte {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(p.Cmds) == 0 {
		return dst.Pix
	}

	z := vector.NewRasterizer(w, h)
	pt := func(v vec.Vec2) (float32, float32) { return float32(v.X), float32(v.Y) }
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(pt(p.Coords[k]))
			k++
		case path.CmdLineTo:
			z.LineTo(pt(p.Coords[k]))
			k++
		case path.CmdQuadTo:
			x1, y1 := pt(p.Coords[k])
			x2, y2 := pt(p.Coords[k+1])
			z.QuadTo(x1, y1, x2, y2)
			k += 2
		case path.CmdCubeTo:
			x1, y1 := pt(p.Coords[k])
			x2, y2 := pt(p.Coords[k+1])
			x3, y3 := pt(p.Coords[k+2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	buf := make([]byte, w*h)
	for y := range h {
		copy(buf[y*w:(y+1)*w], dst.Pix[y*dst.Stride:])
	}
	return buf
}

// interpolate finds a triangle of the strip which contains p and returns
// the color at p, interpolated from the vertex colors.
func interpolate(pts []vec.Vec2, cols []color.RGBA, p vec.Vec2) (color.RGBA, bool) {
	for i := 0; i+2 < len(pts); i++ {
		a, b, c := pts[i], pts[i+1], pts[i+2]
		area := raster.TriangleArea(a, b, c)
		if math.Abs(area) < 1e-9 {
			continue
		}
		l0 := raster.TriangleArea(p, b, c) / area
		l1 := raster.TriangleArea(a, p, c) / area
		l2 := raster.TriangleArea(a, b, p) / area
		if l0 < -1e-9 || l1 < -1e-9 || l2 < -1e-9 {
			continue
		}

		mix := func(x, y, z uint8) uint8 {
			v := l0*float64(x) + l1*float64(y) + l2*float64(z)
			return uint8(max(0, min(255, math.Round(v))))
		}
		ca, cb, cc := cols[i], cols[i+1], cols[i+2]
		return color.RGBA{
			R: mix(ca.R, cb.R, cc.R),
			G: mix(ca.G, cb.G, cc.G),
			B: mix(ca.B, cb.B, cc.B),
			A: mix(ca.A, cb.A, cc.A),
		}, true
	}
	return color.RGBA{}, false
}

// nearStop reports whether v is close to a stop where the gradient has a
// discontinuity.
func nearStop(g boxgeom.Gradient, v float64) bool {
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Position == g.Stops[i-1].Position && math.Abs(v-g.Stops[i].Position) < 1e-3 {
			return true
		}
	}
	return false
}

func closeColor(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) int {
		return int(math.Abs(float64(x) - float64(y)))
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && d(a.A, b.A) <= tol
}

func nearLine(a, b boxgeom.ColoredLine) bool {
	const eps = 1e-9
	return math.Abs(a.P1.X-b.P1.X) <= eps && math.Abs(a.P1.Y-b.P1.Y) <= eps &&
		math.Abs(a.P2.X-b.P2.X) <= eps && math.Abs(a.P2.Y-b.P2.Y) <= eps
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	// - at least 80% of pixels are (almost) identical
	// - at least 95% of differences are < 64
	// - at least 99% of differences are < 128
	var failures []string
	if p80 > 1 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want <=1)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// 3 panels: actual (left), diff (middle), expected (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green: too little coverage, red: too much
			diff := int(expected[i]) - int(actual[i])
			diffColor := color.RGBA{A: 255}
			if diff > 0 {
				diffColor.G = uint8(diff)
			} else if diff < 0 {
				diffColor.R = uint8(-diff)
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
