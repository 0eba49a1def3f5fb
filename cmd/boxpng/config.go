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


package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"cogentcore.org/core/colors"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/boxgeom"
)

// config is the YAML description of a box.  Coordinates use a y-axis
// pointing down.
//
//	width: 200
//	height: 120
//	rect: [10, 10, 190, 110]    # left, top, right, bottom
//	radius: 16
//	border: [2]                 # all edges, or left, top, right, bottom
//	border_color: "#000000"
//	fill:
//	  direction: [0, 0, 0, 1]
//	  stops:
//	    - {position: 0, color: "#ff0000"}
//	    - {position: 1, color: "#0000ff"}
type config struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Rect   [4]float64 `yaml:"rect"`

	Radius float64      `yaml:"radius"`
	Radii  *radiiConfig `yaml:"radii"`

	Border       []float64         `yaml:"border"`
	BorderColor  string            `yaml:"border_color"`
	BorderColors *edgeColorsConfig `yaml:"border_colors"`

	Fill *gradientConfig `yaml:"fill"`
}

type radiiConfig struct {
	TopLeft     []float64 `yaml:"top_left"`
	TopRight    []float64 `yaml:"top_right"`
	BottomLeft  []float64 `yaml:"bottom_left"`
	BottomRight []float64 `yaml:"bottom_right"`
}

type edgeColorsConfig struct {
	Left   gradientConfig `yaml:"left"`
	Top    gradientConfig `yaml:"top"`
	Right  gradientConfig `yaml:"right"`
	Bottom gradientConfig `yaml:"bottom"`
}

// gradientConfig is either a solid color, or a linear gradient.  The
// direction is relative to the box unless Absolute is set.
type gradientConfig struct {
	Color     string       `yaml:"color"`
	Direction [4]float64   `yaml:"direction"`
	Stops     []stopConfig `yaml:"stops"`
	Absolute  bool         `yaml:"absolute"`
}

type stopConfig struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

func loadConfig(fname string) (*config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (*config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := &config{}
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("width and height must be positive")
	}
	return cfg, nil
}

// Box converts the configuration into a box.
func (cfg *config) Box() (boxgeom.Box, error) {
	b := boxgeom.Box{
		Rect: rect.Rect{
			LLx: cfg.Rect[0],
			LLy: cfg.Rect[1],
			URx: cfg.Rect[2],
			URy: cfg.Rect[3],
		},
		Shape: boxgeom.UniformShape(cfg.Radius),
	}

	if cfg.Radii != nil {
		var err error
		corners := []struct {
			dst  *boxgeom.Radius
			val  []float64
			name string
		}{
			{&b.Shape.TopLeft, cfg.Radii.TopLeft, "top_left"},
			{&b.Shape.TopRight, cfg.Radii.TopRight, "top_right"},
			{&b.Shape.BottomLeft, cfg.Radii.BottomLeft, "bottom_left"},
			{&b.Shape.BottomRight, cfg.Radii.BottomRight, "bottom_right"},
		}
		for _, c := range corners {
			*c.dst, err = parseRadius(c.val)
			if err != nil {
				return b, fmt.Errorf("radius %s: %w", c.name, err)
			}
		}
	}

	switch len(cfg.Border) {
	case 0:
	case 1:
		b.Border = boxgeom.UniformBorder(cfg.Border[0])
	case 4:
		b.Border = boxgeom.Border{
			Left:   cfg.Border[0],
			Top:    cfg.Border[1],
			Right:  cfg.Border[2],
			Bottom: cfg.Border[3],
		}
	default:
		return b, fmt.Errorf("border: expected 1 or 4 values, got %d", len(cfg.Border))
	}

	switch {
	case cfg.BorderColors != nil:
		edges := []struct {
			dst  *boxgeom.Gradient
			src  *gradientConfig
			name string
		}{
			{&b.BorderColors.Left, &cfg.BorderColors.Left, "left"},
			{&b.BorderColors.Top, &cfg.BorderColors.Top, "top"},
			{&b.BorderColors.Right, &cfg.BorderColors.Right, "right"},
			{&b.BorderColors.Bottom, &cfg.BorderColors.Bottom, "bottom"},
		}
		for _, e := range edges {
			g, err := e.src.Gradient()
			if err != nil {
				return b, fmt.Errorf("border color %s: %w", e.name, err)
			}
			*e.dst = g
		}
	case cfg.BorderColor != "":
		c, err := parseColor(cfg.BorderColor)
		if err != nil {
			return b, fmt.Errorf("border_color: %w", err)
		}
		b.BorderColors = boxgeom.UniformBorderColors(c)
	default:
		b.BorderColors = boxgeom.UniformBorderColors(color.RGBA{A: 255})
	}

	if cfg.Fill != nil {
		g, err := cfg.Fill.Gradient()
		if err != nil {
			return b, fmt.Errorf("fill: %w", err)
		}
		b.Fill = g
	}

	return b, nil
}

func (gc *gradientConfig) Gradient() (boxgeom.Gradient, error) {
	if gc.Color != "" {
		if len(gc.Stops) > 0 {
			return boxgeom.Gradient{}, errors.New("both color and stops given")
		}
		c, err := parseColor(gc.Color)
		if err != nil {
			return boxgeom.Gradient{}, err
		}
		return boxgeom.SolidGradient(c), nil
	}

	if len(gc.Stops) == 0 {
		return boxgeom.Gradient{}, errors.New("no color given")
	}
	stops := make([]boxgeom.Stop, len(gc.Stops))
	for i, s := range gc.Stops {
		c, err := parseColor(s.Color)
		if err != nil {
			return boxgeom.Gradient{}, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = boxgeom.Stop{Position: s.Position, Color: c}
	}

	d := gc.Direction
	g := boxgeom.NewLinearGradient(d[0], d[1], d[2], d[3], stops...)
	g.Stretched = !gc.Absolute
	if !g.IsValid() {
		return g, errors.New("invalid gradient")
	}
	return g, nil
}

func parseRadius(val []float64) (boxgeom.Radius, error) {
	switch len(val) {
	case 0:
		return boxgeom.Radius{}, nil
	case 1:
		return boxgeom.Radius{X: val[0], Y: val[0]}, nil
	case 2:
		return boxgeom.Radius{X: val[0], Y: val[1]}, nil
	default:
		return boxgeom.Radius{}, fmt.Errorf("expected 1 or 2 values, got %d", len(val))
	}
}

// parseColor parses a CSS color: a hex value like "#f80", "#rrggbb" or
// "#rrggbbaa", a color name, or an rgb()/rgba()/hsl() form.  The result is
// alpha-premultiplied.
func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, errors.New("empty color")
	}
	c, err := colors.FromString(s, nil)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed color %q: %w", s, err)
	}

	a := uint32(c.A)
	premul := func(x uint8) uint8 {
		return uint8((uint32(x)*a + 127) / 255)
	}
	return color.RGBA{R: premul(c.R), G: premul(c.G), B: premul(c.B), A: c.A}, nil
}
