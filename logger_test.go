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


package boxgeom

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	m := NewMetrics(rect.Rect{URx: 80, URy: 40}, UniformShape(10), Border{})
	NewGradientStroker(&m, NewLinearGradient(0, 0, 1, 1, Stop{0, testRed}, Stop{1, testBlue}))

	if out := buf.String(); !strings.Contains(out, "filler=FillerD") {
		t.Errorf("unexpected log output %q", out)
	}

	SetLogger(nil)
	buf.Reset()
	NewGradientStroker(&m, NewLinearGradient(0, 0, 1, 1, Stop{0, testRed}, Stop{1, testBlue}))
	if buf.Len() != 0 {
		t.Errorf("default logger wrote %q", buf.String())
	}
}
