// seehuhn.de/go/hitomezashi - a renderer for hitomezashi stitch patterns
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

// Package hitomezashi renders hitomezashi stitch patterns: families of
// parallel dashed lines whose dash/gap phase per line is controlled by a
// cyclic boolean selector sequence derived from an 8-bit seed.
//
// Pattern space uses the y-up convention: for a bounds rectangle, "top"
// is the larger y value. Horizontal sweep lines proceed from the top edge
// downwards, vertical sweep lines from the left edge to the right.
package hitomezashi

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DrawHorizontal sweeps the bounds rectangle from the top edge downwards,
// drawing one horizontal dashed line per step of dashLength. The line
// spacing equals the dash length. Sweep line i starts with a dash or a
// gap at the left edge according to sel.At(i).
//
// dashLength must be positive and sel must be non-empty.
func DrawHorizontal(c Canvas, bounds rect.Rect, dashLength float64, sel Selectors) {
	checkPattern(dashLength, sel)

	i := 0
	for y := bounds.URy; y > bounds.LLy; y -= dashLength {
		a := vec.Vec2{X: bounds.LLx, Y: y}
		b := vec.Vec2{X: bounds.URx, Y: y}
		strokeDashes(c, a, b, dashLength, sel.At(i))
		i++
	}
}

// DrawVertical sweeps the bounds rectangle from the left edge rightwards,
// drawing one vertical dashed line per step of dashLength. Each line runs
// from the top edge to the bottom edge; sweep line i starts with a dash
// or a gap at the top edge according to sel.At(i).
//
// dashLength must be positive and sel must be non-empty.
func DrawVertical(c Canvas, bounds rect.Rect, dashLength float64, sel Selectors) {
	checkPattern(dashLength, sel)

	i := 0
	for x := bounds.LLx; x < bounds.URx; x += dashLength {
		a := vec.Vec2{X: x, Y: bounds.URy}
		b := vec.Vec2{X: x, Y: bounds.LLy}
		strokeDashes(c, a, b, dashLength, sel.At(i))
		i++
	}
}

// checkPattern validates the shared rasterizer preconditions. Violations
// indicate a caller bug and are not recoverable.
func checkPattern(dashLength float64, sel Selectors) {
	if dashLength <= 0 {
		panic("hitomezashi: dash length must be positive")
	}
	if len(sel) == 0 {
		panic("hitomezashi: empty selector sequence")
	}
}
