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

package hitomezashi

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DrawAngled draws one family of parallel dashed lines with direction
// angle (in radians, measured counter-clockwise from the x axis).
//
// The family is anchored to the triangular lattice with edge length
// dashLength whose origin is the coordinate origin, not to a corner of
// the bounds rectangle: line j of the family lies at perpendicular
// distance j·h from the origin, with h = dashLength·√3/2 the lattice row
// height, and carries an along-line dash phase of (j·dashLength/2) mod
// dashLength. With this anchoring the dash breakpoints of the 0°, 60°
// and 120° families all coincide at the shared lattice vertices, so
// dashes meeting at a vertex start or stop exactly there.
//
// Line j inside the bounds uses selector element (j - jMin) where jMin is
// the first line index intersecting the bounds: true means the lattice
// cells with even index along the line are drawn, false the odd ones.
//
// dashLength must be positive and sel must be non-empty.
func DrawAngled(c Canvas, bounds rect.Rect, dashLength float64, angle float64, sel Selectors) {
	checkPattern(dashLength, sel)

	u := vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)} // line direction
	n := vec.Vec2{X: -u.Y, Y: u.X}                        // unit normal

	s := dashLength
	h := s * math.Sqrt(3) / 2 // lattice row height

	// project the bounds corners onto the normal to find which lines of
	// the family intersect the rectangle
	corners := [4]vec.Vec2{
		{X: bounds.LLx, Y: bounds.LLy},
		{X: bounds.URx, Y: bounds.LLy},
		{X: bounds.LLx, Y: bounds.URy},
		{X: bounds.URx, Y: bounds.URy},
	}
	minProj := math.Inf(1)
	maxProj := math.Inf(-1)
	for _, p := range corners {
		proj := p.X*n.X + p.Y*n.Y
		minProj = min(minProj, proj)
		maxProj = max(maxProj, proj)
	}
	jMin := int(math.Ceil(minProj/h - latticeEpsilon))
	jMax := int(math.Floor(maxProj/h + latticeEpsilon))

	for j := jMin; j <= jMax; j++ {
		origin := n.Mul(float64(j) * h)
		t0, t1, ok := clipLineToRect(origin, u, bounds)
		if !ok {
			continue
		}

		// odd rows are shifted by half an edge length along the line
		phase := s / 2 * float64(((j%2)+2)%2)

		// lattice cell m along the line covers [phase+m·s, phase+(m+1)·s)
		evenDrawn := sel.At(j - jMin)
		drawn := func(m int) bool {
			return (((m%2)+2)%2 == 0) == evenDrawn
		}

		// first breakpoint at or after the clip entry
		m := int(math.Ceil((t0 - phase) / s))
		tFirst := phase + float64(m)*s

		// partial head cell between the clip entry and the first breakpoint
		if tFirst > t0+zeroLengthThreshold && drawn(m-1) {
			head := math.Min(tFirst, t1)
			c.Line(origin.Add(u.Mul(t0)), origin.Add(u.Mul(head)))
		}

		// the rest of the line is regular dash stepping from a breakpoint
		if tFirst < t1 {
			strokeDashes(c, origin.Add(u.Mul(tFirst)), origin.Add(u.Mul(t1)), s, drawn(m))
		}
	}
}

// DrawTriangular draws the full triangular-lattice stitch pattern: three
// dashed line families at 0°, 60° and 120°, phase-aligned so that dashes
// meeting at a lattice vertex all start or stop there. Each family has
// its own selector sequence.
func DrawTriangular(c Canvas, bounds rect.Rect, dashLength float64, a, b, cc Selectors) {
	DrawAngled(c, bounds, dashLength, 0, a)
	DrawAngled(c, bounds, dashLength, math.Pi/3, b)
	DrawAngled(c, bounds, dashLength, 2*math.Pi/3, cc)
}

// clipLineToRect clips the parametric line origin + t·dir against the
// rectangle and returns the parameter interval inside it.
func clipLineToRect(origin, dir vec.Vec2, r rect.Rect) (t0, t1 float64, ok bool) {
	t0, t1 = math.Inf(-1), math.Inf(1)

	clipAxis := func(o, d, lo, hi float64) bool {
		if math.Abs(d) < zeroLengthThreshold {
			return o >= lo && o <= hi
		}
		ta := (lo - o) / d
		tb := (hi - o) / d
		if ta > tb {
			ta, tb = tb, ta
		}
		t0 = math.Max(t0, ta)
		t1 = math.Min(t1, tb)
		return true
	}

	if !clipAxis(origin.X, dir.X, r.LLx, r.URx) {
		return 0, 0, false
	}
	if !clipAxis(origin.Y, dir.Y, r.LLy, r.URy) {
		return 0, 0, false
	}
	if t0 >= t1 {
		return 0, 0, false
	}
	return t0, t1, true
}

// latticeEpsilon absorbs floating-point error when deciding whether a
// lattice line touching the bounds edge is included.
const latticeEpsilon = 1e-9
