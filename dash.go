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

	"seehuhn.de/go/geom/vec"
)

// DashSegments splits the line from start to end into alternating drawn
// and skipped sub-segments of equal length. The first sub-segment is drawn
// if startDrawn is true, skipped otherwise. The final sub-segment is
// clipped so that it never extends past end. For start == end no segments
// are emitted.
//
// dashLength must be positive.
func DashSegments(start, end vec.Vec2, dashLength float64, startDrawn bool, emit func(a, b vec.Vec2, drawn bool)) {
	if dashLength <= 0 {
		panic("hitomezashi: dash length must be positive")
	}

	d := end.Sub(start)
	total := d.Length()
	if total < zeroLengthThreshold {
		return
	}
	dir := d.Mul(1 / total)

	drawn := startDrawn
	for pos := 0.0; pos < total; pos += dashLength {
		a := start.Add(dir.Mul(pos))
		b := start.Add(dir.Mul(math.Min(pos+dashLength, total)))
		emit(a, b, drawn)
		drawn = !drawn
	}
}

// strokeDashes feeds only the drawn sub-segments of a dashed line to the
// canvas.
func strokeDashes(c Canvas, a, b vec.Vec2, dashLength float64, startDrawn bool) {
	DashSegments(a, b, dashLength, startDrawn, func(p, q vec.Vec2, drawn bool) {
		if drawn {
			c.Line(p, q)
		}
	})
}

// zeroLengthThreshold is the minimum length for a line segment.
// Segments shorter than this are skipped.
const zeroLengthThreshold = 1e-10
