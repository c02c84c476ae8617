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

import "image"

// RasterizeRectangle draws the axis-aligned pattern directly into the
// pixel buffer of img, without antialiasing. Sweeps and dash stepping use
// integer pixel coordinates; each drawn dash sets the RGB channels of
// every covered pixel to black while preserving the existing alpha. Dash
// boundaries are clipped to the image extent.
//
// The first horizontal sweep line is the top pixel row, the first
// vertical line the leftmost pixel column, matching the geometry of
// DrawHorizontal and DrawVertical.
//
// spacing must be positive; horz and vert must be non-empty.
func RasterizeRectangle(img *image.RGBA, spacing int, horz, vert Selectors) {
	if spacing <= 0 {
		panic("hitomezashi: spacing must be positive")
	}
	if len(horz) == 0 || len(vert) == 0 {
		panic("hitomezashi: empty selector sequence")
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// horizontal sweep lines, top to bottom
	i := 0
	for y := 0; y < h; y += spacing {
		x := 0
		if !horz.At(i) {
			x = spacing
		}
		i++
		for ; x < w; x += 2 * spacing {
			blackenSpan(img, y, x, min(x+spacing, w))
		}
	}

	// vertical sweep lines, left to right
	i = 0
	for x := 0; x < w; x += spacing {
		y := 0
		if !vert.At(i) {
			y = spacing
		}
		i++
		for ; y < h; y += 2 * spacing {
			yEnd := min(y+spacing, h)
			for py := y; py < yEnd; py++ {
				blackenSpan(img, py, x, x+1)
			}
		}
	}
}

// blackenSpan sets the RGB channels of pixels [x0, x1) in row y to black,
// leaving alpha untouched. Pixels are addressed row-major, 4 bytes each.
func blackenSpan(img *image.RGBA, y, x0, x1 int) {
	row := img.Pix[y*img.Stride:]
	for x := x0; x < x1; x++ {
		row[4*x+0] = 0
		row[4*x+1] = 0
		row[4*x+2] = 0
	}
}
