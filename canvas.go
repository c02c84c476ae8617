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
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas receives the line-draw commands produced by the pattern
// rasterizers. The host drawing surface implements this interface; the
// rasterizers only ever call it.
type Canvas interface {
	// Line draws a straight line from a to b.
	Line(a, b vec.Vec2)
}

// PathCanvas accumulates line commands into a path, one open subpath per
// dash. The resulting path can be handed to any path-based renderer.
type PathCanvas struct {
	Path path.Data
}

func (c *PathCanvas) Line(a, b vec.Vec2) {
	c.Path.MoveTo(a)
	c.Path.LineTo(b)
}

// ImageCanvas strokes line commands into an RGBA image with a fixed
// stroke width, using x/image/vector for antialiased coverage.
//
// CTM maps pattern coordinates to device pixels. Pattern space follows
// the y-up convention of the sweep code; hosts rendering into an image
// normally install a flip via NewImageCanvas. An ImageCanvas is not safe
// for concurrent use.
type ImageCanvas struct {
	Img *image.RGBA

	// CTM transforms from pattern space to device space.
	CTM matrix.Matrix

	// Width is the stroke width in device pixels. Must be positive.
	Width float64

	// Cap sets the style for the ends of each dash.
	Cap graphics.LineCapStyle

	// Color is the stroke color.
	Color color.Color

	ras *vector.Rasterizer
	src *image.Uniform
}

// NewImageCanvas returns an ImageCanvas drawing black strokes of the
// given width into img. The CTM is set up so that the pattern-space
// rectangle {0, 0, w, h} (y-up) maps onto the image (y-down).
func NewImageCanvas(img *image.RGBA, width float64) *ImageCanvas {
	h := float64(img.Bounds().Dy())
	return &ImageCanvas{
		Img:   img,
		CTM:   matrix.Matrix{1, 0, 0, -1, 0, h},
		Width: width,
		Cap:   graphics.LineCapButt,
		Color: color.Black,
	}
}

// Clear fills the whole image with the given background color.
func (c *ImageCanvas) Clear(bg color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// transform applies the CTM to a pattern-space point.
func (c *ImageCanvas) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: c.CTM[0]*p.X + c.CTM[2]*p.Y + c.CTM[4],
		Y: c.CTM[1]*p.X + c.CTM[3]*p.Y + c.CTM[5],
	}
}

// Line strokes the segment from a to b into the image.
func (c *ImageCanvas) Line(a, b vec.Vec2) {
	if c.Width <= 0 {
		panic("hitomezashi: stroke width must be positive")
	}

	p0 := c.transform(a)
	p1 := c.transform(b)

	d := p1.Sub(p0)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	hw := c.Width / 2

	bounds := c.Img.Bounds()
	if c.ras == nil {
		c.ras = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
		c.src = image.NewUniform(c.Color)
	}
	z := c.ras
	z.Reset(bounds.Dx(), bounds.Dy())

	switch c.Cap {
	case graphics.LineCapSquare:
		p0 = p0.Sub(t.Mul(hw))
		p1 = p1.Add(t.Mul(hw))
		fallthrough
	case graphics.LineCapButt:
		moveTo(z, p0.Add(n.Mul(hw)))
		lineTo(z, p1.Add(n.Mul(hw)))
		lineTo(z, p1.Sub(n.Mul(hw)))
		lineTo(z, p0.Sub(n.Mul(hw)))
	case graphics.LineCapRound:
		moveTo(z, p0.Add(n.Mul(hw)))
		lineTo(z, p1.Add(n.Mul(hw)))
		arcTo(z, p1, hw, n, -math.Pi) // end cap, +n around to -n through +t
		lineTo(z, p0.Sub(n.Mul(hw)))
		arcTo(z, p0, hw, n.Mul(-1), -math.Pi) // start cap
	}
	z.ClosePath()

	z.Draw(c.Img, bounds, c.src, image.Point{})
}

func moveTo(z *vector.Rasterizer, p vec.Vec2) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z *vector.Rasterizer, p vec.Vec2) {
	z.LineTo(float32(p.X), float32(p.Y))
}

// arcTo approximates a circular arc with line segments. center is the arc
// center, startDir the unit vector from center to the arc start (which
// must already be the current point), sweep the signed sweep angle.
func arcTo(z *vector.Rasterizer, center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	const segments = 8
	for i := 1; i <= segments; i++ {
		angle := sweep * float64(i) / segments
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		lineTo(z, center.Add(dir.Mul(radius)))
	}
}
