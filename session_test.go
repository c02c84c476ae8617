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

package hitomezashi_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/hitomezashi"
	"seehuhn.de/go/hitomezashi/pngtext"
)

func testRectangle() hitomezashi.Rectangle {
	return hitomezashi.NewRectangle(10, 42, 7, 8)
}

func TestSaveFlow(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)

	// idle frames do not suppress overlays and do not export
	assert.False(t, sess.BeginFrame())
	require.NoError(t, sess.EndFrame(func() *image.RGBA {
		t.Fatal("capture must not be called while idle")
		return nil
	}))

	path := filepath.Join(t.TempDir(), "out.png")
	sess.RequestSave(path)

	// the frame after the request is rendered without overlays and
	// captured at its end
	assert.True(t, sess.BeginFrame())
	captures := 0
	require.NoError(t, sess.EndFrame(func() *image.RGBA {
		captures++
		return sess.RenderImage(40, 40, 1)
	}))
	assert.Equal(t, 1, captures)

	recs, err := pngtext.ReadTextRecords(path)
	require.NoError(t, err)
	assert.Contains(t, recs, pngtext.KeySettings)

	// the flow is back to idle
	assert.False(t, sess.BeginFrame())
	require.NoError(t, sess.EndFrame(func() *image.RGBA {
		t.Fatal("capture must not be called after the export completed")
		return nil
	}))
}

func TestExport(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)
	img := sess.RenderImage(50, 50, 1)

	path := filepath.Join(t.TempDir(), "export.png")
	require.NoError(t, sess.Export(img, path))

	recs, err := pngtext.ReadTextRecords(path)
	require.NoError(t, err)
	assert.Equal(t, pngtext.Description, recs[pngtext.KeyDescription])

	settings, err := hitomezashi.DecodeSettings(recs[pngtext.KeySettings])
	require.NoError(t, err)
	assert.Equal(t, sess.Settings, settings)
}

func TestAttachMetadata(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)
	img := sess.RenderImage(30, 30, 1)

	// simulate a host-side frame capture without metadata
	path := filepath.Join(t.TempDir(), "capture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	require.NoError(t, sess.AttachMetadata(path))
	recs, err := pngtext.ReadTextRecords(path)
	require.NoError(t, err)

	settings, err := hitomezashi.DecodeSettings(recs[pngtext.KeySettings])
	require.NoError(t, err)
	assert.Equal(t, sess.Settings, settings)
}

func TestAttachMetadataMissing(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)
	err := sess.AttachMetadata(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, pngtext.ErrMissingFile)
}

func TestRenderImage(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)
	img := sess.RenderImage(60, 60, 2)

	require.Equal(t, image.Rect(0, 0, 60, 60), img.Bounds())

	white := 0
	dark := 0
	for y := range 60 {
		for x := range 60 {
			c := img.RGBAAt(x, y)
			if c == (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				white++
			} else if c.R < 0x80 {
				dark++
			}
		}
	}
	assert.NotZero(t, white, "background must remain white")
	assert.NotZero(t, dark, "strokes must darken pixels")
}

func TestSetSeeds(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)
	sess.SetHorzSeed(99)
	r := sess.Settings.(hitomezashi.Rectangle)
	assert.Equal(t, uint8(99), r.HorzSeed)
	assert.EqualValues(t, hitomezashi.GenerateSelectors(99, 8), r.HorzSelectors)
	assert.Equal(t, uint8(7), r.VertSeed, "vertical axis must be untouched")

	sess = hitomezashi.NewSession(hitomezashi.NewTriangle(10, 1, 2, 3, 6), nil)
	sess.SetVertSeed(50)
	tri := sess.Settings.(hitomezashi.Triangle)
	assert.Equal(t, uint8(1), tri.SeedA)
	assert.Equal(t, uint8(50), tri.SeedB)
	assert.Equal(t, uint8(50), tri.SeedC)
	assert.EqualValues(t, hitomezashi.GenerateSelectors(50, 6), tri.SelectorsB)
}

func TestSetSpacing(t *testing.T) {
	sess := hitomezashi.NewSession(testRectangle(), nil)
	sess.SetSpacing(25)
	assert.Equal(t, 25.0, sess.Settings.(hitomezashi.Rectangle).Spacing)

	tri := hitomezashi.NewTriangle(10, 1, 2, 3, 6)
	sess = hitomezashi.NewSession(tri, nil)
	sess.SetSpacing(4)
	assert.Equal(t, 4.0, sess.Settings.(hitomezashi.Triangle).Spacing)

	assert.Panics(t, func() { sess.SetSpacing(0) })
	assert.Panics(t, func() { sess.SetSpacing(-1) })
}
