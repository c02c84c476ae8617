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
	"encoding/json"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Settings describes the generating parameters of a pattern. It is a
// closed sum over the two pattern shapes, [Rectangle] and [Triangle];
// consumers dispatch with a type switch.
type Settings interface {
	isSettings()
}

// Rectangle holds the parameters of the axis-aligned pattern variant.
// The JSON encoding of this struct is the external Settings contract of
// exported files.
type Rectangle struct {
	Spacing       float64   `json:"spacing"`
	HorzSeed      uint8     `json:"horz_seed"`
	VertSeed      uint8     `json:"vert_seed"`
	HorzSelectors Selectors `json:"horz_selectors"`
	VertSelectors Selectors `json:"vert_selectors"`
}

func (Rectangle) isSettings() {}

// NewRectangle derives both selector sequences of the given length from
// their seeds.
func NewRectangle(spacing float64, horzSeed, vertSeed uint8, selectorLen int) Rectangle {
	return Rectangle{
		Spacing:       spacing,
		HorzSeed:      horzSeed,
		VertSeed:      vertSeed,
		HorzSelectors: GenerateSelectors(horzSeed, selectorLen),
		VertSelectors: GenerateSelectors(vertSeed, selectorLen),
	}
}

// SetHorzSeed installs a new horizontal seed and regenerates the
// horizontal selector sequence from a fresh generator, keeping its
// length.
func (r *Rectangle) SetHorzSeed(seed uint8) {
	r.HorzSeed = seed
	r.HorzSelectors = GenerateSelectors(seed, len(r.HorzSelectors))
}

// SetVertSeed installs a new vertical seed and regenerates the vertical
// selector sequence from a fresh generator, keeping its length.
func (r *Rectangle) SetVertSeed(seed uint8) {
	r.VertSeed = seed
	r.VertSelectors = GenerateSelectors(seed, len(r.VertSelectors))
}

// Triangle holds the parameters of the triangular-lattice pattern
// variant, with one seed and selector sequence per line family
// (0°, 60° and 120°).
type Triangle struct {
	Spacing    float64   `json:"spacing"`
	SeedA      uint8     `json:"seed_a"`
	SeedB      uint8     `json:"seed_b"`
	SeedC      uint8     `json:"seed_c"`
	SelectorsA Selectors `json:"selectors_a"`
	SelectorsB Selectors `json:"selectors_b"`
	SelectorsC Selectors `json:"selectors_c"`
}

func (Triangle) isSettings() {}

// NewTriangle derives the three selector sequences of the given length
// from their seeds.
func NewTriangle(spacing float64, seedA, seedB, seedC uint8, selectorLen int) Triangle {
	return Triangle{
		Spacing:    spacing,
		SeedA:      seedA,
		SeedB:      seedB,
		SeedC:      seedC,
		SelectorsA: GenerateSelectors(seedA, selectorLen),
		SelectorsB: GenerateSelectors(seedB, selectorLen),
		SelectorsC: GenerateSelectors(seedC, selectorLen),
	}
}

// Draw renders the pattern described by s over the bounds rectangle onto
// the canvas.
func Draw(c Canvas, bounds rect.Rect, s Settings) {
	switch s := s.(type) {
	case Rectangle:
		DrawHorizontal(c, bounds, s.Spacing, s.HorzSelectors)
		DrawVertical(c, bounds, s.Spacing, s.VertSelectors)
	case Triangle:
		DrawTriangular(c, bounds, s.Spacing, s.SelectorsA, s.SelectorsB, s.SelectorsC)
	default:
		panic(fmt.Sprintf("hitomezashi: unknown settings type %T", s))
	}
}

// EncodeSettings returns the JSON form of the settings, as embedded in
// the Settings text record of exported files. Rectangle settings carry
// no shape tag, keeping the encoding compatible with readers that only
// know the rectangle contract; Triangle settings are tagged with
// "shape": "triangle".
func EncodeSettings(s Settings) (string, error) {
	var (
		buf []byte
		err error
	)
	switch s := s.(type) {
	case Rectangle:
		buf, err = json.Marshal(s)
	case Triangle:
		buf, err = json.Marshal(struct {
			Shape string `json:"shape"`
			Triangle
		}{Shape: "triangle", Triangle: s})
	default:
		return "", fmt.Errorf("hitomezashi: unknown settings type %T", s)
	}
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// DecodeSettings parses the JSON form written by EncodeSettings. A
// missing shape tag selects the rectangle variant.
func DecodeSettings(text string) (Settings, error) {
	var probe struct {
		Shape string `json:"shape"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, fmt.Errorf("hitomezashi: invalid settings: %w", err)
	}
	switch probe.Shape {
	case "":
		var r Rectangle
		if err := json.Unmarshal([]byte(text), &r); err != nil {
			return nil, fmt.Errorf("hitomezashi: invalid rectangle settings: %w", err)
		}
		return r, nil
	case "triangle":
		var t Triangle
		if err := json.Unmarshal([]byte(text), &t); err != nil {
			return nil, fmt.Errorf("hitomezashi: invalid triangle settings: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("hitomezashi: unknown settings shape %q", probe.Shape)
	}
}
