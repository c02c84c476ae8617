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
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hitomezashi/pngtext"
)

// saveState tracks the export flow through a frame of the host redraw
// loop: a save request must suppress interactive overlays for exactly
// one render pass so the exported pixels are clean.
type saveState int

const (
	saveIdle saveState = iota
	saveRequested
	saveRendering
)

// Session owns the live pattern parameters and the export flow. All
// methods must be called from the single render thread; the host loop
// drives the save flow by calling BeginFrame and EndFrame once per
// frame.
type Session struct {
	// Settings are the current generating parameters, mutated in place
	// by user interaction.
	Settings Settings

	state    saveState
	savePath string
	log      *slog.Logger
}

// NewSession returns a session for interactive editing of the given
// settings. If log is nil, slog.Default is used.
func NewSession(s Settings, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{Settings: s, log: log}
}

// SetSpacing installs a new line spacing. The value must be positive.
func (s *Session) SetSpacing(v float64) {
	if v <= 0 {
		panic("hitomezashi: spacing must be positive")
	}
	switch st := s.Settings.(type) {
	case Rectangle:
		st.Spacing = v
		s.Settings = st
	case Triangle:
		st.Spacing = v
		s.Settings = st
	default:
		panic(fmt.Sprintf("hitomezashi: unknown settings type %T", s.Settings))
	}
}

// SetHorzSeed installs a new horizontal seed, regenerating the
// horizontal selector sequence. For triangle settings the 0° family is
// the horizontal one.
func (s *Session) SetHorzSeed(seed uint8) {
	switch st := s.Settings.(type) {
	case Rectangle:
		st.SetHorzSeed(seed)
		s.Settings = st
	case Triangle:
		st.SeedA = seed
		st.SelectorsA = GenerateSelectors(seed, len(st.SelectorsA))
		s.Settings = st
	default:
		panic(fmt.Sprintf("hitomezashi: unknown settings type %T", s.Settings))
	}
}

// SetVertSeed installs a new vertical seed, regenerating the vertical
// selector sequence. For triangle settings the two oblique families
// share the seed, keeping one slider per axis.
func (s *Session) SetVertSeed(seed uint8) {
	switch st := s.Settings.(type) {
	case Rectangle:
		st.SetVertSeed(seed)
		s.Settings = st
	case Triangle:
		st.SeedB = seed
		st.SeedC = seed
		st.SelectorsB = GenerateSelectors(seed, len(st.SelectorsB))
		st.SelectorsC = GenerateSelectors(seed, len(st.SelectorsC))
		s.Settings = st
	default:
		panic(fmt.Sprintf("hitomezashi: unknown settings type %T", s.Settings))
	}
}

// RequestSave arms the export flow. The pattern is written to path after
// the next render pass, which is drawn without interactive overlays.
// A request made while an export is already in flight replaces the
// pending target path.
func (s *Session) RequestSave(path string) {
	s.savePath = path
	if s.state == saveIdle {
		s.state = saveRequested
	}
}

// BeginFrame advances the save flow at the start of a render pass and
// reports whether interactive overlays must be suppressed for this
// frame.
func (s *Session) BeginFrame() (hideOverlays bool) {
	if s.state == saveRequested {
		s.state = saveRendering
	}
	return s.state == saveRendering
}

// EndFrame completes a render pass. If an export is pending, capture is
// invoked to obtain the clean frame just rendered and the result is
// written to the requested path with metadata attached; the session then
// returns to idle. In all other states EndFrame does nothing.
func (s *Session) EndFrame(capture func() *image.RGBA) error {
	if s.state != saveRendering {
		return nil
	}
	s.state = saveIdle
	return s.Export(capture(), s.savePath)
}

// Export writes the image as a PNG file carrying the session's settings
// as metadata. After a successful write the metadata is read back for
// verification; a verification failure is logged but does not fail the
// export, since the image itself is already saved.
func (s *Session) Export(img *image.RGBA, path string) error {
	settings, err := EncodeSettings(s.Settings)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if err := pngtext.Write(img.Pix, b.Dx(), b.Dy(), settings, path); err != nil {
		return err
	}
	s.verify(path, settings)
	return nil
}

// AttachMetadata adds the session's settings to a PNG file previously
// captured by the host (for example via an asynchronous frame capture).
// The pngtext guards against missing or still-empty files apply.
func (s *Session) AttachMetadata(path string) error {
	settings, err := EncodeSettings(s.Settings)
	if err != nil {
		return err
	}
	if err := pngtext.Attach(path, settings); err != nil {
		return err
	}
	s.verify(path, settings)
	return nil
}

// verify re-reads the exported file's metadata. Best-effort only: the
// image is already on disk, so failures are reported but not returned.
func (s *Session) verify(path, settings string) {
	recs, err := pngtext.ReadTextRecords(path)
	if err != nil {
		s.log.Warn("saved without metadata verification", "path", path, "err", err)
		return
	}
	if recs[pngtext.KeySettings] != settings {
		s.log.Warn("saved without metadata", "path", path)
	}
}

// RenderImage rasterizes the session's pattern into a new image of the
// given size, white background, using antialiased strokes of the given
// width. Pattern space is mapped so that the top sweep line is the top
// pixel row.
func (s *Session) RenderImage(width, height int, strokeWidth float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := NewImageCanvas(img, strokeWidth)
	c.Clear(color.White)
	bounds := rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
	Draw(c, bounds, s.Settings)
	return img
}
