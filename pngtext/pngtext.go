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

// Package pngtext reads and writes tEXt metadata records in PNG files.
//
// A PNG file is an 8-byte signature followed by chunks of the form
//
//	[4-byte big-endian length][4-byte type][length bytes data][4-byte CRC]
//
// A tEXt chunk stores "keyword\0text". The standard library PNG codec
// exposes no chunk-level access, so this package walks and splices the
// chunk stream directly.
package pngtext

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

// Metadata keywords and fixed record values written by Write and Attach.
const (
	KeyDescription = "Description"
	KeySoftware    = "Software"
	KeySettings    = "Settings"

	Description = "Hitomezashi Pattern"
	Software    = "Hitomezashi Pattern Generator"
)

var (
	// ErrMissingFile indicates an attempt to attach metadata to a file
	// which does not exist.
	ErrMissingFile = errors.New("file does not exist")

	// ErrEmptyFile indicates an attempt to attach metadata to a
	// zero-length file, typically one still being flushed by the OS.
	ErrEmptyFile = errors.New("file is empty")

	// ErrNotPNG indicates a file without a valid PNG signature.
	ErrNotPNG = errors.New("not a PNG file")
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Record is a single textual metadata record.
type Record struct {
	Keyword string
	Text    string
}

// records returns the three standard records carrying the given settings
// JSON.
func records(settings string) []Record {
	return []Record{
		{KeyDescription, Description},
		{KeySoftware, Software},
		{KeySettings, settings},
	}
}

// Write encodes the RGBA pixel buffer as a PNG file at path, with the
// three standard text records embedded. The buffer is row-major with 4
// bytes per pixel and must be exactly width*height*4 bytes long.
func Write(pix []byte, width, height int, settings string, path string) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("pngtext: pixel buffer is %d bytes, want %d", len(pix), width*height*4)
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("pngtext: encoding %s: %w", path, err)
	}

	out, err := insertTextChunks(buf.Bytes(), records(settings))
	if err != nil {
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}
	return os.WriteFile(path, out, 0o666)
}

// Attach adds the three standard text records to an existing PNG file,
// atomically replacing it: the augmented copy is written to a temporary
// file in the same directory and then renamed over the original. The
// pixel data is carried over byte for byte.
//
// Attach fails with ErrMissingFile if the file does not exist and with
// ErrEmptyFile if it has zero length. These guard against a capture
// still being flushed by the OS.
func Attach(path, settings string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("pngtext: %s: %w", path, ErrMissingFile)
	case err != nil:
		return fmt.Errorf("pngtext: %s: %w", path, err)
	case info.Size() == 0:
		return fmt.Errorf("pngtext: %s: %w", path, ErrEmptyFile)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}

	// reject malformed or truncated images before touching the file
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("pngtext: decoding %s: %w", path, err)
	}

	out, err := insertTextChunks(raw, records(settings))
	if err != nil {
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pngtext-*")
	if err != nil {
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("pngtext: %s: %w", path, err)
	}
	return nil
}

// ReadTextRecords returns all tEXt records found in the PNG file, keyed
// by keyword. Compressed (zTXt) and international (iTXt) records are
// skipped. Malformed or truncated trailing chunks end the scan without
// error; a file with no text records yields an empty map.
func ReadTextRecords(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < len(pngSignature) || !bytes.Equal(raw[:len(pngSignature)], pngSignature) {
		return nil, fmt.Errorf("pngtext: %s: %w", path, ErrNotPNG)
	}

	found := make(map[string]string)
	pos := len(pngSignature)
	for pos+8 <= len(raw) {
		length := binary.BigEndian.Uint32(raw[pos:])
		if length > 1<<31-1 {
			break // corrupt length field
		}
		dataEnd := pos + 8 + int(length)
		if dataEnd+4 > len(raw) {
			break // truncated trailing chunk
		}
		if string(raw[pos+4:pos+8]) == "tEXt" {
			data := raw[pos+8 : dataEnd]
			if i := bytes.IndexByte(data, 0); i >= 0 {
				found[string(data[:i])] = string(data[i+1:])
			}
		}
		pos = dataEnd + 4
	}
	return found, nil
}

// insertTextChunks splices tEXt chunks for the given records into a PNG
// byte stream, immediately before the IEND chunk.
func insertTextChunks(raw []byte, recs []Record) ([]byte, error) {
	if len(raw) < len(pngSignature) || !bytes.Equal(raw[:len(pngSignature)], pngSignature) {
		return nil, ErrNotPNG
	}

	// locate the IEND chunk
	iend := -1
	pos := len(pngSignature)
	for pos+8 <= len(raw) {
		length := binary.BigEndian.Uint32(raw[pos:])
		if length > 1<<31-1 {
			break
		}
		dataEnd := pos + 8 + int(length)
		if dataEnd+4 > len(raw) {
			break
		}
		if string(raw[pos+4:pos+8]) == "IEND" {
			iend = pos
			break
		}
		pos = dataEnd + 4
	}
	if iend < 0 {
		return nil, fmt.Errorf("%w: missing IEND chunk", ErrNotPNG)
	}

	var out bytes.Buffer
	out.Grow(len(raw) + 256)
	out.Write(raw[:iend])
	for _, rec := range recs {
		appendChunk(&out, "tEXt", append(append([]byte(rec.Keyword), 0), rec.Text...))
	}
	out.Write(raw[iend:])
	return out.Bytes(), nil
}

// appendChunk writes one PNG chunk: length, type, data, CRC over type
// and data.
func appendChunk(out *bytes.Buffer, typ string, data []byte) {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], typ)
	out.Write(header[:])
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	out.Write(sum[:])
}
