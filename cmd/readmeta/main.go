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

// Readmeta prints the textual metadata records of a PNG file.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/hitomezashi/pngtext"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <png_file>\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]

	recs, err := pngtext.ReadTextRecords(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("PNG File: %s\n", path)
	if len(recs) == 0 {
		fmt.Println("  no text chunks found")
		return
	}
	for _, keyword := range slices.Sorted(maps.Keys(recs)) {
		fmt.Printf("  %s: %s\n", keyword, recs[keyword])
	}
}
