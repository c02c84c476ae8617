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

import "math/rand/v2"

// Selectors is a cyclic sequence of booleans which controls the dash/gap
// phase of successive sweep lines: true means the line begins with a drawn
// dash at the sweep's starting edge, false means it begins with a gap of
// one dash length. Sweep line i uses element i mod len(sel), so the phase
// pattern repeats with period len(sel).
//
// A Selectors value is immutable once generated; slider changes replace it
// wholesale via GenerateSelectors.
type Selectors []bool

// selectorStream is the fixed second seed word for the selector generator.
// Using a constant here makes the sequence a pure function of the 8-bit
// seed value.
const selectorStream = 0x6869746f // "hito"

// GenerateSelectors derives a selector sequence of the given length from
// an 8-bit seed. A fresh generator is seeded on every call, so the same
// (seed, length) pair always yields the same sequence, independent of any
// earlier calls. length 0 returns an empty sequence, which is not valid
// as input to the rasterizers.
func GenerateSelectors(seed uint8, length int) Selectors {
	rng := rand.New(rand.NewPCG(uint64(seed), selectorStream))
	sel := make(Selectors, length)
	for i := range sel {
		sel[i] = rng.Uint64()&1 == 1
	}
	return sel
}

// At returns the selector for sweep line i, repeating cyclically.
// At panics if sel is empty.
func (sel Selectors) At(i int) bool {
	if len(sel) == 0 {
		panic("hitomezashi: empty selector sequence")
	}
	return sel[i%len(sel)]
}
