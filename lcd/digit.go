// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lcd

import (
	"math/bits"
)

// Segments.
const (
	S_TL, M_TL = iota, 1 << iota // Top left
	S_TM, M_TM = iota, 1 << iota // Top middle
	S_TR, M_TR = iota, 1 << iota // Top right
	S_BR, M_BR = iota, 1 << iota // Bottom right
	S_BM, M_BM = iota, 1 << iota // Bottom middle
	S_BL, M_BL = iota, 1 << iota // Bottom left
	S_MM, M_MM = iota, 1 << iota // Middle
	SEGMENTS   = iota
)

// Unresolved marks a glyph whose segment pattern matches no digit.
const Unresolved = -1

// There are 128 possible values in a 7 segment digit; this table maps
// the ten canonical digit encodings to their values.

const ____ = 0

var digitTable = map[int]int{
	M_TL | M_TM | M_TR | M_BR | M_BM | M_BL | ____: 0,
	____ | ____ | M_TR | M_BR | ____ | ____ | ____: 1,
	____ | M_TM | M_TR | ____ | M_BM | M_BL | M_MM: 2,
	____ | M_TM | M_TR | M_BR | M_BM | ____ | M_MM: 3,
	M_TL | ____ | M_TR | M_BR | ____ | ____ | M_MM: 4,
	M_TL | M_TM | ____ | M_BR | M_BM | ____ | M_MM: 5,
	M_TL | M_TM | ____ | M_BR | M_BM | M_BL | M_MM: 6,
	____ | M_TM | M_TR | M_BR | ____ | ____ | ____: 7,
	M_TL | M_TM | M_TR | M_BR | M_BM | M_BL | M_MM: 8,
	M_TL | M_TM | M_TR | M_BR | M_BM | ____ | M_MM: 9,
}

// DigitMask returns the canonical segment mask for a digit 0-9.
func DigitMask(d int) int {
	for mask, v := range digitTable {
		if v == d {
			return mask
		}
	}
	return 0
}

// Each segment is sampled within a fixed sub-window of the glyph's
// bounding box, expressed as fractions of the box. The windows sit
// clear of the neighbouring strokes so that an 'off' segment is not
// polluted by the 'on' segments around it.
type sampleWindow struct {
	x0, y0, x1, y1 float64
}

var sampleWindows = [SEGMENTS]sampleWindow{
	S_TL: {0.00, 0.20, 0.22, 0.45},
	S_TM: {0.30, 0.00, 0.70, 0.18},
	S_TR: {0.78, 0.20, 1.00, 0.45},
	S_BR: {0.78, 0.55, 1.00, 0.80},
	S_BM: {0.30, 0.82, 0.70, 1.00},
	S_BL: {0.00, 0.55, 0.22, 0.80},
	S_MM: {0.30, 0.41, 0.70, 0.59},
}

// ScanMask samples the seven segment windows of the glyph and returns
// the mask of segments whose foreground density exceeds the threshold.
func ScanMask(g *Glyph, density float64) int {
	var mask int
	for i := range sampleWindows {
		if sampleDensity(g, sampleWindows[i]) > density {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Foreground pixel fraction within one sample window of the glyph box.
func sampleDensity(g *Glyph, win sampleWindow) float64 {
	w, h := g.BBox.Dx(), g.BBox.Dy()
	x0 := int(win.x0*float64(w) + 0.5)
	y0 := int(win.y0*float64(h) + 0.5)
	x1 := int(win.x1*float64(w) + 0.5)
	y1 := int(win.y1*float64(h) + 0.5)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var count int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x < w && y < h && g.Mask[y*w+x] {
				count++
			}
		}
	}
	return float64(count) / float64((x1-x0)*(y1-y0))
}

// Classify maps a glyph to a digit value, or Unresolved when its
// segment pattern cannot be attributed to a single digit. The glyph's
// observed mask is looked up in the digit table directly; failing that,
// the nearest canonical pattern within the tolerance (in differing
// segments) is used, provided it is unique. Classification is pure -
// no state flows between glyphs.
//
// A glyph narrower than oneAspect is the digit 1: its tight bounding
// box contains only the two right hand strokes, so the sample windows
// carry no information about the missing segments.
func Classify(g *Glyph, density, oneAspect float64, tolerance int) int {
	if g.Aspect() < oneAspect {
		return 1
	}
	mask := ScanMask(g, density)
	if d, ok := digitTable[mask]; ok {
		return d
	}
	best := Unresolved
	bestDist := tolerance + 1
	ambiguous := false
	for m, d := range digitTable {
		dist := bits.OnesCount(uint(m ^ mask))
		switch {
		case dist < bestDist:
			best, bestDist, ambiguous = d, dist, false
		case dist == bestDist:
			ambiguous = true
		}
	}
	if ambiguous || bestDist > tolerance {
		return Unresolved
	}
	return best
}
