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

package lcd_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/metercap/metercap/lcd"
)

// Canonical cell size used by the rendering helpers.
const (
	cellW = 20
	cellH = 32
)

// strokeRects returns the stroke rectangles of a 7 segment cell of
// size w x h at (x0, y0) for the segments set in mask.
func strokeRects(mask, x0, y0, w, h int) []image.Rectangle {
	ht := int(0.14*float64(h) + 0.5)
	vt := int(0.20*float64(w) + 0.5)
	var rects []image.Rectangle
	add := func(bit int, r image.Rectangle) {
		if mask&bit != 0 {
			rects = append(rects, r)
		}
	}
	add(lcd.M_TM, image.Rect(x0, y0, x0+w, y0+ht))
	add(lcd.M_BM, image.Rect(x0, y0+h-ht, x0+w, y0+h))
	add(lcd.M_MM, image.Rect(x0, y0+(h-ht)/2, x0+w, y0+(h-ht)/2+ht))
	add(lcd.M_TL, image.Rect(x0, y0, x0+vt, y0+h/2))
	add(lcd.M_BL, image.Rect(x0, y0+h/2, x0+vt, y0+h))
	add(lcd.M_TR, image.Rect(x0+w-vt, y0, x0+w, y0+h/2))
	add(lcd.M_BR, image.Rect(x0+w-vt, y0+h/2, x0+w, y0+h))
	return rects
}

// renderCell draws the segments of mask into a fresh binary image the
// size of one cell.
func renderCell(mask int) *lcd.BinaryImage {
	bin := &lcd.BinaryImage{W: cellW, H: cellH, Pix: make([]bool, cellW*cellH)}
	for _, r := range strokeRects(mask, 0, 0, cellW, cellH) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				bin.Set(x, y, true)
			}
		}
	}
	return bin
}

// renderGlyph renders mask and segments it back into the single glyph
// it produces.
func renderGlyph(t *testing.T, mask int) lcd.Glyph {
	t.Helper()
	glyphs := lcd.Segment(renderCell(mask), lcd.DefaultConfig().Envelope)
	if len(glyphs) != 1 {
		t.Fatalf("Expected 1 glyph for mask %#x, got %d", mask, len(glyphs))
	}
	return glyphs[0]
}

// renderImage draws the given digits as black ink on a white frame,
// with a margin border and a fixed gap between cells.
func renderImage(digits []int, margin, gap int) *image.NRGBA {
	w := 2*margin + len(digits)*cellW + (len(digits)-1)*gap
	h := 2*margin + cellH
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	for i, d := range digits {
		x0 := margin + i*(cellW+gap)
		for _, r := range strokeRects(lcd.DigitMask(d), x0, margin, cellW, cellH) {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					img.Set(x, y, color.NRGBA{0, 0, 0, 255})
				}
			}
		}
	}
	return img
}

// noiseImage is a white frame with a scattering of specks too small to
// pass the digit envelope.
func noiseImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	for _, p := range []image.Point{{17, 12}, {60, 44}, {133, 9}, {201, 30}} {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				img.Set(p.X+dx, p.Y+dy, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}
