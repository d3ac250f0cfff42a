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
	"image"

	"github.com/disintegration/imaging"
)

// Gray is a single channel luminance plane. The dimensions are carried
// explicitly so that each stage can validate its input rather than
// inferring the shape from the pixel buffer.
type Gray struct {
	W, H int
	Pix  []uint8 // Row major, length W*H
}

// BinaryImage is a foreground/background plane produced by thresholding
// a luminance plane.
type BinaryImage struct {
	W, H int
	Pix  []bool // Row major, length W*H
}

// NewGray creates an empty luminance plane.
func NewGray(w, h int) *Gray {
	return &Gray{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At returns the luminance at (x, y).
func (g *Gray) At(x, y int) uint8 {
	return g.Pix[y*g.W+x]
}

// Set sets the luminance at (x, y).
func (g *Gray) Set(x, y int, v uint8) {
	g.Pix[y*g.W+x] = v
}

// ToGray converts an image to a luminance plane.
func ToGray(img image.Image) *Gray {
	gi := imaging.Grayscale(img)
	w := gi.Bounds().Dx()
	h := gi.Bounds().Dy()
	g := NewGray(w, h)
	for y := 0; y < h; y++ {
		row := gi.Pix[y*gi.Stride : y*gi.Stride+w*4]
		for x := 0; x < w; x++ {
			// Channels are equal after grayscale conversion.
			g.Pix[y*w+x] = row[x*4]
		}
	}
	return g
}

// Stretch remaps the luminance range linearly onto the full 0-255 scale.
// A plane with no contrast at all is left as-is.
func (g *Gray) Stretch() {
	min, max := 255, 0
	for _, v := range g.Pix {
		if int(v) < min {
			min = int(v)
		}
		if int(v) > max {
			max = int(v)
		}
	}
	if max <= min {
		return
	}
	for i, v := range g.Pix {
		g.Pix[i] = uint8((int(v) - min) * 255 / (max - min))
	}
}

// Binarize thresholds each pixel against the mean of the surrounding
// window (window x window pixels, clamped at the edges), computed via a
// summed-area table. A pixel is foreground when its luminance sits more
// than margin below the local mean; inverse flips the polarity for
// displays with light segments on a dark background. A single global
// cutoff fails under glare and uneven backlighting, while the local
// mean tracks gradual illumination change across the panel.
func (g *Gray) Binarize(window, margin int, inverse bool) *BinaryImage {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w, h := g.W, g.H
	bin := &BinaryImage{W: w, H: h, Pix: make([]bool, w*h)}
	if w == 0 || h == 0 {
		return bin
	}
	sums := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += int(g.Pix[y*w+x])
			if y == 0 {
				sums[x] = rowSum
			} else {
				sums[y*w+x] = sums[(y-1)*w+x] + rowSum
			}
		}
	}
	half := window / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half-1, y-half-1
			x1, y1 := x+half, y+half
			if x1 >= w {
				x1 = w - 1
			}
			if y1 >= h {
				y1 = h - 1
			}
			sum := sums[y1*w+x1]
			if x0 >= 0 {
				sum -= sums[y1*w+x0]
			}
			if y0 >= 0 {
				sum -= sums[y0*w+x1]
			}
			if x0 >= 0 && y0 >= 0 {
				sum += sums[y0*w+x0]
			}
			area := (x1 - maxInt(x0, -1)) * (y1 - maxInt(y0, -1))
			mean := sum / area
			diff := mean - int(g.Pix[y*w+x])
			if inverse {
				diff = -diff
			}
			if diff > margin {
				bin.Pix[y*w+x] = true
			}
		}
	}
	return bin
}

// At returns true if the pixel at (x, y) is foreground.
func (b *BinaryImage) At(x, y int) bool {
	return b.Pix[y*b.W+x]
}

// Set marks the pixel at (x, y) as foreground or background.
func (b *BinaryImage) Set(x, y int, v bool) {
	b.Pix[y*b.W+x] = v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
