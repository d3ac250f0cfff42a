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
	"sort"
)

// Glyph is one candidate digit: a connected group of foreground pixels
// with its bounding box and pixel mask.
type Glyph struct {
	BBox image.Rectangle
	Mask []bool // Row major within BBox
	Area int    // Count of foreground pixels
}

// Envelope bounds the size and shape a component may have to be
// considered a plausible digit. Components outside the envelope are
// noise specks, reflections or decimal point artifacts.
type Envelope struct {
	MinArea      int     `yaml:"min_area"`
	MaxArea      int     `yaml:"max_area"`
	MinAspect    float64 `yaml:"min_aspect"`
	MaxAspect    float64 `yaml:"max_aspect"`
	MergeOverlap int     `yaml:"merge_overlap"`
}

// Aspect returns the width to height ratio of the glyph's bounding box.
func (g *Glyph) Aspect() float64 {
	return float64(g.BBox.Dx()) / float64(g.BBox.Dy())
}

// In reports whether the pixel at image coordinates (x, y) is part of
// the glyph.
func (g *Glyph) In(x, y int) bool {
	if !(image.Point{x, y}).In(g.BBox) {
		return false
	}
	return g.Mask[(y-g.BBox.Min.Y)*g.BBox.Dx()+(x-g.BBox.Min.X)]
}

// Segment finds the candidate digits in a binary image. Connected
// components (8-connectivity) are filtered against the envelope, then
// components whose boxes overlap horizontally by more than the merge
// tolerance are combined, since JPEG artifacts and anti-aliasing can
// split the strokes of one digit into separate components. The result
// is ordered by ascending left edge, ties broken by the smaller top
// edge; this ordering is the digit significance order. The scan is
// fully deterministic: the same image always yields the same list.
func Segment(bin *BinaryImage, env Envelope) []Glyph {
	var glyphs []Glyph
	seen := make([]bool, len(bin.Pix))
	var stack []image.Point
	for y := 0; y < bin.H; y++ {
		for x := 0; x < bin.W; x++ {
			if seen[y*bin.W+x] || !bin.Pix[y*bin.W+x] {
				continue
			}
			// Flood fill the component from this pixel.
			var points []image.Point
			stack = append(stack[:0], image.Point{x, y})
			seen[y*bin.W+x] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				points = append(points, p)
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := p.X+dx, p.Y+dy
						if nx < 0 || ny < 0 || nx >= bin.W || ny >= bin.H {
							continue
						}
						if seen[ny*bin.W+nx] || !bin.Pix[ny*bin.W+nx] {
							continue
						}
						seen[ny*bin.W+nx] = true
						stack = append(stack, image.Point{nx, ny})
					}
				}
			}
			g := newGlyph(points)
			if env.fits(&g) {
				glyphs = append(glyphs, g)
			}
		}
	}
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].BBox.Min.X != glyphs[j].BBox.Min.X {
			return glyphs[i].BBox.Min.X < glyphs[j].BBox.Min.X
		}
		return glyphs[i].BBox.Min.Y < glyphs[j].BBox.Min.Y
	})
	return mergeSplit(glyphs, env.MergeOverlap)
}

func (env Envelope) fits(g *Glyph) bool {
	if g.Area < env.MinArea || g.Area > env.MaxArea {
		return false
	}
	a := g.Aspect()
	return a >= env.MinAspect && a <= env.MaxAspect
}

// Build a glyph from the pixels of one component.
func newGlyph(points []image.Point) Glyph {
	bb := image.Rectangle{Min: points[0], Max: points[0].Add(image.Point{1, 1})}
	for _, p := range points[1:] {
		bb = bb.Union(image.Rectangle{Min: p, Max: p.Add(image.Point{1, 1})})
	}
	g := Glyph{BBox: bb, Mask: make([]bool, bb.Dx()*bb.Dy()), Area: len(points)}
	for _, p := range points {
		g.Mask[(p.Y-bb.Min.Y)*bb.Dx()+(p.X-bb.Min.X)] = true
	}
	return g
}

// Combine glyphs whose horizontal extents overlap by more than the
// tolerance. The input is ordered by left edge, so a single pass
// accumulating into the last merged glyph is sufficient.
func mergeSplit(glyphs []Glyph, tolerance int) []Glyph {
	if len(glyphs) < 2 {
		return glyphs
	}
	out := glyphs[:1]
	for _, g := range glyphs[1:] {
		last := &out[len(out)-1]
		overlap := minInt(last.BBox.Max.X, g.BBox.Max.X) - g.BBox.Min.X
		if overlap > tolerance {
			*last = mergeGlyphs(*last, g)
		} else {
			out = append(out, g)
		}
	}
	return out
}

func mergeGlyphs(a, b Glyph) Glyph {
	bb := a.BBox.Union(b.BBox)
	g := Glyph{BBox: bb, Mask: make([]bool, bb.Dx()*bb.Dy()), Area: a.Area + b.Area}
	blit := func(src Glyph) {
		for y := src.BBox.Min.Y; y < src.BBox.Max.Y; y++ {
			for x := src.BBox.Min.X; x < src.BBox.Max.X; x++ {
				if src.Mask[(y-src.BBox.Min.Y)*src.BBox.Dx()+(x-src.BBox.Min.X)] {
					g.Mask[(y-bb.Min.Y)*bb.Dx()+(x-bb.Min.X)] = true
				}
			}
		}
	}
	blit(a)
	blit(b)
	return g
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
