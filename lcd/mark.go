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
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// MarkResult draws the display region and the decoded reading onto a
// copy of the full frame. The input image is not modified.
func MarkResult(img image.Image, r Region, reading Reading) image.Image {
	c := gg.NewContextForImage(img)
	c.SetRGB255(0, 255, 0)
	c.SetLineWidth(2)
	c.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.Stroke()
	c.SetFontFace(basicfont.Face7x13)
	c.DrawString(fmt.Sprintf("Reading: %d kWh (%s)", reading.Value, reading.Confidence),
		float64(r.X), float64(r.Y)-6)
	return c.Image()
}

// MarkGlyphs draws the bounding box of each candidate digit onto a
// copy of the cropped display region.
func MarkGlyphs(crop image.Image, glyphs []Glyph) image.Image {
	c := gg.NewContextForImage(crop)
	c.SetRGB255(0, 255, 0)
	c.SetLineWidth(1)
	for i := range glyphs {
		bb := glyphs[i].BBox
		c.DrawRectangle(float64(bb.Min.X), float64(bb.Min.Y),
			float64(bb.Dx()), float64(bb.Dy()))
	}
	c.Stroke()
	return c.Image()
}
