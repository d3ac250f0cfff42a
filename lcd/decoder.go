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

// Package lcd reads the numeric value shown on a digital meter's LCD
// display from a photograph. The pipeline is strictly linear: the
// frame is cropped to the display region, reduced to luminance and
// thresholded against the local background, candidate glyphs are
// isolated as connected components, each glyph is classified against
// the canonical 7 segment digit patterns, and the ordered digits are
// assembled into a reading with a confidence marker.
package lcd

import (
	"image"
	"time"
)

// Decoder runs the recognition pipeline over captured frames. It holds
// only read-only configuration; each frame owns its own intermediate
// buffers, so a single decoder may process any number of frames in
// sequence.
type Decoder struct {
	conf Config
}

// Result carries the assembled reading along with the intermediate
// stage outputs needed by the visualization collaborator.
type Result struct {
	Reading Reading      // Assembled reading
	Crop    image.Image  // The cropped display region
	Bin     *BinaryImage // Thresholded region
	Glyphs  []Glyph      // Ordered candidate digits
}

// NewDecoder creates a decoder with the given tuning values.
func NewDecoder(conf Config) *Decoder {
	return &Decoder{conf: conf}
}

// Region returns the configured display region.
func (d *Decoder) Region() Region {
	return d.conf.Region
}

// Decode runs one frame through the pipeline. The only hard failure is
// a display region lying outside the frame (InvalidRegionError); an
// unreadable display yields a Partial reading, never an error.
func (d *Decoder) Decode(img image.Image, now time.Time) (*Result, error) {
	crop, err := Crop(img, d.conf.Region)
	if err != nil {
		return nil, err
	}
	gray := ToGray(crop)
	if d.conf.Stretch {
		gray.Stretch()
	}
	bin := gray.Binarize(d.conf.Window, d.conf.Margin, d.conf.Inverse)
	glyphs := Segment(bin, d.conf.Envelope)
	digits := make([]Digit, 0, len(glyphs))
	for i := range glyphs {
		digits = append(digits, Digit{
			Value: Classify(&glyphs[i], d.conf.Density, d.conf.OneAspect, d.conf.Tolerance),
			BBox:  glyphs[i].BBox,
		})
	}
	return &Result{
		Reading: Assemble(digits, now, d.conf.Digits),
		Crop:    crop,
		Bin:     bin,
		Glyphs:  glyphs,
	}, nil
}
