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
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region is the rectangle of the frame expected to hold the LCD display.
type Region struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"width"`
	H int `yaml:"height"`
}

// InvalidRegionError indicates a region that does not lie within the
// bounds of the image it is applied to.
type InvalidRegionError struct {
	Region Region
	Bounds image.Rectangle
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("region %d,%d,%d,%d outside image bounds %dx%d",
		e.Region.X, e.Region.Y, e.Region.W, e.Region.H,
		e.Bounds.Dx(), e.Bounds.Dy())
}

// ParseRegion reads a region from its command line form "x,y,width,height".
func ParseRegion(s string) (Region, error) {
	var r Region
	tok := strings.Split(s, ",")
	if len(tok) != 4 {
		return r, fmt.Errorf("region: expected 4 values, got %d", len(tok))
	}
	v := make([]int, 4)
	for i, t := range tok {
		val, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return r, fmt.Errorf("region: bad value %q: %v", t, err)
		}
		v[i] = val
	}
	r = Region{X: v[0], Y: v[1], W: v[2], H: v[3]}
	return r, nil
}

// Rect returns the region as an image rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Crop extracts the region from the image into new backing pixels,
// leaving the source untouched. The result has exactly the requested
// width and height. A region with non-positive size, or one extending
// past the image bounds, returns an InvalidRegionError.
func Crop(img image.Image, r Region) (*image.NRGBA, error) {
	b := img.Bounds()
	if r.W <= 0 || r.H <= 0 || r.X < 0 || r.Y < 0 ||
		r.X+r.W > b.Dx() || r.Y+r.H > b.Dy() {
		return nil, &InvalidRegionError{Region: r, Bounds: b}
	}
	return imaging.Crop(img, r.Rect().Add(b.Min)), nil
}
