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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/metercap/metercap/lcd"
)

func testConfig(w, h int) lcd.Config {
	conf := lcd.DefaultConfig()
	conf.Region = lcd.Region{X: 0, Y: 0, W: w, H: h}
	return conf
}

// Five rendered digits must come back as the complete reading 16737.
func TestDecode(t *testing.T) {
	img := renderImage([]int{1, 6, 7, 3, 7}, 20, 12)
	dec := lcd.NewDecoder(testConfig(img.Bounds().Dx(), img.Bounds().Dy()))
	now := time.Now()
	res, err := dec.Decode(img, now)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(res.Glyphs) != 5 {
		t.Fatalf("Expected 5 glyphs, got %d", len(res.Glyphs))
	}
	want := []int{1, 6, 7, 3, 7}
	for i, d := range res.Reading.Digits {
		if d.Value != want[i] {
			t.Errorf("Digit %d: expected %d, got %d", i, want[i], d.Value)
		}
		if d.BBox != res.Glyphs[i].BBox {
			t.Errorf("Digit %d: box %v does not match glyph %v", i, d.BBox, res.Glyphs[i].BBox)
		}
	}
	if res.Reading.Value != 16737 {
		t.Errorf("Expected 16737, got %d", res.Reading.Value)
	}
	if res.Reading.Confidence != lcd.Complete {
		t.Errorf("Expected complete, got %s", res.Reading.Confidence)
	}
	if !res.Reading.Time.Equal(now) {
		t.Errorf("Timestamp not preserved")
	}
	if res.Crop.Bounds().Dx() != img.Bounds().Dx() || res.Crop.Bounds().Dy() != img.Bounds().Dy() {
		t.Errorf("Crop dimensions %v", res.Crop.Bounds())
	}
}

// Background noise alone yields an empty candidate list and a partial
// zero reading, not an error.
func TestDecodeNoise(t *testing.T) {
	img := noiseImage(240, 72)
	dec := lcd.NewDecoder(testConfig(240, 72))
	res, err := dec.Decode(img, time.Now())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(res.Glyphs) != 0 {
		t.Fatalf("Expected no glyphs, got %d", len(res.Glyphs))
	}
	if res.Reading.Value != 0 {
		t.Errorf("Expected 0, got %d", res.Reading.Value)
	}
	if res.Reading.Confidence != lcd.Partial {
		t.Errorf("Expected partial, got %s", res.Reading.Confidence)
	}
}

func TestDecodeInvalidRegion(t *testing.T) {
	img := renderImage([]int{5}, 10, 0)
	conf := lcd.DefaultConfig()
	conf.Region = lcd.Region{X: 0, Y: 0, W: 1000, H: 1000}
	res, err := lcd.NewDecoder(conf).Decode(img, time.Now())
	if err == nil {
		t.Fatalf("Expected error for oversized region")
	}
	var ire *lcd.InvalidRegionError
	if !errors.As(err, &ire) {
		t.Errorf("Expected InvalidRegionError, got %v", err)
	}
	if res != nil {
		t.Errorf("Expected no result on invalid region")
	}
}

// An expected digit count turns a correct but short reading partial.
func TestDecodeExpectedDigits(t *testing.T) {
	img := renderImage([]int{4, 2}, 20, 12)
	conf := testConfig(img.Bounds().Dx(), img.Bounds().Dy())
	conf.Digits = 5
	res, err := lcd.NewDecoder(conf).Decode(img, time.Now())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if res.Reading.Value != 42 {
		t.Errorf("Expected 42, got %d", res.Reading.Value)
	}
	if res.Reading.Confidence != lcd.Partial {
		t.Errorf("Expected partial, got %s", res.Reading.Confidence)
	}
}

func TestParseConfig(t *testing.T) {
	in := strings.NewReader("margin: 35\nregion:\n  x: 10\n  y: 12\n  width: 80\n  height: 40\n")
	conf, err := lcd.ParseConfig(in)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if conf.Margin != 35 {
		t.Errorf("Expected margin 35, got %d", conf.Margin)
	}
	if conf.Region != (lcd.Region{X: 10, Y: 12, W: 80, H: 40}) {
		t.Errorf("Unexpected region %v", conf.Region)
	}
	// Values absent from the file keep their defaults.
	def := lcd.DefaultConfig()
	if conf.Window != def.Window || conf.Envelope != def.Envelope {
		t.Errorf("Defaults not preserved")
	}
	if _, err := lcd.ParseConfig(strings.NewReader("bogus_field: 1\n")); err == nil {
		t.Errorf("Expected error for unknown field")
	}
}
