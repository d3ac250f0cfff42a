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
	"time"
)

// Confidence marks whether every digit of a reading was resolved.
type Confidence int

const (
	// Partial readings have unresolved digits, a missing digit, or no
	// digits at all; the value carries a 0 placeholder per unresolved
	// position.
	Partial Confidence = iota
	// Complete readings resolved every expected digit.
	Complete
)

func (c Confidence) String() string {
	if c == Complete {
		return "complete"
	}
	return "partial"
}

// Digit is one classified glyph: its value (0-9 or Unresolved) and the
// bounding box it was read from, in crop coordinates.
type Digit struct {
	Value int
	BBox  image.Rectangle
}

// Reading is the assembled result of decoding one image.
type Reading struct {
	Value      int64      // Digits concatenated most significant first
	Digits     []Digit    // The classified digits, left to right
	Time       time.Time  // Capture timestamp
	Confidence Confidence // Complete or Partial
}

// Assemble concatenates classified digits, in order, into a reading.
// The digit order is the segmenter's left to right ordering; leftmost
// is most significant. The reading is Partial when the sequence is
// empty, when its length differs from the expected count (expect > 0),
// or when any digit is unresolved; a best effort value is produced
// regardless, substituting 0 for unresolved positions. Assemble never
// fails.
func Assemble(digits []Digit, now time.Time, expect int) Reading {
	conf := Complete
	if len(digits) == 0 {
		conf = Partial
	}
	if expect > 0 && len(digits) != expect {
		conf = Partial
	}
	var value int64
	for _, d := range digits {
		value *= 10
		if d.Value == Unresolved {
			conf = Partial
			continue
		}
		value += int64(d.Value)
	}
	return Reading{Value: value, Digits: digits, Time: now, Confidence: conf}
}
