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
	"io"

	"gopkg.in/yaml.v3"
)

// Config carries the tuning values for the recognition pipeline. A
// decoder holds its own copy, so separate decoders with different
// configurations can run side by side.
type Config struct {
	Region    Region   `yaml:"region"`     // Display area within the frame
	Stretch   bool     `yaml:"stretch"`    // Contrast stretch before thresholding
	Window    int      `yaml:"window"`     // Local threshold window size (pixels)
	Margin    int      `yaml:"margin"`     // Threshold margin below the local mean
	Inverse   bool     `yaml:"inverse"`    // Light segments on dark background
	Envelope  Envelope `yaml:"envelope"`   // Plausible digit size/shape limits
	Density   float64  `yaml:"density"`    // Segment 'on' foreground fraction
	OneAspect float64  `yaml:"one_aspect"` // Aspect below which a glyph is a 1
	Tolerance int      `yaml:"tolerance"`  // Nearest pattern match distance
	Digits    int      `yaml:"digits"`     // Expected digit count, 0 for any
}

// DefaultConfig returns the tuning values for a typical kWh meter LCD
// photographed at close range.
func DefaultConfig() Config {
	return Config{
		Region:  Region{X: 187, Y: 188, W: 275, H: 146},
		Stretch: true,
		Window:  25,
		Margin:  20,
		Envelope: Envelope{
			MinArea:      50,
			MaxArea:      2000,
			MinAspect:    0.08,
			MaxAspect:    1.2,
			MergeOverlap: 2,
		},
		Density:   0.30,
		OneAspect: 0.45,
		Tolerance: 1,
	}
}

// ParseConfig reads a YAML tuning file over the defaults. Values not
// present in the file keep their defaults.
func ParseConfig(r io.Reader) (Config, error) {
	conf := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && err != io.EOF {
		return conf, fmt.Errorf("config: %w", err)
	}
	return conf, nil
}
