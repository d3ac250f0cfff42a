package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/metercap/metercap/csv"
	"github.com/metercap/metercap/lcd"
)

// fetch downloads one frame from the camera and saves it under dir as
// meter_YYYYMMDD_HHMMSS.jpg. It returns the decoded frame and the path
// prefix used for the result images of this capture.
func fetch(url, dir string) (image.Image, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", err
	}
	img, err := lcd.GetSource(url)
	if err != nil {
		return nil, "", err
	}
	name := filepath.Join(dir, fmt.Sprintf("meter_%s.jpg", time.Now().Format("20060102_150405")))
	if err := lcd.SaveImage(name, img); err != nil {
		return nil, "", err
	}
	return img, strings.TrimSuffix(name, ".jpg"), nil
}

// resultBase strips the extension from an existing image path so the
// result images land next to it.
func resultBase(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// process runs one frame through the decoder, writes the visualization
// images, and appends the reading to the log. Partial readings are
// persisted like complete ones, distinguished by the confidence
// marker; only an invalid display region aborts the frame with no row
// written.
func process(dec *lcd.Decoder, wr *csv.Writer, img image.Image, base string) (lcd.Reading, error) {
	res, err := dec.Decode(img, time.Now())
	if err != nil {
		return lcd.Reading{}, err
	}
	if err := lcd.SaveImage(base+"_result.jpg", lcd.MarkResult(img, dec.Region(), res.Reading)); err != nil {
		log.Printf("%s_result.jpg: %v", base, err)
	}
	if err := lcd.SaveImage(base+"_roi.jpg", lcd.MarkGlyphs(res.Crop, res.Glyphs)); err != nil {
		log.Printf("%s_roi.jpg: %v", base, err)
	}
	if err := wr.Append(res.Reading.Time, res.Reading.Value); err != nil {
		return res.Reading, err
	}
	return res.Reading, nil
}
