package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/metercap/metercap/csv"
	"github.com/metercap/metercap/lcd"
)

var cameraURL = flag.String("url", "http://192.168.0.2:8081/capture/flash", "Camera capture URL")
var roi = flag.String("roi", "", "Display region as x,y,width,height")
var count = flag.Int("count", 1, "Number of readings to capture")
var interval = flag.Float64("interval", 1.0, "Time between readings in seconds")
var imageFile = flag.String("image", "", "Process a single existing image instead of capturing")
var saveDir = flag.String("dir", "meter_images", "Directory for captured and result images")
var logFile = flag.String("log", "meter_readings.csv", "Reading log file")
var configFile = flag.String("config", "", "Optional pipeline tuning file (YAML)")
var logTime = flag.Bool("logtime", false, "Log date and time")

func main() {
	flag.Parse()
	if !*logTime {
		// Turn off date/time tags on logs
		log.SetFlags(0)
	}
	conf := lcd.DefaultConfig()
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			log.Fatalf("Can't read config %s: %v", *configFile, err)
		}
		conf, err = lcd.ParseConfig(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	if *roi != "" {
		r, err := lcd.ParseRegion(*roi)
		if err != nil {
			log.Fatalf("Bad -roi: %v", err)
		}
		conf.Region = r
	}
	dec := lcd.NewDecoder(conf)
	wr, err := csv.NewWriter(*logFile)
	if err != nil {
		log.Fatalf("%s: %v", *logFile, err)
	}
	defer wr.Close()

	if *imageFile != "" {
		img, err := lcd.ReadImage(*imageFile)
		if err != nil {
			log.Fatalf("%s: %v", *imageFile, err)
		}
		reading, err := process(dec, wr, img, resultBase(*imageFile))
		if err != nil {
			log.Fatalf("%s: %v", *imageFile, err)
		}
		fmt.Printf("%s: %d kWh (%s)\n", *imageFile, reading.Value, reading.Confidence)
		return
	}

	readings := capture(dec, wr)
	summary(readings)
}

// capture runs the configured number of capture/process cycles,
// strictly sequentially: each image is processed to completion before
// the next capture is issued.
func capture(dec *lcd.Decoder, wr *csv.Writer) []lcd.Reading {
	delay := time.Duration(*interval * float64(time.Second))
	log.Printf("Capturing %d readings from %s at %s intervals", *count, *cameraURL, delay)
	var readings []lcd.Reading
	for i := 0; i < *count; i++ {
		if i > 0 {
			time.Sleep(delay)
		}
		img, base, err := fetch(*cameraURL, *saveDir)
		if err != nil {
			// A failed download skips this attempt only.
			log.Printf("Capture %d/%d failed: %v", i+1, *count, err)
			continue
		}
		reading, err := process(dec, wr, img, base)
		if err != nil {
			log.Printf("Capture %d/%d: %v", i+1, *count, err)
			continue
		}
		log.Printf("Capture %d/%d: %d kWh (%s)", i+1, *count, reading.Value, reading.Confidence)
		readings = append(readings, reading)
	}
	return readings
}

func summary(readings []lcd.Reading) {
	fmt.Printf("\nCapture summary: %d/%d readings\n", len(readings), *count)
	if len(readings) == 0 {
		return
	}
	fmt.Println("\nTimestamp            Reading (kWh)")
	for _, r := range readings {
		fmt.Printf("%s  %d (%s)\n", r.Time.Format("2006-01-02 15:04:05"), r.Value, r.Confidence)
	}
	fmt.Printf("\nReadings saved to %s\n", *logFile)
}
