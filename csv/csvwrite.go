// Package csv appends meter readings to a CSV log. The log is append
// only: one row per processed image, prior rows are never rewritten or
// reordered, and the header is written only when the file is created.
package csv

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

const header = "timestamp,reading_kwh"

// Timestamps are local wall clock time.
const timeFormat = "2006-01-02 15:04:05"

type Writer struct {
	name string
	file *os.File
	buf  *bufio.Writer
}

// NewWriter opens the reading log for appending, creating it (and
// writing the header row) if it does not exist.
func NewWriter(name string) (*Writer, error) {
	var created bool
	f, err := os.OpenFile(name, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// Create new file and write initial header.
		f, err = os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", name, err)
		}
		created = true
	}
	wr := &Writer{name: name, file: f, buf: bufio.NewWriter(f)}
	if created {
		fmt.Fprintf(wr.buf, "%s\n", header)
		if err := wr.buf.Flush(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return wr, nil
}

// Name returns the path of the log file.
func (wr *Writer) Name() string {
	return wr.name
}

// Append writes one reading row and flushes it to the file.
func (wr *Writer) Append(t time.Time, value int64) error {
	fmt.Fprintf(wr.buf, "%s,%d\n", t.Format(timeFormat), value)
	return wr.buf.Flush()
}

func (wr *Writer) Close() error {
	wr.buf.Flush()
	return wr.file.Close()
}
