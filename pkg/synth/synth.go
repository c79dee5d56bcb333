// Package synth produces the (timestamp, filename) sequence for a frame
// directory, from a fixed frame rate, an external CSV table, or timestamps
// encoded in the filenames themselves.
package synth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stereolab/framestamp/pkg/nametime"
)

var (
	// ErrNoImages is returned when the source directory yielded no image files.
	ErrNoImages = errors.New("no image files found")

	// ErrNoValidRows is returned when no table row yielded a parseable timestamp.
	ErrNoValidRows = errors.New("no valid timestamps found")
)

// Record pairs a timestamp in seconds with the frame filename it belongs to.
type Record struct {
	Timestamp float64
	Filename  string
}

// CountMismatchError reports a table whose timestamp count matches neither
// its own filename column nor the directory listing.
type CountMismatchError struct {
	Timestamps int
	Images     int
}

func (e CountMismatchError) Error() string {
	return fmt.Sprintf("number of timestamps (%d) doesn't match number of images (%d)", e.Timestamps, e.Images)
}

// NameParseError reports a filename that does not encode a timestamp.
type NameParseError struct {
	Filename string
}

func (e NameParseError) Error() string {
	return fmt.Sprintf("no timestamp encoded in filename %q", e.Filename)
}

// FromRate pairs each image with a timestamp on a uniform grid starting at
// zero: record i gets i/fps seconds. The caller guarantees fps > 0.
func FromRate(fps float64, images []string) ([]Record, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	interval := 1.0 / fps

	records := make([]Record, 0, len(images))
	for idx, filename := range images {
		records = append(records, Record{
			Timestamp: float64(idx) * interval,
			Filename:  filename,
		})
	}
	return records, nil
}

// FromTable reads timestamps from a CSV table.
//
// timeCol is the zero-based column holding the timestamp; nameCol is the
// zero-based column holding the frame filename, or negative when the table
// carries no filenames. Rows that are empty, start with a "#" comment, or do
// not yield a numeric timestamp in timeCol are skipped. A row that parses a
// timestamp but lacks the requested filename column keeps its timestamp and
// contributes no filename.
//
// Pairing, in priority order: the table's own filenames when every parsed row
// supplied one, else the directory listing positionally when the counts
// match, else a CountMismatchError.
func FromTable(r io.Reader, images []string, timeCol, nameCol int) ([]Record, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var timestamps []float64
	var names []string

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, drop it and keep going.
			continue
		}
		if len(row) == 0 || strings.HasPrefix(row[0], "#") {
			continue
		}
		if timeCol >= len(row) {
			continue
		}
		ts, err := strconv.ParseFloat(strings.TrimSpace(row[timeCol]), 64)
		if err != nil {
			continue
		}
		timestamps = append(timestamps, ts)
		if nameCol >= 0 && nameCol < len(row) {
			names = append(names, row[nameCol])
		}
	}

	if len(timestamps) == 0 {
		return nil, ErrNoValidRows
	}

	records := make([]Record, 0, len(timestamps))
	switch {
	case len(names) > 0 && len(names) == len(timestamps):
		for i, ts := range timestamps {
			records = append(records, Record{Timestamp: ts, Filename: names[i]})
		}
	case len(timestamps) == len(images):
		for i, ts := range timestamps {
			records = append(records, Record{Timestamp: ts, Filename: images[i]})
		}
	default:
		return nil, CountMismatchError{Timestamps: len(timestamps), Images: len(images)}
	}

	return records, nil
}

// FromNames derives each frame's timestamp from its own filename.
//
// Every listed image must carry an encoded timestamp; a single unparseable
// name fails the whole run, since a partial track is useless downstream.
// Records keep listing order.
func FromNames(images []string) ([]Record, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	records := make([]Record, 0, len(images))
	for _, filename := range images {
		ts, ok := nametime.Parse(filename)
		if !ok {
			return nil, NameParseError{Filename: filename}
		}
		records = append(records, Record{Timestamp: ts, Filename: filename})
	}
	return records, nil
}
