package write

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/stereolab/framestamp/pkg/synth"
)

// Write serializes records to w in the two-column timestamp listing format:
// a provenance comment, a column-header comment, then one
// "<timestamp> <filename>" line per record in input order. Timestamps are
// fixed to six decimal places.
func Write(w io.Writer, provenance string, records []synth.Record) error {
	if _, err := fmt.Fprintf(w, "# %s\n", provenance); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# timestamp(s) filename"); err != nil {
		return err
	}

	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%.6f %s\n", rec.Timestamp, rec.Filename); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the listing to path, truncating any previous file.
//
// The caller computes all records before this runs, so a failed run never
// replaces an existing file with a partial one part-way through validation.
func WriteFile(path string, provenance string, records []synth.Record) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Write(bw, provenance, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync: %w", err)
	}
	return f.Close()
}
