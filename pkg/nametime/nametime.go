// Package nametime parses capture timestamps encoded in image filenames.
//
// Stereo datasets commonly name each frame after its capture time, either as
// decimal seconds ("1305031102.175304.png") or as an integer nanosecond
// counter ("1403636579763555584.png"). Both forms are recognized here.
package nametime

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	reSeconds = regexp.MustCompile(`^\d+\.\d+$`)
	reDigits  = regexp.MustCompile(`^\d+$`)
	reFracExt = regexp.MustCompile(`^\.\d+$`)
)

// Integer stems this long or longer are read as nanoseconds; shorter ones as
// whole seconds.
const nanosecondDigits = 16

// Parse extracts the timestamp (in seconds) encoded in filename.
//
// Returns ok=false when the filename stem is not a recognized numeric form.
func Parse(filename string) (float64, bool) {
	// An all-digit "extension" is the fractional part of an extension-less
	// decimal-seconds name, not a file extension.
	stem := filename
	if ext := filepath.Ext(filename); ext != "" && !reFracExt.MatchString(ext) {
		stem = strings.TrimSuffix(filename, ext)
	}

	if reSeconds.MatchString(stem) {
		sec, err := strconv.ParseFloat(stem, 64)
		if err != nil {
			return 0, false
		}
		return sec, true
	}

	if reDigits.MatchString(stem) {
		v, err := strconv.ParseFloat(stem, 64)
		if err != nil {
			return 0, false
		}
		if len(stem) >= nanosecondDigits {
			return v / 1e9, true
		}
		return v, true
	}

	return 0, false
}
