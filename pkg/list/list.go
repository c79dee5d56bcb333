package list

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDirectory is returned when the source path does not exist or is not a directory.
var ErrNotDirectory = errors.New("not a directory")

type Options struct {
	// ImageExtensions is the allow-list of recognized extensions (case insensitive).
	ImageExtensions []string
}

func DefaultOptions() Options {
	return Options{
		ImageExtensions: []string{".png"},
	}
}

// List returns the filenames in the root of fsys whose extension is in the
// allow-list, sorted ascending by filename. Subdirectories are not descended
// into and file contents are never read.
func List(fsys fs.FS, opts Options) ([]string, error) {
	exts := normalizeExts(opts.ImageExtensions)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	matches := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !exts[ext] {
			continue
		}
		matches = append(matches, entry.Name())
	}

	sort.Strings(matches)
	return matches, nil
}

// Images lists the recognized image filenames directly inside dir.
//
// The directory is validated before listing; a missing path or a
// non-directory yields ErrNotDirectory.
func Images(dir string, opts Options) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return List(os.DirFS(dir), opts)
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.TrimSpace(strings.ToLower(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}
