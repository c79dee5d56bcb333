package list

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestList_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"frame_0002.png": &fstest.MapFile{Data: []byte("b")},
		"frame_0001.png": &fstest.MapFile{Data: []byte("a")},
		"frame_0010.PNG": &fstest.MapFile{Data: []byte("c")},
		"notes.txt":      &fstest.MapFile{Data: []byte("n")},
		"depth.exr":      &fstest.MapFile{Data: []byte("d")},
	}

	got, err := List(fsys, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"frame_0001.png", "frame_0002.png", "frame_0010.PNG"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected listing\n got: %#v\nwant: %#v", got, want)
	}
}

func TestList_NonRecursive(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png":           &fstest.MapFile{Data: []byte("a")},
		"right/b.png":     &fstest.MapFile{Data: []byte("b")},
		"right/sub/c.png": &fstest.MapFile{Data: []byte("c")},
	}

	got, err := List(fsys, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got, []string{"a.png"}) {
		t.Fatalf("expected only top-level files, got %#v", got)
	}
}

func TestList_EmptyWhenNoMatches(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md": &fstest.MapFile{Data: []byte("x")},
	}

	got, err := List(fsys, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty listing, got %#v", got)
	}
}

func TestList_CustomExtensions(t *testing.T) {
	fsys := fstest.MapFS{
		"a.pgm": &fstest.MapFile{Data: []byte("a")},
		"b.png": &fstest.MapFile{Data: []byte("b")},
	}

	opts := Options{ImageExtensions: []string{"pgm"}}
	got, err := List(fsys, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.pgm"}) {
		t.Fatalf("expected pgm-only listing, got %#v", got)
	}
}

func TestImages_MissingDirectory(t *testing.T) {
	_, err := Images(filepath.Join(t.TempDir(), "nope"), DefaultOptions())
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestImages_PathIsAFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "file.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Images(path, DefaultOptions())
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestImages_ListsRealDirectory(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"b.png", "a.png", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Images(tmp, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.png", "b.png"}) {
		t.Fatalf("unexpected listing: %#v", got)
	}
}
