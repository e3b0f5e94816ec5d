// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// tarEntry describes one entry for buildTestArchive.
type tarEntry struct {
	name string
	dir  bool
}

// buildTestArchive builds an in-memory tar.gz with the given entries,
// mirroring the userApps tarball layout.
func buildTestArchive(t *testing.T, entries []tarEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     0o644,
			Typeflag: tar.TypeReg,
		}
		if e.dir {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("writing tar header: %v", err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("closing tar writer: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("closing gzip writer: %v", err)
	}

	return buf.Bytes()
}

// writeTestArchive writes the archive to a temp file and returns its path.
func writeTestArchive(t *testing.T, entries []tarEntry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "userApps.v324.src.tgz")
	if err := os.WriteFile(path, buildTestArchive(t, entries), 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}
	return path
}

func TestReadListing(t *testing.T) {
	path := writeTestArchive(t, []tarEntry{
		{"./userApps/", true},
		{"./userApps/README", false},
		{"./userApps/kent/src/", true},
		{"./userApps/kent/src/addCols/", true},
		{"./userApps/kent/src/addCols/addCols.c", false},
		{"./userApps/kent/lib/libjk.a", false}, // outside kent/src
	})

	entries, err := ReadListing(path)
	if err != nil {
		t.Fatalf("ReadListing() error: %v", err)
	}

	want := []Entry{
		{Path: "./userApps/kent/src", Dir: true},
		{Path: "./userApps/kent/src/addCols", Dir: true},
		{Path: "./userApps/kent/src/addCols/addCols.c", Dir: false},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestReadListing_NotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.tgz")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if _, err := ReadListing(path); err == nil {
		t.Fatal("ReadListing() should fail on a non-gzip file")
	}
}

func TestReadListing_MissingFile(t *testing.T) {
	if _, err := ReadListing(filepath.Join(t.TempDir(), "absent.tgz")); err == nil {
		t.Fatal("ReadListing() should fail on a missing file")
	}
}
