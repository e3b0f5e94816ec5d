// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourcePrefix restricts the listing to the Kent source tree inside the
// tarball; the archive also carries prebuilt libraries and documentation
// that never hold program sources.
const SourcePrefix = "./userApps/kent/src"

// Entry is one path inside the source tarball.
type Entry struct {
	// Path is the entry name as stored in the tarball, without a trailing
	// slash for directories.
	Path string
	// Dir reports whether the entry is a directory.
	Dir bool
}

// ReadListing opens the tar.gz archive at path and returns the entries under
// SourcePrefix. Only names are read; file contents are skipped.
func ReadListing(path string) (_ []Entry, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer func() {
		// Read-only file handle; close errors are exotic.
		_ = f.Close()
	}()

	entries, err := readListing(f)
	if err != nil {
		return nil, fmt.Errorf("listing archive %s: %w", path, err)
	}
	return entries, nil
}

// readListing collects the source-tree entries from a tar.gz stream.
func readListing(r io.Reader) ([]Entry, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer func() { _ = gz.Close() }() // reader wraps the caller's stream

	var entries []Entry

	tr := tar.NewReader(gz)
	for {
		hdr, nextErr := tr.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			return nil, fmt.Errorf("reading tar entry: %w", nextErr)
		}

		name := strings.TrimSuffix(hdr.Name, "/")
		if !strings.HasPrefix(name, SourcePrefix) {
			continue
		}

		entries = append(entries, Entry{
			Path: name,
			Dir:  hdr.FileInfo().IsDir(),
		})
	}

	return entries, nil
}
