// Package zip provides ZIP archive handling for reading extracted game
// file trees packaged as a single .zip (e.g. a folder dump zipped up for
// distribution).
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/wildarms/toolkit/internal/util"
)

// ZIPArchive represents an open ZIP archive and implements util.FileContainer.
type ZIPArchive struct {
	reader  *zip.ReadCloser
	entries []util.FileEntry
}

// Entries returns all files in the ZIP archive.
func (z *ZIPArchive) Entries() []util.FileEntry {
	return z.entries
}

// Close closes the ZIP archive.
func (z *ZIPArchive) Close() error {
	return z.reader.Close()
}

func (z *ZIPArchive) find(name string) (*zip.File, error) {
	for _, f := range z.reader.File {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("file not found in ZIP: %s", name)
}

// OpenFile opens a file within the ZIP archive for reading.
func (z *ZIPArchive) OpenFile(name string) (io.ReadCloser, error) {
	f, err := z.find(name)
	if err != nil {
		return nil, err
	}
	return f.Open()
}

// OpenFileAt opens a file within the ZIP archive with random access
// support. ZIP's DEFLATE stream has no native random access, so the entry
// is decompressed into memory once and wrapped in a bytes.Reader.
// Returns the reader and the file size.
func (z *ZIPArchive) OpenFileAt(name string) (util.RandomAccessReader, int64, error) {
	f, err := z.find(name)
	if err != nil {
		return nil, 0, err
	}

	rc, err := f.Open()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open ZIP entry %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read ZIP entry %s: %w", name, err)
	}

	return &bufferedEntry{bytes.NewReader(data)}, int64(len(data)), nil
}

// bufferedEntry adapts a bytes.Reader to util.RandomAccessReader.
type bufferedEntry struct {
	*bytes.Reader
}

func (b *bufferedEntry) Close() error { return nil }

// Open opens a ZIP archive and returns metadata for all files.
func Open(path string) (*ZIPArchive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ZIP: %w", err)
	}

	var entries []util.FileEntry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		entries = append(entries, util.FileEntry{
			Name: f.Name,
			Size: int64(f.UncompressedSize64),
		})
	}

	return &ZIPArchive{
		reader:  r,
		entries: entries,
	}, nil
}
