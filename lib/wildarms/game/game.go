// Package game opens a Wild Arms disc image, ZIP, or extracted directory
// tree and probes it for which regional release it holds.
package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wildarms/toolkit/internal/container/folder"
	zipcontainer "github.com/wildarms/toolkit/internal/container/zip"
	"github.com/wildarms/toolkit/lib/format/iso9660"
	"github.com/wildarms/toolkit/lib/format/playstation_cnf"
	"github.com/wildarms/toolkit/lib/wildarms/version"
)

// ErrUnknownCNF is returned when SYSTEM.CNF names an executable that doesn't
// match any of the seven known Wild Arms releases.
var ErrUnknownCNF = errors.New("game: unrecognized disc executable")

// FileOpener opens files within a game disc, ZIP, or directory tree by
// subdirectory and name, e.g. OpenFile("EXE", "WILDARMS.EXE").
type FileOpener interface {
	OpenFile(subDir, name string) (io.ReadCloser, error)
	HasFile(subDir, name string) bool
}

func join(subDir, name string) string {
	if subDir == "" {
		return name
	}
	return subDir + "/" + name
}

// DirectoryOpener backs a FileOpener with a plain filesystem directory that
// mirrors the disc's layout, via the folder container's name-based lookup.
type DirectoryOpener struct {
	container *folder.FolderContainer
}

// NewDirectoryOpener creates a DirectoryOpener rooted at root.
func NewDirectoryOpener(root string) (*DirectoryOpener, error) {
	c, err := folder.NewFolderContainer(root)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return &DirectoryOpener{container: c}, nil
}

func (d *DirectoryOpener) OpenFile(subDir, name string) (io.ReadCloser, error) {
	rc, err := d.container.OpenFile(join(subDir, name))
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return rc, nil
}

func (d *DirectoryOpener) HasFile(subDir, name string) bool {
	target := join(subDir, name)
	for _, e := range d.container.Entries() {
		if e.Name == target {
			return true
		}
	}
	return false
}

// ZipOpener backs a FileOpener with a ZIP archive of an extracted disc.
type ZipOpener struct {
	archive *zipcontainer.ZIPArchive
}

// NewZipOpener opens the ZIP archive at path.
func NewZipOpener(path string) (*ZipOpener, error) {
	archive, err := zipcontainer.Open(path)
	if err != nil {
		return nil, err
	}
	return &ZipOpener{archive: archive}, nil
}

func (z *ZipOpener) OpenFile(subDir, name string) (io.ReadCloser, error) {
	return z.archive.OpenFile(join(subDir, name))
}

func (z *ZipOpener) HasFile(subDir, name string) bool {
	rc, err := z.archive.OpenFile(join(subDir, name))
	if err != nil {
		return false
	}
	rc.Close()
	return true
}

// Close releases the underlying ZIP archive.
func (z *ZipOpener) Close() error {
	return z.archive.Close()
}

// ImageOpener backs a FileOpener with an ISO 9660 disc image.
type ImageOpener struct {
	image *iso9660.Image
	file  *os.File
}

// NewImageOpener opens the ISO 9660 image at path.
func NewImageOpener(path string) (*ImageOpener, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("game: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("game: stat %s: %w", path, err)
	}

	img, err := iso9660.Open(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("game: %w", err)
	}

	return &ImageOpener{image: img, file: f}, nil
}

func (i *ImageOpener) OpenFile(subDir, name string) (io.ReadCloser, error) {
	data, err := i.image.ReadFile(subDir, name)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (i *ImageOpener) HasFile(subDir, name string) bool {
	_, err := i.image.ReadFile(subDir, name)
	return err == nil
}

// Close releases the underlying image file handle.
func (i *ImageOpener) Close() error {
	return i.file.Close()
}

// OpenImage dispatches on whether path names a regular file (tried as a ZIP,
// then as an ISO 9660 image) or a directory.
func OpenImage(path string) (FileOpener, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("game: stat %s: %w", path, err)
	}

	if info.IsDir() {
		return NewDirectoryOpener(path)
	}

	if zo, err := NewZipOpener(path); err == nil {
		return zo, nil
	}

	return NewImageOpener(path)
}

// ProbeVersion reads SYSTEM.CNF from f, matches its boot line, and resolves
// the regional release. For the Japanese disc ID it disambiguates JP1 vs JP2
// by inspecting byte 16 of EXE/WILDARMS.EXE.
func ProbeVersion(f FileOpener) (version.Version, string, error) {
	rc, err := f.OpenFile("", "SYSTEM.CNF")
	if err != nil {
		return "", "", fmt.Errorf("game: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", "", fmt.Errorf("game: reading SYSTEM.CNF: %w", err)
	}

	execName, err := playstation_cnf.ExecFileName(data)
	if err != nil {
		return "", "", fmt.Errorf("game: %w", err)
	}

	switch execName {
	case "SCPS_100.28":
		v, err := disambiguateJapanese(f)
		if err != nil {
			return "", "", err
		}
		return v, execName, nil
	case "SCUS_946.08":
		return version.US, execName, nil
	case "SCES_003.21":
		return version.EN, execName, nil
	case "SCES_011.71":
		return version.FR, execName, nil
	case "SCES_011.72":
		return version.DE, execName, nil
	case "SCES_011.73":
		return version.IT, execName, nil
	case "SCES_011.74":
		return version.ES, execName, nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnknownCNF, execName)
	}
}

// disambiguateJapanese reads byte 16 of EXE/WILDARMS.EXE: 0x10 selects the
// revised JP2 pressing, anything else the original JP1 pressing.
func disambiguateJapanese(f FileOpener) (version.Version, error) {
	rc, err := f.OpenFile("EXE", "WILDARMS.EXE")
	if err != nil {
		return "", fmt.Errorf("game: %w", err)
	}
	defer rc.Close()

	header := make([]byte, 32)
	if _, err := io.ReadFull(rc, header); err != nil {
		return "", fmt.Errorf("game: reading WILDARMS.EXE header: %w", err)
	}

	if header[16] == 0x10 {
		return version.JP2, nil
	}
	return version.JP1, nil
}
