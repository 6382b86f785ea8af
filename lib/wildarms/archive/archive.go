// Package archive reads and writes the game's section-container format: a
// fixed 64-entry little-endian pointer table followed by the section data
// it describes. A zero pointer terminates the table; the final section
// runs to the end of the file.
package archive

import (
	"encoding/binary"
	"fmt"
	"io"
)

// numPointers is the fixed size of the pointer table at the start of every
// archive, regardless of how many sections are actually present.
const numPointers = 64

// Archive holds the parsed sections of a container file, plus the base
// pointer value the first section is addressed at by the rest of the game's
// data (map code, scripts, etc. reference sections by this scheme).
type Archive struct {
	BasePointer uint32
	sections    [][]byte
}

// New creates an empty archive with the given base pointer, ready to have
// sections appended via SetSection.
func New(basePointer uint32) *Archive {
	return &Archive{BasePointer: basePointer}
}

// Parse reads an archive's pointer table and section data from r.
func Parse(r io.Reader) (*Archive, error) {
	buf := make([]byte, numPointers*4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("archive: reading pointer table: %w", err)
	}

	pointers := make([]uint32, numPointers)
	for i := range pointers {
		pointers[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}

	a := &Archive{BasePointer: pointers[0]}

	for i := 0; i < len(pointers)-1; i++ {
		if pointers[i] == 0 {
			continue
		}

		if pointers[i+1] != 0 {
			size := pointers[i+1] - pointers[i]
			section := make([]byte, size)
			if _, err := io.ReadFull(r, section); err != nil {
				return nil, fmt.Errorf("archive: reading section %d: %w", len(a.sections), err)
			}
			a.sections = append(a.sections, section)
		} else {
			rest, err := io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("archive: reading final section %d: %w", len(a.sections), err)
			}
			a.sections = append(a.sections, rest)
			break
		}
	}

	return a, nil
}

// NumSections reports how many sections the archive holds.
func (a *Archive) NumSections() int {
	return len(a.sections)
}

// Sections returns every section's data, in order. The returned slices
// alias the archive's internal storage and must not be mutated.
func (a *Archive) Sections() [][]byte {
	return a.sections
}

// GetSection returns the data of the section at index.
func (a *Archive) GetSection(index int) ([]byte, error) {
	if index < 0 || index >= len(a.sections) {
		return nil, fmt.Errorf("archive: section index %d out of range (have %d sections)", index, len(a.sections))
	}
	return a.sections[index], nil
}

// SetSection replaces (or appends, if index == NumSections()) a section's
// data, padding it to a 4-byte boundary as the on-disk format requires.
func (a *Archive) SetSection(index int, data []byte) error {
	if index < 0 || index > len(a.sections) {
		return fmt.Errorf("archive: section index %d out of range (have %d sections)", index, len(a.sections))
	}

	padded := data
	if rem := len(data) % 4; rem != 0 {
		padded = make([]byte, len(data), len(data)+4-rem)
		copy(padded, data)
		padded = append(padded, make([]byte, 4-rem)...)
	}

	if index == len(a.sections) {
		a.sections = append(a.sections, padded)
	} else {
		a.sections[index] = padded
	}
	return nil
}

// WriteTo serializes the archive to w: a fresh pointer table computed from
// BasePointer and the current section sizes, the section data itself, and
// finally zero padding out to the next 2048-byte CD-ROM sector boundary.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	var written int64

	header := make([]byte, numPointers*4)
	p := a.BasePointer
	for index := 0; index < numPointers; index++ {
		if index < len(a.sections) {
			binary.LittleEndian.PutUint32(header[index*4:index*4+4], p)
			p += uint32(len(a.sections[index]))
		}
	}

	n, err := w.Write(header)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("archive: writing pointer table: %w", err)
	}

	for i, section := range a.sections {
		n, err := w.Write(section)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("archive: writing section %d: %w", i, err)
		}
	}

	if rem := written % 2048; rem != 0 {
		pad := make([]byte, 2048-rem)
		n, err := w.Write(pad)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("archive: writing sector padding: %w", err)
		}
	}

	return written, nil
}
