// Package mapdata parses one map's data block (scripts, actor/flag
// sections, the Kanji glyph bitmap, and the trailing MIPS native code and
// graphics) and implements the relocation needed to splice in a
// resized script and have every pointer, jump target, and split hi/lo
// constant in the block still land on the right byte.
package mapdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/wildarms/toolkit/lib/wildarms/lzss"
	"github.com/wildarms/toolkit/lib/wildarms/script"
	"github.com/wildarms/toolkit/lib/wildarms/version"
)

// ErrOverrun is returned when a rewritten map's relocated native-code
// trailer would no longer fit before the fixed graphics anchor.
var ErrOverrun = errors.New("mapdata: map overrun past graphics anchor")

// ErrUnrecognizedSequence is returned when SetScripts encounters a
// lui 0x8014..0x8017 instruction pair inside the MIPS code window that
// doesn't match any of the recognized pointer-split shapes.
var ErrUnrecognizedSequence = errors.New("mapdata: unrecognized MIPS instruction sequence")

// Map data section indexes, into the 18-entry pointer table at offset 0x40.
const (
	SectionActor      = 5
	SectionEntry      = 6  // script code entry table
	SectionScript1    = 7  // first script code section
	SectionScript2    = 8  // second script code section (optional)
	SectionFlag       = 9  // flag byte
	SectionKanji      = 14 // Kanji bitmap
	SectionMusicTable = 16 // music offset table
	SectionMusicData  = 17 // music data (VABs and LZSS-compressed SEQs)

	numSections = 18
	pointerTableOffset = 0x40
	gfxStart            = 0x15000
)

// StringSpan is one fixed-capacity string slot inside a map's native code,
// given as a (byte offset, max size) pair relative to the start of the code.
type StringSpan struct {
	Offset  int
	MaxSize int
}

// MapData is the parsed form of one map's data block.
type MapData struct {
	Version   version.Version
	MapNumber int

	data     []byte
	pointers [numSections]uint32
	offsets  [numSections]int

	entryTableStart, entryTableEnd int
	script1Start, script1End       int
	script2Start, script2End       int // -1 when the map has no second script section
	script1FirstInstr              int
	script2FirstInstr              int // -1 when absent

	kanjiBitmap []byte
}

// New parses a map data block.
func New(mapBlock []byte, mapNumber int, v version.Version) (*MapData, error) {
	if !version.Valid(v) {
		return nil, fmt.Errorf("mapdata: %w: %q", version.ErrUnknownVersion, v)
	}
	m := &MapData{MapNumber: mapNumber, Version: v}
	if err := m.SetData(mapBlock); err != nil {
		return nil, err
	}
	return m, nil
}

// Data returns a copy of the map's current raw data block.
func (m *MapData) Data() []byte {
	return append([]byte(nil), m.data...)
}

// SetData replaces the map's binary data block and re-derives every
// section boundary and cached field from it.
func (m *MapData) SetData(mapBlock []byte) error {
	if len(mapBlock) < pointerTableOffset+numSections*4 {
		return fmt.Errorf("mapdata: data block too small for pointer table (%d bytes)", len(mapBlock))
	}

	m.data = append([]byte(nil), mapBlock...)

	for i := 0; i < numSections; i++ {
		off := pointerTableOffset + i*4
		m.pointers[i] = binary.LittleEndian.Uint32(m.data[off : off+4])
		m.offsets[i] = script.PointerToOffset(m.pointers[i])
	}

	m.entryTableStart = m.offsets[SectionEntry]
	m.entryTableEnd = m.offsets[SectionScript1]

	m.script1Start = m.offsets[SectionScript1]
	if m.pointers[SectionScript2] != 0 {
		m.script1End = m.offsets[SectionScript2] - 4 // skip bogus pointer before next section
	} else {
		m.script1End = m.offsets[SectionKanji] - 4
	}

	if m.pointers[SectionScript2] != 0 {
		m.script2Start = m.offsets[SectionScript2]
		if m.pointers[SectionMusicTable] < m.pointers[SectionKanji] {
			m.script2End = m.offsets[SectionMusicTable] - 4
		} else {
			m.script2End = m.offsets[SectionKanji] - 4
		}
	} else {
		m.script2Start = -1
		m.script2End = -1
	}

	// Each script section is preceded by an address table, whose first
	// entry usually points to the first instruction after the table. Maps
	// 37 and 119 are exceptions with a leading filler word.
	firstInstrAddr := func(sectionStart int) uint16 {
		if m.MapNumber == 37 || m.MapNumber == 119 {
			return binary.LittleEndian.Uint16(m.data[sectionStart+2 : sectionStart+4])
		}
		return binary.LittleEndian.Uint16(m.data[sectionStart : sectionStart+2])
	}

	m.script1FirstInstr = script.AddrToOffset(firstInstrAddr(m.script1Start))

	if m.script2Start != -1 {
		addr := binary.LittleEndian.Uint16(m.data[m.script2Start : m.script2Start+2])
		m.script2FirstInstr = script.AddrToOffset(addr)
	} else {
		m.script2FirstInstr = -1
	}

	switch {
	case m.pointers[SectionFlag] != 0:
		m.kanjiBitmap = m.data[m.offsets[SectionKanji]:m.offsets[SectionFlag]]
	case m.pointers[10] != 0:
		m.kanjiBitmap = m.data[m.offsets[SectionKanji]:m.offsets[10]]
	default:
		m.kanjiBitmap = m.data[m.offsets[SectionKanji]:m.offsets[SectionMusicTable]]
	}
	if rem := len(m.kanjiBitmap) % 22; rem != 0 {
		m.kanjiBitmap = m.kanjiBitmap[:len(m.kanjiBitmap)-rem]
	}

	return nil
}

func (m *MapData) extractEntries(offset, endOffset int) []uint16 {
	numEntries := (endOffset - offset) / 2
	out := make([]uint16, numEntries)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(m.data[offset+i*2 : offset+i*2+2])
	}
	return out
}

// GetGlobalEntries returns the map's script entry table as a list of addresses.
func (m *MapData) GetGlobalEntries() []uint16 {
	return m.extractEntries(m.entryTableStart, m.entryTableEnd)
}

// GetScript1Entries returns the first script section's own entry table.
func (m *MapData) GetScript1Entries() []uint16 {
	return m.extractEntries(m.script1Start, m.script1FirstInstr)
}

// GetScript2Entries returns the second script section's entry table, or nil
// if the map has no second section.
func (m *MapData) GetScript2Entries() []uint16 {
	if m.script2Start == -1 {
		return nil
	}
	return m.extractEntries(m.script2Start, m.script2FirstInstr)
}

// ExtractScript disassembles the ENTRY pseudo-instructions and code in
// [offset, endOffset), where firstInstr marks the boundary between the two.
func (m *MapData) ExtractScript(offset, firstInstr, endOffset int) ([]*script.Instruction, error) {
	var out []*script.Instruction

	for offset < firstInstr {
		target := binary.LittleEndian.Uint16(m.data[offset : offset+2])
		out = append(out, &script.Instruction{
			Op:     script.OpEntry,
			Length: 2,
			Addr:   script.OffsetToAddr(offset, script.MapBasePointer),
			Bytes:  append([]byte(nil), m.data[offset:offset+2]...),
			Disass: fmt.Sprintf("entry %02x", target),
			Reloc:  []int{0},
		})
		offset += 2
	}

	for offset < endOffset {
		instr, err := script.ParseInstruction(m.data, offset, m.Version, script.MapBasePointer, m.kanjiBitmap)
		if err != nil {
			return nil, err
		}
		out = append(out, instr)
		offset += instr.Length
	}

	return out, nil
}

// GetScript1 disassembles the first script section.
func (m *MapData) GetScript1() ([]*script.Instruction, error) {
	return m.ExtractScript(m.script1Start, m.script1FirstInstr, m.script1End)
}

// GetScript2 disassembles the second script section, or returns nil if absent.
func (m *MapData) GetScript2() ([]*script.Instruction, error) {
	if m.script2Start == -1 {
		return nil, nil
	}
	return m.ExtractScript(m.script2Start, m.script2FirstInstr, m.script2End)
}

// findMipsCode locates the native MIPS code trailer, returning its
// (startOffset, endOffset) range. When section 10's pointer lies past the
// music table's, it gives the start directly; otherwise the start is the end
// of the last music data entry's compressed stream, aligned to 4 bytes.
func (m *MapData) findMipsCode() (int, int, error) {
	var startOffset int

	if m.pointers[10] > m.pointers[SectionMusicTable] {
		startOffset = script.PointerToOffset(m.pointers[10])
	} else {
		offset := m.offsets[SectionMusicTable]
		var dataStart int
		for {
			if offset+4 > len(m.data) {
				return 0, 0, fmt.Errorf("mapdata: music table runs past end of data without terminator")
			}
			entry := binary.LittleEndian.Uint32(m.data[offset : offset+4])
			if entry == 0xffffffff {
				break
			}
			dataStart = m.offsets[SectionMusicData] + int(entry)
			offset += 4
		}

		// The trailing music data starts with an LZSS-compressed SEQ whose
		// uncompressed-length prefix tells us where it ends.
		size, err := lzss.CompressedSize(m.data[dataStart:])
		if err != nil {
			return 0, 0, fmt.Errorf("mapdata: finding end of compressed music data: %w", err)
		}
		startOffset = dataStart + size
		if rem := startOffset % 4; rem != 0 {
			startOffset += 4 - rem
		}
	}

	// The end offset is estimated from the text section size in the
	// executable header at the start of the map data (rounded to 2048
	// bytes, so inexact, but good enough to bound the relocation scan).
	endOffset := int(binary.LittleEndian.Uint32(m.data[0x0c:0x10]))

	return startOffset, endOffset, nil
}

// GetCodeStrings extracts the strings embedded in the MIPS code, per the
// (offset, maxSize) schedule for this map in stringTable.
func (m *MapData) GetCodeStrings(stringTable map[int][]StringSpan) ([][]byte, error) {
	spans, ok := stringTable[m.MapNumber]
	if !ok {
		return nil, nil
	}

	exeStart, _, err := m.findMipsCode()
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(spans))
	for _, span := range spans {
		start := exeStart + span.Offset
		end := bytes.IndexByte(m.data[start:], 0x00)
		if end < 0 {
			return nil, fmt.Errorf("mapdata: unterminated code string at offset %d", span.Offset)
		}
		out = append(out, append([]byte(nil), m.data[start:start+end]...))
	}
	return out, nil
}

type relocKind int

const (
	relocNone relocKind = iota
	relocPointer
	relocJump
	relocHiLo
	relocHiLo2
)

func isLoadStoreOrAddiu(opBits uint32) bool {
	switch opBits {
	case 0x24000000, 0x84000000, 0x8c000000, 0x90000000, 0x94000000, 0xa0000000, 0xa4000000, 0xac000000:
		return true
	default:
		return false
	}
}

// SetScripts replaces the map's script code (and, optionally, a set of
// fixed-capacity strings embedded in the trailing MIPS code) and relocates
// every pointer, jump target, and split hi/lo constant in the block to
// account for the script's new size. script1/script2 must come from a prior
// GetScript1/GetScript2 call (or freshly built in the same shape); PTR
// pseudo-instructions are dropped automatically, since callers never want
// to relocate or realign them.
func (m *MapData) SetScripts(script1In, script2In []*script.Instruction, codeStrings [][]byte, stringTable map[int][]StringSpan) error {
	dropPtr := func(instrs []*script.Instruction) []*script.Instruction {
		out := make([]*script.Instruction, 0, len(instrs))
		for _, instr := range instrs {
			if instr.Op != script.OpPtr {
				c := *instr
				c.Bytes = append([]byte(nil), instr.Bytes...)
				out = append(out, &c)
			}
		}
		return out
	}
	script1 := dropPtr(script1In)
	script2 := dropPtr(script2In)

	if len(script1) == 0 {
		return fmt.Errorf("mapdata: script1 must not be empty")
	}

	newData := append([]byte(nil), m.data[:m.entryTableStart]...)

	addrMap := script.RecalcScriptAddr(script1, script.OffsetToAddr(m.script1Start, script.MapBasePointer))

	last := script1[len(script1)-1]
	end := script.AddrToOffset(last.Addr) + last.Length
	if rem := end % 4; rem != 0 {
		end += 4 - rem
	}

	script2Start := -1
	if len(script2) > 0 {
		script2Start = end + 4
		off := pointerTableOffset + SectionScript2*4
		binary.LittleEndian.PutUint32(newData[off:off+4], script.OffsetToPointer(script2Start))

		addrMap2 := script.RecalcScriptAddr(script2, script.OffsetToAddr(script2Start, script.MapBasePointer))
		for k, v := range addrMap2 {
			addrMap[k] = v
		}
	}

	// Create a new, relocated entry table and append it.
	entries := m.GetGlobalEntries()
	entryData := make([]byte, 0, len(entries)*2)
	for _, e := range entries {
		newAddr := addrMap[e] // zero value (unused entry) if not found
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, newAddr)
		entryData = append(entryData, buf...)
	}
	newData = append(newData, entryData...)

	if len(newData) != m.script1Start {
		return fmt.Errorf("mapdata: entry table size changed unexpectedly (have %d, want %d)", len(newData), m.script1Start)
	}

	if err := script.FixupScript(script1, addrMap); err != nil {
		return err
	}
	newData = append(newData, script.GetScriptData(script1)...)
	newData = script.Align4(newData)

	// Bogus pointer before next section, matching the linker's own habit.
	bogus := make([]byte, 4)
	binary.LittleEndian.PutUint32(bogus, script.OffsetToPointer(len(newData)))
	newData = append(newData, bogus...)

	if len(script2) > 0 {
		if len(newData) != script2Start {
			return fmt.Errorf("mapdata: script2 start changed unexpectedly (have %d, want %d)", len(newData), script2Start)
		}

		if err := script.FixupScript(script2, addrMap); err != nil {
			return err
		}
		newData = append(newData, script.GetScriptData(script2)...)
		newData = script.Align4(newData)

		binary.LittleEndian.PutUint32(bogus, script.OffsetToPointer(len(newData)))
		newData = append(newData, bogus...)
	}

	if len(newData)%4 != 0 {
		return fmt.Errorf("mapdata: internal alignment invariant violated")
	}

	start := m.offsets[SectionMusicTable]
	if m.offsets[SectionKanji] < start {
		start = m.offsets[SectionKanji]
	}
	deltaOffset := len(newData) - start

	newData = append(newData, m.data[start:gfxStart]...)
	switch {
	case len(newData) > gfxStart:
		newData = newData[:gfxStart]
	case len(newData) < gfxStart:
		newData = append(newData, make([]byte, gfxStart-len(newData))...)
	}
	if len(newData) != gfxStart {
		return fmt.Errorf("mapdata: internal graphics-boundary invariant violated")
	}

	exeStart, exeEnd, err := m.findMipsCode()
	if err != nil {
		return err
	}

	startPointer := int64(script.OffsetToPointer(exeStart))
	endPointer := int64(script.OffsetToPointer(exeEnd))
	mapGfxPointer := int64(script.MapGfxPointer)

	exeStart += deltaOffset
	exeEnd += deltaOffset

	if exeEnd > gfxStart {
		return fmt.Errorf("%w: relocated code end %d exceeds graphics start %d", ErrOverrun, exeEnd, gfxStart)
	}

	// Relocate the MIPS code. There's no 32-bit operand slot in any single
	// MIPS instruction, so a split pointer is recognized by instruction
	// sequence shape instead. The sequences produced by the original
	// compiler are regular enough for this to be reliable.
	for offset := exeStart; offset < exeEnd; offset += 4 {
		w := binary.LittleEndian.Uint32(newData[offset : offset+4])
		w2 := binary.LittleEndian.Uint32(newData[offset+4 : offset+8])
		w3 := binary.LittleEndian.Uint32(newData[offset+8 : offset+12])

		reloc := relocNone

		switch {
		case int64(w) >= startPointer && int64(w) < endPointer:
			reloc = relocPointer

		case (w&0xfc000000) == 0x08000000 || (w&0xfc000000) == 0x0c000000:
			// j / jal with 26-bit jump operand
			a := int64(((w & 0x03ffffff) << 2) | 0x80000000)
			if a >= startPointer && a <= endPointer {
				reloc = relocJump
			}

		case (w & 0xfc00fffc) == 0x3c008014:
			// First instruction is 'lui rx, 0x8014..0x8017'.
			switch {
			case isLoadStoreOrAddiu(w2 & 0xfc000000):
				// 'lui + addiu' (32-bit pointer) or 'lui + load/store'
				// (fixed-address access).
				reloc = relocHiLo
			case (w2 & 0xfc000000) == 0x34000000:
				// 'lui + ori', never used for in-code references, only
				// fixed addresses like the graphics data start.
				reloc = relocNone
			case (w2 & 0xfc0007ff) == 0x00000021: // addu
				if isLoadStoreOrAddiu(w3 & 0xfc000000) {
					reloc = relocHiLo2
				} else {
					return fmt.Errorf("%w: %08x %08x %08x at offset %d", ErrUnrecognizedSequence, w, w2, w3, offset)
				}
			default:
				return fmt.Errorf("%w: %08x %08x %08x at offset %d", ErrUnrecognizedSequence, w, w2, w3, offset)
			}
		}

		switch reloc {
		case relocPointer:
			binary.LittleEndian.PutUint32(newData[offset:offset+4], w+uint32(deltaOffset))

		case relocJump:
			n := (w & 0xfc000000) | ((w & 0x03ffffff) + uint32(deltaOffset/4))
			binary.LittleEndian.PutUint32(newData[offset:offset+4], n)

		case relocHiLo:
			lo16 := int16(binary.LittleEndian.Uint16(newData[offset+4 : offset+6]))
			p := int64(w&0xffff)<<16 + int64(lo16)
			if p >= startPointer && p <= mapGfxPointer {
				p += int64(deltaOffset)
				hi := uint16(p >> 16)
				lo := uint16(p & 0xffff)
				if lo >= 0x8000 {
					hi++ // a negative lower part decrements the upper part
				}
				binary.LittleEndian.PutUint16(newData[offset:offset+2], hi)
				binary.LittleEndian.PutUint16(newData[offset+4:offset+6], lo)
			}

		case relocHiLo2:
			lo16 := int16(binary.LittleEndian.Uint16(newData[offset+8 : offset+10]))
			p := int64(w&0xffff)<<16 + int64(lo16)
			if p >= startPointer && p <= mapGfxPointer {
				p += int64(deltaOffset)
				hi := uint16(p >> 16)
				lo := uint16(p & 0xffff)
				if lo >= 0x8000 {
					hi++
				}
				binary.LittleEndian.PutUint16(newData[offset:offset+2], hi)
				binary.LittleEndian.PutUint16(newData[offset+8:offset+10], lo)
			}
		}
	}

	if len(codeStrings) > 0 {
		spans, ok := stringTable[m.MapNumber]
		if !ok {
			return fmt.Errorf("mapdata: no string table entries for map %d", m.MapNumber)
		}
		if len(codeStrings) > len(spans) {
			return fmt.Errorf("mapdata: %d code strings exceed %d string table slots for map %d", len(codeStrings), len(spans), m.MapNumber)
		}

		for i, s := range codeStrings {
			span := spans[i]
			padded := s
			if len(s) < span.MaxSize {
				padded = make([]byte, span.MaxSize)
				copy(padded, s)
			}
			copy(newData[exeStart+span.Offset:exeStart+span.Offset+span.MaxSize], padded)
		}
	}

	// Update the remaining section pointers which follow the script code.
	for _, section := range []int{SectionFlag, 10, 11, 12, 13, SectionKanji, 15, SectionMusicTable, SectionMusicData} {
		off := pointerTableOffset + section*4
		p := binary.LittleEndian.Uint32(newData[off : off+4])
		if p != 0 {
			binary.LittleEndian.PutUint32(newData[off:off+4], p+uint32(deltaOffset))
		}
	}

	// Update addresses in EXEC instructions, which reference absolute
	// pointers rather than script addresses and so aren't covered by addrMap.
	for _, instr := range append(append([]*script.Instruction{}, script1...), script2...) {
		if instr.Op == script.OpExec {
			off := script.AddrToOffset(instr.Addr)
			p := binary.LittleEndian.Uint32(newData[off+1 : off+5])
			binary.LittleEndian.PutUint32(newData[off+1:off+5], p+uint32(deltaOffset))
		}
	}

	// Update pointers/offsets in the executable header.
	for _, off := range []int{0, 12} {
		p := binary.LittleEndian.Uint32(newData[off : off+4])
		binary.LittleEndian.PutUint32(newData[off:off+4], p+uint32(deltaOffset))
	}

	// Copy graphics and sound data, unchanged.
	newData = append(newData, m.data[gfxStart:]...)

	return m.SetData(newData)
}
