package mapdata

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/wildarms/toolkit/lib/wildarms/script"
	"github.com/wildarms/toolkit/lib/wildarms/version"
)

// buildFixture assembles a minimal, internally-consistent map data block:
// a four-entry global entry table whose first entry is relocatable and whose
// other entries are zero, a single script
// section (an address table entry followed by two "return" instructions),
// a one-glyph Kanji bitmap, an empty (zero-length) native code trailer, and
// a marker byte at the start of the graphics region to confirm it survives
// a rewrite untouched.
func buildFixture(t *testing.T) []byte {
	t.Helper()

	const (
		entryTableStart = 0x88
		script1Start    = 0x90
		firstInstrOff   = 0x92
		script1End      = 0x94 // two 1-byte "return" instructions after the addr table
		kanjiStart      = 0x98
		kanjiEnd        = kanjiStart + 22
	)

	data := make([]byte, gfxStart+16)

	firstInstrAddr := script.OffsetToAddr(firstInstrOff, script.MapBasePointer)

	// Global entry table: one entry referencing the script's first instruction.
	binary.LittleEndian.PutUint16(data[entryTableStart:], firstInstrAddr)
	binary.LittleEndian.PutUint16(data[entryTableStart+2:], 0)
	binary.LittleEndian.PutUint16(data[entryTableStart+4:], 0)
	binary.LittleEndian.PutUint16(data[entryTableStart+6:], 0)

	// Script1: address table entry, then two "return" (opcode 0x00) instructions.
	binary.LittleEndian.PutUint16(data[script1Start:], firstInstrAddr)
	data[firstInstrOff] = 0x00
	data[firstInstrOff+1] = 0x00

	// Bogus self-pointer word before the next section: its value is the
	// offset of the word itself, matching what SetScripts later writes.
	binary.LittleEndian.PutUint32(data[script1End:], script.OffsetToPointer(script1End))

	// Kanji bitmap: one all-zero glyph.
	for i := kanjiStart; i < kanjiEnd; i++ {
		data[i] = 0
	}

	// Native code trailer is zero-length in this fixture: section 10 points
	// at the code end (kanjiEnd), past the music table pointer (kanjiStart),
	// and the executable header's end-of-code field matches.
	binary.LittleEndian.PutUint32(data[0x0c:], uint32(kanjiEnd))

	// Pointer table.
	setPointer := func(section int, offset int) {
		off := pointerTableOffset + section*4
		binary.LittleEndian.PutUint32(data[off:], script.OffsetToPointer(offset))
	}
	setPointer(SectionEntry, entryTableStart)
	setPointer(SectionScript1, script1Start)
	// SectionScript2, SectionFlag: left at zero (absent).
	setPointer(10, kanjiEnd)
	setPointer(SectionKanji, kanjiStart)
	setPointer(SectionMusicTable, kanjiStart) // must be < section 10's pointer to take the direct path
	// SectionMusicData: left at zero (unused by this fixture).

	// Marker at the start of the graphics region, to confirm SetScripts
	// leaves it untouched.
	copy(data[gfxStart:], []byte("GFXDATA!"))

	return data
}

func TestNewParsesSectionBoundaries(t *testing.T) {
	raw := buildFixture(t)

	m, err := New(raw, 1, version.US)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries := m.GetGlobalEntries()
	if len(entries) != 4 {
		t.Fatalf("GetGlobalEntries() len = %d, want 4", len(entries))
	}
	wantFirst := script.OffsetToAddr(0x92, script.MapBasePointer)
	if entries[0] != wantFirst {
		t.Errorf("GetGlobalEntries()[0] = %04x, want %04x", entries[0], wantFirst)
	}

	script1, err := m.GetScript1()
	if err != nil {
		t.Fatalf("GetScript1() error = %v", err)
	}
	if len(script1) != 3 {
		t.Fatalf("GetScript1() len = %d, want 3 (1 entry + 2 returns)", len(script1))
	}
	if script1[0].Op != script.OpEntry {
		t.Errorf("script1[0].Op = %v, want OpEntry", script1[0].Op)
	}
	if script1[1].Op != script.OpReturn || script1[2].Op != script.OpReturn {
		t.Errorf("script1[1:] ops = %v, %v, want OpReturn, OpReturn", script1[1].Op, script1[2].Op)
	}

	if script2, err := m.GetScript2(); err != nil || script2 != nil {
		t.Errorf("GetScript2() = %v, %v, want nil, nil (map has no second script section)", script2, err)
	}
}

func TestSetScriptsRoundTripIsIdempotent(t *testing.T) {
	raw := buildFixture(t)

	m, err := New(raw, 1, version.US)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	script1, err := m.GetScript1()
	if err != nil {
		t.Fatalf("GetScript1() error = %v", err)
	}

	before := m.Data()

	if err := m.SetScripts(script1, nil, nil, nil); err != nil {
		t.Fatalf("SetScripts() error = %v", err)
	}

	after := m.Data()

	if len(before) != len(after) {
		t.Fatalf("data length changed: %d -> %d", len(before), len(after))
	}
	if !bytes.Equal(before[:gfxStart], after[:gfxStart]) {
		t.Errorf("map data before graphics boundary changed on a no-op rewrite")
	}
	if !bytes.Equal(after[gfxStart:gfxStart+8], []byte("GFXDATA!")) {
		t.Errorf("graphics marker not preserved across SetScripts")
	}

	// Re-extracting the script from the rewritten data should reproduce
	// the same instruction sequence.
	script1Again, err := m.GetScript1()
	if err != nil {
		t.Fatalf("GetScript1() after SetScripts error = %v", err)
	}
	if len(script1Again) != len(script1) {
		t.Fatalf("re-extracted script length = %d, want %d", len(script1Again), len(script1))
	}
	for i := range script1 {
		if script1Again[i].Op != script1[i].Op || script1Again[i].Addr != script1[i].Addr {
			t.Errorf("instruction %d changed: got {%v %04x}, want {%v %04x}",
				i, script1Again[i].Op, script1Again[i].Addr, script1[i].Op, script1[i].Addr)
		}
	}
}

func TestGetCodeStringsEmptyScheduleReturnsNil(t *testing.T) {
	raw := buildFixture(t)

	m, err := New(raw, 42, version.US)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	strs, err := m.GetCodeStrings(nil)
	if err != nil {
		t.Fatalf("GetCodeStrings() error = %v", err)
	}
	if strs != nil {
		t.Errorf("GetCodeStrings() = %v, want nil for a map with no schedule entry", strs)
	}
}
