package data

import (
	"testing"

	"github.com/wildarms/toolkit/lib/wildarms/version"
)

func TestExecStringDataSelectsByVersion(t *testing.T) {
	if got := len(ExecStringData(version.JP1)); got != len(execStringDataJP) {
		t.Errorf("ExecStringData(JP1) len = %d, want %d", got, len(execStringDataJP))
	}
	if got := len(ExecStringData(version.US)); got != len(execStringDataUS) {
		t.Errorf("ExecStringData(US) len = %d, want %d", got, len(execStringDataUS))
	}
	if got := ExecStringData(version.FR); got != nil {
		t.Errorf("ExecStringData(FR) = %v, want nil (no FR schedule)", got)
	}
}

func TestExecStringData2DistinguishesJapanesePressings(t *testing.T) {
	jp1 := ExecStringData2(version.JP1)
	jp2 := ExecStringData2(version.JP2)
	if len(jp1) != len(jp2) {
		t.Fatalf("JP1/JP2 exec string table lengths differ: %d vs %d", len(jp1), len(jp2))
	}
	if jp1[5].Offset == jp2[5].Offset {
		t.Errorf("expected JP1 and JP2 miss.txt offsets to differ, both = %#x", jp1[5].Offset)
	}
}

func TestMapNameTableOffsetMatchesExecStringData(t *testing.T) {
	for _, v := range []version.Version{version.JP1, version.US, version.EN, version.DE, version.ES} {
		off, ok := MapNameTableOffset(v)
		if !ok {
			t.Fatalf("MapNameTableOffset(%s) not found", v)
		}
		entries := ExecStringData(v)
		var found bool
		for _, e := range entries {
			if e.TableOffset == off && e.TransFileName == "map_name.txt" {
				found = true
			}
		}
		if !found {
			t.Errorf("MapNameTableOffset(%s) = %#x doesn't match map_name.txt entry in ExecStringData", v, off)
		}
	}
}

func TestMapStringDataSelectsJapaneseVsInternational(t *testing.T) {
	jp := MapStringData(version.JP1)
	intl := MapStringData(version.US)

	if len(jp[5]) != len(intl[5]) {
		t.Fatalf("map 5 string span count differs: JP %d, INT %d", len(jp[5]), len(intl[5]))
	}
	if jp[5][0].MaxSize == intl[5][0].MaxSize {
		t.Errorf("expected JP and international map 5 string span sizes to differ")
	}
}

func TestExecScriptDataUnsupportedVersion(t *testing.T) {
	if _, ok := ExecScriptData(version.FR); ok {
		t.Errorf("ExecScriptData(FR) reported found, want not found")
	}
}

func TestTextureDataLastSectionSizeSentinel(t *testing.T) {
	for _, f := range TextureData() {
		if f.FileName == "SY0.BIN" && f.LastSectionSize != -1 {
			t.Errorf("SY0.BIN LastSectionSize = %d, want -1 (read to EOF)", f.LastSectionSize)
		}
		if f.FileName == "UT0.BIN" && f.LastSectionSize != 0x200 {
			t.Errorf("UT0.BIN LastSectionSize = %#x, want 0x200", f.LastSectionSize)
		}
	}
}
