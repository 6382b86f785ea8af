package game

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/wildarms/toolkit/lib/wildarms/version"
)

func writeFile(t *testing.T, dir, subDir, name string, data []byte) {
	t.Helper()
	full := filepath.Join(dir, subDir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func wildarmsExe(byte16 byte) []byte {
	data := make([]byte, 32)
	data[16] = byte16
	return data
}

func TestProbeVersionDirectoryUS(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "", "SYSTEM.CNF", []byte("BOOT = cdrom:\\EXE\\SCUS_946.08;1\r\n"))

	opener, err := NewDirectoryOpener(dir)
	if err != nil {
		t.Fatalf("NewDirectoryOpener() error = %v", err)
	}

	v, exec, err := ProbeVersion(opener)
	if err != nil {
		t.Fatalf("ProbeVersion() error = %v", err)
	}
	if v != version.US {
		t.Errorf("version = %q, want %q", v, version.US)
	}
	if exec != "SCUS_946.08" {
		t.Errorf("execFileName = %q, want SCUS_946.08", exec)
	}
}

func TestProbeVersionDisambiguatesJapanesePressings(t *testing.T) {
	tests := []struct {
		name   string
		byte16 byte
		want   version.Version
	}{
		{"JP1 original pressing", 0x00, version.JP1},
		{"JP2 revised pressing", 0x10, version.JP2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "", "SYSTEM.CNF", []byte("BOOT = cdrom:\\EXE\\SCPS_100.28;1\r\n"))
			writeFile(t, dir, "EXE", "WILDARMS.EXE", wildarmsExe(tt.byte16))

			opener, err := NewDirectoryOpener(dir)
			if err != nil {
				t.Fatalf("NewDirectoryOpener() error = %v", err)
			}

			v, _, err := ProbeVersion(opener)
			if err != nil {
				t.Fatalf("ProbeVersion() error = %v", err)
			}
			if v != tt.want {
				t.Errorf("version = %q, want %q", v, tt.want)
			}
		})
	}
}

func TestProbeVersionUnknownExecReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "", "SYSTEM.CNF", []byte("BOOT = cdrom:\\EXE\\SLUS_000.00;1\r\n"))

	opener, err := NewDirectoryOpener(dir)
	if err != nil {
		t.Fatalf("NewDirectoryOpener() error = %v", err)
	}

	if _, _, err := ProbeVersion(opener); err == nil {
		t.Fatal("expected error for unrecognized exec name")
	}
}

func TestHasFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "EXE", "WILDARMS.EXE", []byte("x"))

	opener, err := NewDirectoryOpener(dir)
	if err != nil {
		t.Fatalf("NewDirectoryOpener() error = %v", err)
	}

	if !opener.HasFile("EXE", "WILDARMS.EXE") {
		t.Error("HasFile(EXE, WILDARMS.EXE) = false, want true")
	}
	if opener.HasFile("EXE", "MISSING.EXE") {
		t.Error("HasFile(EXE, MISSING.EXE) = true, want false")
	}
}

func TestOpenImageDispatchesZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disc.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	w := zip.NewWriter(f)
	entry, err := w.Create("SYSTEM.CNF")
	if err != nil {
		t.Fatalf("Create entry: %v", err)
	}
	if _, err := entry.Write([]byte("BOOT = cdrom:\\EXE\\SCES_003.21;1\r\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip Close: %v", err)
	}
	f.Close()

	opener, err := OpenImage(path)
	if err != nil {
		t.Fatalf("OpenImage() error = %v", err)
	}
	if zo, ok := opener.(*ZipOpener); ok {
		defer zo.Close()
	} else {
		t.Fatalf("OpenImage() returned %T, want *ZipOpener", opener)
	}

	v, _, err := ProbeVersion(opener)
	if err != nil {
		t.Fatalf("ProbeVersion() error = %v", err)
	}
	if v != version.EN {
		t.Errorf("version = %q, want %q", v, version.EN)
	}
}

func TestOpenImageDispatchesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "", "SYSTEM.CNF", []byte("BOOT = cdrom:\\EXE\\SCES_011.72;1\r\n"))

	opener, err := OpenImage(dir)
	if err != nil {
		t.Fatalf("OpenImage() error = %v", err)
	}
	if _, ok := opener.(*DirectoryOpener); !ok {
		t.Fatalf("OpenImage() returned %T, want *DirectoryOpener", opener)
	}
}
