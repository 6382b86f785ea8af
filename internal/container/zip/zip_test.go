package zip

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func buildTestZip(t *testing.T, files map[string][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, data := range files {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			t.Fatalf("Write(%s): %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip Close: %v", err)
	}

	return path
}

func TestZIPArchiveEntries(t *testing.T) {
	path := buildTestZip(t, map[string][]byte{
		"SYSTEM.CNF":     []byte("BOOT = cdrom:\\EXE\\SCUS_946.08;1\r\n"),
		"EXE/WILDARMS.EXE": []byte("executable contents"),
	})

	archive, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer archive.Close()

	entries := archive.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(entries))
	}
}

func TestZIPArchiveOpenFile(t *testing.T) {
	want := "BOOT = cdrom:\\EXE\\SCUS_946.08;1\r\n"
	path := buildTestZip(t, map[string][]byte{
		"SYSTEM.CNF": []byte(want),
	})

	archive, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer archive.Close()

	rc, err := archive.OpenFile("SYSTEM.CNF")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != want {
		t.Errorf("OpenFile content = %q, want %q", got, want)
	}
}

func TestZIPArchiveOpenFileAtRandomAccess(t *testing.T) {
	data := make([]byte, 0x10000+25)
	copy(data[0x10000:], []byte("MICROSOFT*XBOX*MEDIA"))

	path := buildTestZip(t, map[string][]byte{
		"image.iso": data,
	})

	archive, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer archive.Close()

	reader, size, err := archive.OpenFileAt("image.iso")
	if err != nil {
		t.Fatalf("OpenFileAt() error = %v", err)
	}
	defer reader.Close()

	if size != int64(len(data)) {
		t.Errorf("size = %d, want %d", size, len(data))
	}

	magic := make([]byte, 20)
	if _, err := reader.ReadAt(magic, 0x10000); err != nil && err != io.EOF {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if string(magic) != "MICROSOFT*XBOX*MEDIA" {
		t.Errorf("ReadAt() = %q, want magic string", magic)
	}
}

func TestZIPArchiveOpenFileNotFound(t *testing.T) {
	path := buildTestZip(t, map[string][]byte{"a.txt": []byte("x")})

	archive, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer archive.Close()

	if _, err := archive.OpenFile("missing.txt"); err == nil {
		t.Fatal("expected error opening missing file")
	}
}
