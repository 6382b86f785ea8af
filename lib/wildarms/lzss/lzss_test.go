package lzss

import (
	"bytes"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"twenty zero bytes", make([]byte, 20)},
		{"repeating pattern", []byte("ABABABABABAB")},
		{"no repetition", []byte("the quick brown fox jumps over a lazy dog")},
		{"single byte", []byte{0x42}},
		{"long run", bytes.Repeat([]byte{0xaa}, 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed := Compress(tt.data)

			got, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("round trip mismatch: got %v, want %v", got, tt.data)
			}
		})
	}
}

func TestCompressTwentyZeroBytesHeader(t *testing.T) {
	data := make([]byte, 20)

	compressed := Compress(data)

	want := []byte{0x14, 0x00, 0x00, 0x00}
	if !bytes.Equal(compressed[:4], want) {
		t.Errorf("length prefix = % x, want % x", compressed[:4], want)
	}
}

func TestCompressShrinksRepeatedPattern(t *testing.T) {
	data := []byte("ABABABABABAB")

	compressed := Compress(data)

	if len(compressed) >= len(data)+4 {
		t.Errorf("compressed length %d not shorter than input+4 (%d)", len(compressed), len(data)+4)
	}

	got, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch: got %q, want %q", got, data)
	}
}

func TestCompressedSizeMatchesActualConsumption(t *testing.T) {
	data := []byte("hello hello hello hello, this is a test of the dictionary")

	compressed := Compress(data)

	// Append trailing garbage to simulate the block being embedded inside a
	// larger container with no explicit length field of its own.
	withTrailer := append(append([]byte{}, compressed...), 0xff, 0xff, 0xff, 0xff)

	size, err := CompressedSize(withTrailer)
	if err != nil {
		t.Fatalf("CompressedSize() error = %v", err)
	}
	if size != len(compressed) {
		t.Errorf("CompressedSize() = %d, want %d", size, len(compressed))
	}
}

func TestDecompressRejectsShortInput(t *testing.T) {
	_, err := Decompress([]byte{0x01, 0x02})
	if err == nil {
		t.Fatal("expected error for input shorter than the length prefix")
	}
}
