package text

import (
	"bytes"
	"testing"

	"github.com/wildarms/toolkit/lib/wildarms/version"
)

func TestDecodeINTControlCode(t *testing.T) {
	data := []byte{'H', 'i', '!', 0x0d, 0x00}

	got, err := Decode(data, version.US, OriginalCharset, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := "Hi!{CR}"
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestEncodeINTControlCode(t *testing.T) {
	got, err := Encode("Hi!{CR}", version.US, OriginalCharset)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := []byte{'H', 'i', '!', 0x0d, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % x, want % x", got, want)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", "Hello, world!"},
		{"control codes", "{LARGE}Big{SMALL}small{CR}"},
		{"numeric arg", "Wait {WAIT 60}"},
		{"ask", "{ASK 3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.text, version.US, OriginalCharset)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded, err := Decode(encoded, version.US, OriginalCharset, nil)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if decoded != tt.text {
				t.Errorf("round trip mismatch: got %q, want %q", decoded, tt.text)
			}
		})
	}
}

func TestEncodeUnknownCommand(t *testing.T) {
	_, err := Encode("{BOGUS}", version.US, OriginalCharset)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestEncodeJapaneseUnsupported(t *testing.T) {
	_, err := Encode("hello", version.JP1, OriginalCharset)
	if err == nil {
		t.Fatal("expected error encoding Japanese text")
	}
}

func TestDecodeJPGlobalKanjiTable(t *testing.T) {
	data := []byte{0x88, 0x01, 0x00}

	got, err := DecodeJP(data, nil)
	if err != nil {
		t.Fatalf("DecodeJP() error = %v", err)
	}

	want := "持"
	if got != want {
		t.Errorf("DecodeJP() = %q, want %q", got, want)
	}
}

func TestDecodeJPKatakana(t *testing.T) {
	data := []byte{0xa7, 0x00}

	got, err := DecodeJP(data, nil)
	if err != nil {
		t.Fatalf("DecodeJP() error = %v", err)
	}

	want := "ァ"
	if got != want {
		t.Errorf("DecodeJP() = %q, want %q", got, want)
	}
}

func TestDecodeJPUnknownKanjiHashFallsBackToPlaceholder(t *testing.T) {
	bitmap := make([]byte, 22)
	data := []byte{0x88, 0x01, 0x00}

	got, err := DecodeJP(data, bitmap)
	if err != nil {
		t.Fatalf("DecodeJP() error = %v", err)
	}

	want := "{KANJI 88 01}"
	if got != want {
		t.Errorf("DecodeJP() = %q, want %q", got, want)
	}
}
