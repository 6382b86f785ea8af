package script

import (
	"testing"

	"github.com/wildarms/toolkit/lib/wildarms/version"
)

func TestParseInstructionReturn(t *testing.T) {
	data := []byte{0x00}

	instr, err := ParseInstruction(data, 0, version.US, MapBasePointer, nil)
	if err != nil {
		t.Fatalf("ParseInstruction() error = %v", err)
	}

	if instr.Op != OpReturn {
		t.Errorf("Op = %v, want OpReturn", instr.Op)
	}
	if instr.Length != 1 {
		t.Errorf("Length = %d, want 1", instr.Length)
	}
	if instr.Disass != "return" {
		t.Errorf("Disass = %q, want %q", instr.Disass, "return")
	}
}

func TestParseInstructionJump(t *testing.T) {
	data := []byte{0x09, 0x34, 0x12}

	instr, err := ParseInstruction(data, 0, version.US, MapBasePointer, nil)
	if err != nil {
		t.Fatalf("ParseInstruction() error = %v", err)
	}

	if instr.Disass != "jump 1234" {
		t.Errorf("Disass = %q, want %q", instr.Disass, "jump 1234")
	}
	if len(instr.Reloc) != 1 || instr.Reloc[0] != 1 {
		t.Errorf("Reloc = %v, want [1]", instr.Reloc)
	}
}

func TestParseInstructionAssignExpression(t *testing.T) {
	// ASSIGN opcode, then expression "result = 5": op 0x11 (assignable
	// "result" variable) followed by immediate value op 0x10 with value 5.
	data := []byte{0x08, 0x11, 0x10, 0x05, 0x00}

	instr, err := ParseInstruction(data, 0, version.US, MapBasePointer, nil)
	if err != nil {
		t.Fatalf("ParseInstruction() error = %v", err)
	}

	want := "let result = 5"
	if instr.Disass != want {
		t.Errorf("Disass = %q, want %q", instr.Disass, want)
	}
	if instr.Length != len(data) {
		t.Errorf("Length = %d, want %d", instr.Length, len(data))
	}
}

func TestParseInstructionIfExpression(t *testing.T) {
	// IF opcode, expression "1" (immediate), else-jump address 0x0020.
	data := []byte{0x0b, 0x10, 0x01, 0x00, 0x20, 0x00}

	instr, err := ParseInstruction(data, 0, version.US, MapBasePointer, nil)
	if err != nil {
		t.Fatalf("ParseInstruction() error = %v", err)
	}

	want := "if 1: (else jump 0020)"
	if instr.Disass != want {
		t.Errorf("Disass = %q, want %q", instr.Disass, want)
	}
	// reloc must include both the jump target and the expression's addr
	// operand, if any; here only the final else-jump address (offset 4).
	if len(instr.Reloc) != 1 || instr.Reloc[0] != 4 {
		t.Errorf("Reloc = %v, want [4]", instr.Reloc)
	}
}

func TestParseInstructionEmbeddedStringHeuristic(t *testing.T) {
	// Opcode 0x05 is unused and always treated as the start of an embedded
	// string literal. The 0x05 byte itself is part of the string, where it
	// is the CHAR control code taking 'H' as its argument.
	data := append([]byte{0x05}, []byte("Hi!")...)
	data = append(data, 0x00)

	instr, err := ParseInstruction(data, 0, version.US, MapBasePointer, nil)
	if err != nil {
		t.Fatalf("ParseInstruction() error = %v", err)
	}

	if instr.Op != OpString {
		t.Errorf("Op = %v, want OpString", instr.Op)
	}
	want := "string {CHAR H}i!"
	if instr.Disass != want {
		t.Errorf("Disass = %q, want %q", instr.Disass, want)
	}
}

func TestRecalcScriptAddrAndFixupScript(t *testing.T) {
	script := []*Instruction{
		{Op: OpReturn, Length: 1, Addr: 0x0000, Bytes: []byte{0x00}},
		{Op: OpJump, Length: 3, Addr: 0x0001, Bytes: []byte{0x09, 0x00, 0x00}, Reloc: []int{1}},
	}
	// The jump instruction targets address 0x0000, i.e. the first instruction.
	script[1].Bytes[1] = 0x00
	script[1].Bytes[2] = 0x00

	addrMap := RecalcScriptAddr(script, 0x1000)

	if script[0].Addr != 0x1000 {
		t.Errorf("script[0].Addr = %04x, want 1000", script[0].Addr)
	}
	if script[1].Addr != 0x1001 {
		t.Errorf("script[1].Addr = %04x, want 1001", script[1].Addr)
	}

	if err := FixupScript(script, addrMap); err != nil {
		t.Fatalf("FixupScript() error = %v", err)
	}

	got := uint16(script[1].Bytes[1]) | uint16(script[1].Bytes[2])<<8
	if got != 0x1000 {
		t.Errorf("relocated jump target = %04x, want 1000", got)
	}
}

func TestAlign4(t *testing.T) {
	tests := []struct {
		in   []byte
		want int
	}{
		{[]byte{1, 2, 3}, 4},
		{[]byte{1, 2, 3, 4}, 4},
		{[]byte{1}, 4},
		{[]byte{}, 0},
	}

	for _, tt := range tests {
		got := Align4(tt.in)
		if len(got) != tt.want {
			t.Errorf("Align4(%v) length = %d, want %d", tt.in, len(got), tt.want)
		}
	}
}
