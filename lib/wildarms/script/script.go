// Package script disassembles and reassembles the game's bytecode: a small
// stack-free instruction set operating on script variables/flags, plus a
// recursive prefix expression mini-language used by conditional and
// assignment instructions.
//
// Terminology: a "pointer" is a 32-bit PS1 memory address; a map data block
// is loaded at MapBasePointer. An "address" is the lower 16 bits of a
// pointer — how script code refers to positions within itself (e.g. jump
// targets). An "offset" is a byte position relative to the start of the map
// data block.
package script

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wildarms/toolkit/lib/wildarms/text"
	"github.com/wildarms/toolkit/lib/wildarms/version"
)

const (
	// MapBasePointer is the address a map data block is loaded at in memory.
	MapBasePointer uint32 = 0x8014f000
	// MapGfxPointer is the address the map's graphics data is loaded at.
	MapGfxPointer uint32 = 0x80164000
)

// ErrReservedCallTarget is returned by FixupScript when relocating a CALL
// instruction's target address would collide with the 0xFFFE sentinel
// address, which the interpreter reserves and can never be a real target.
var ErrReservedCallTarget = errors.New("script: CALL target relocated to reserved address 0xfffe")

// PointerToOffset converts a 32-bit memory pointer to a map-data-relative byte offset.
func PointerToOffset(p uint32) int {
	return int(p) - int(MapBasePointer)
}

// OffsetToPointer converts a map-data-relative byte offset to a 32-bit memory pointer.
func OffsetToPointer(offset int) uint32 {
	return uint32(offset) + MapBasePointer
}

// OffsetToAddr converts an offset to the 16-bit address scripts use to reference it.
func OffsetToAddr(offset int, basePointer uint32) uint16 {
	return uint16((uint32(offset) + basePointer) & 0xffff)
}

// AddrToOffset converts a script address back to a map-data-relative offset.
func AddrToOffset(addr uint16) int {
	return int((uint32(addr) - MapBasePointer) & 0xffff)
}

// exOpcodes names the operator/operand kind for each expression opcode byte.
// Entries left blank are unused slots between the named ranges, except op
// 0x10 (a signed 16-bit immediate), which parseExpression special-cases. The
// other blank slots are parsed like their neighbours and render with an
// empty name: 0x0f as a binary operator, 0x16..0x1f as indexed operands.
var exOpcodes = [...]string{
	"==", "!=", ">", ">=", "<", "<=", "&", "|", "^", "== 0",
	"+", "-", "*", "/", "%", "", "",
	"result",     // result of last assignment or instruction
	"rand",       // random value between 0 and 32767
	"var",        // script variable
	"flag",       // game flag (flags -1/-2 come from actor data in the map)
	"addr",       // script address, used for referencing string literals
	"", "", "", "", "", "", "", "", "", "",
	"party_size", // number of members in party
	"gold",       // acquired gella
	"party",      // party member (-1 = add member to party, -2 = remove member from party)
	"level",      // character level
	"exp",        // character EXP
	"status",     // character status
	"inventory",  // inventory item (-1 = add, -2 = remove)
	"spell",      // learned spell (-1 = add, -2 = remove)
	"arm",        // acquired ARM (-1 = add, -2 = remove)
	"fast_draw",  // learned Fast Draw (-1 = add, -2 = remove)
	"tool",       // acquired tool (-1 = add, -2 = remove)
}

// parseExpression parses and disassembles a recursive prefix expression
// starting at offset, returning its length in bytes and its disassembled
// text. reloc accumulates the offsets (absolute into data) of any embedded
// script-address operands, for later relocation.
func parseExpression(data []byte, offset int, reloc *[]int, assignment bool) (int, string, error) {
	if offset >= len(data) {
		return 0, "", fmt.Errorf("script: expression runs past end of data at offset %d", offset)
	}

	op := data[offset]
	length := 1

	if int(op) >= len(exOpcodes) {
		return 0, "", fmt.Errorf("script: unknown expression opcode 0x%02x at offset %d", op, offset)
	}
	opStr := exOpcodes[op]

	switch {
	case op == 0x09:
		lhsLen, lhsStr, err := parseExpression(data, offset+1, reloc, false)
		if err != nil {
			return 0, "", err
		}
		length += lhsLen
		return length, "(" + lhsStr + " " + opStr + ")", nil

	case op < 0x10:
		lhsLen, lhsStr, err := parseExpression(data, offset+1, reloc, false)
		if err != nil {
			return 0, "", err
		}
		rhsLen, rhsStr, err := parseExpression(data, offset+1+lhsLen, reloc, false)
		if err != nil {
			return 0, "", err
		}
		length += lhsLen + rhsLen
		return length, "(" + lhsStr + " " + opStr + " " + rhsStr + ")", nil

	case op == 0x10:
		if offset+3 > len(data) {
			return 0, "", fmt.Errorf("script: immediate value runs past end of data at offset %d", offset)
		}
		v := int16(binary.LittleEndian.Uint16(data[offset+1 : offset+3]))
		length += 2
		return length, strconv.Itoa(int(v)), nil

	case op == 0x15:
		if offset+3 > len(data) {
			return 0, "", fmt.Errorf("script: address operand runs past end of data at offset %d", offset)
		}
		*reloc = append(*reloc, offset+1)
		v := binary.LittleEndian.Uint16(data[offset+1 : offset+3])
		length += 2
		return length, fmt.Sprintf("(addr %04x)", v), nil

	case op == 0x12 || op == 0x20:
		return length, opStr, nil

	case op == 0x11 || op == 0x21:
		str := opStr
		if assignment {
			lhsLen, lhsStr, err := parseExpression(data, offset+1, reloc, false)
			if err != nil {
				return 0, "", err
			}
			length += lhsLen
			str += " = " + lhsStr
		}
		return length, str, nil

	default:
		rhsLen, rhsStr, err := parseExpression(data, offset+1, reloc, false)
		if err != nil {
			return 0, "", err
		}
		length += rhsLen
		str := opStr + "[" + rhsStr + "]"

		if assignment {
			lhsLen, lhsStr, err := parseExpression(data, offset+1+rhsLen, reloc, false)
			if err != nil {
				return 0, "", err
			}
			length += lhsLen
			str += " = " + lhsStr
		}
		return length, str, nil
	}
}

// Op identifies a script instruction, either a real bytecode opcode or one
// of three pseudo-ops synthesized during disassembly.
type Op int

const (
	OpReturn   Op = 0x00
	OpCall     Op = 0x01
	OpWindow   Op = 0x03
	OpClose    Op = 0x04
	OpMessage  Op = 0x06
	OpAssign   Op = 0x08
	OpJump     Op = 0x09
	OpBreak    Op = 0x0a
	OpIf       Op = 0x0b
	OpWhile    Op = 0x0c
	OpWait     Op = 0x0e
	OpShow     Op = 0x0f
	OpHide     Op = 0x10
	OpAnim     Op = 0x12
	OpMove     Op = 0x13
	OpVfx      Op = 0x14
	OpBattle   Op = 0x15
	OpMenu     Op = 0x16
	OpMapfunc  Op = 0x17
	OpExec     Op = 0x18
	OpSound    Op = 0x21
	OpMusic    Op = 0x22
	OpEnding   Op = 0x24
	OpGameover Op = 0x27

	// OpEntry is a pseudo-op for one entry of a script's address table.
	OpEntry Op = 0x100
	// OpString is a pseudo-op for a string literal embedded in code.
	OpString Op = 0x101
	// OpPtr is a pseudo-op for a bogus self-referencing linker pointer.
	OpPtr Op = 0x102
)

type opcodeInfo struct {
	length   int
	mnemonic string
}

// opcodes is indexed directly by the instruction's opcode byte (0x00-0x28).
var opcodes = [...]opcodeInfo{
	{1, "return"},
	{3, "call"},
	{1, "halt"},
	{2, "window"},  // variable length
	{1, "close"},
	{1, "{0x05}"},  // unused
	{1, "message"}, // variable length
	{1, "{0x07}"},  // unused
	{1, "let"},     // contains expression
	{3, "jump"},
	{3, "break"},
	{1, "if"},    // contains expression
	{1, "while"}, // contains expression
	{7, "{0x0d}"}, // variable length
	{3, "wait"},  // variable length
	{3, "show"},
	{3, "hide"},
	{12, "{0x11}"},
	{6, "anim"},
	{5, "move"}, // variable length
	{2, "vfx"},  // variable length
	{8, "battle"},
	{2, "menu"}, // variable length
	{2, "mapfunc"},
	{5, "exec"},
	{4, "{0x19}"}, // variable length
	{2, "{0x1a}"}, // variable length
	{12, "{0x1b}"},
	{4, "{0x1c}"},
	{4, "{0x1d}"}, // variable length
	{7, "{0x1e}"},
	{4, "{0x1f}"}, // variable length
	{11, "{0x20}"},
	{4, "sound"},
	{4, "music"},
	{3, "{0x23}"}, // variable length
	{1, "ending"},
	{6, "{0x25}"},
	{1, "nop"},
	{1, "gameover"},
	{3, "{0x28}"},
}

// Instruction is one decoded script instruction (or pseudo-op).
type Instruction struct {
	Op     Op
	Length int
	Addr   uint16
	Bytes  []byte
	Disass string
	// Reloc lists offsets (relative to the start of the instruction) of
	// relocatable script addresses within Bytes.
	Reloc []int
}

// GetText returns the text of a MESSAGE or STRING instruction, still
// encoded in the game character set and null-terminated.
func (instr *Instruction) GetText() ([]byte, error) {
	switch instr.Op {
	case OpMessage:
		return instr.Bytes[1:], nil
	case OpString:
		return instr.Bytes, nil
	default:
		return nil, fmt.Errorf("script: GetText called for instruction %q", instr.Disass)
	}
}

// SetText replaces the text of a MESSAGE or STRING instruction. text must
// already be encoded in the game character set and null-terminated.
func (instr *Instruction) SetText(text []byte) error {
	switch instr.Op {
	case OpMessage:
		instr.Bytes = append([]byte{byte(OpMessage)}, text...)
		instr.Length = len(instr.Bytes)
		instr.Disass = "message"
	case OpString:
		instr.Bytes = append([]byte(nil), text...)
		instr.Length = len(instr.Bytes)
		instr.Disass = "string"
	default:
		return fmt.Errorf("script: SetText called for instruction %q", instr.Disass)
	}
	return nil
}

// Relocate rewrites every relocatable address operand in the instruction
// according to addrMap (old address -> new address).
func (instr *Instruction) Relocate(addrMap map[uint16]uint16) error {
	for _, offset := range instr.Reloc {
		oldAddr := binary.LittleEndian.Uint16(instr.Bytes[offset : offset+2])
		newAddr, ok := addrMap[oldAddr]
		if !ok {
			return fmt.Errorf("script: no relocation entry for address %04x referenced at %04x", oldAddr, instr.Addr)
		}

		if instr.Op == OpCall && newAddr == 0xfffe {
			return fmt.Errorf("%w: instruction at %04x", ErrReservedCallTarget, instr.Addr)
		}

		binary.LittleEndian.PutUint16(instr.Bytes[offset:offset+2], newAddr)
	}
	return nil
}

func indexByteFrom(data []byte, start int, b byte) (int, error) {
	if start > len(data) {
		return -1, fmt.Errorf("script: search start %d past end of data", start)
	}
	idx := bytes.IndexByte(data[start:], b)
	if idx < 0 {
		return -1, fmt.Errorf("script: byte 0x%02x not found from offset %d", b, start)
	}
	return start + idx, nil
}

func hexJoin(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("0x%x", b)
	}
	return strings.Join(parts, " ")
}

// ParseInstruction decodes one instruction (or pseudo-op) at offset in data.
func ParseInstruction(data []byte, offset int, v version.Version, basePointer uint32, kanjiBitmap []byte) (*Instruction, error) {
	if offset >= len(data) {
		return nil, fmt.Errorf("script: offset %d past end of data", offset)
	}
	op := data[offset]

	var p uint32
	if offset+4 <= len(data) {
		p = binary.LittleEndian.Uint32(data[offset : offset+4])
	}

	// The linker used to build the game has a habit of inserting pointers to
	// the current location in some places. Recognize and skip these.
	if offset%4 == 0 && offset+4 <= len(data) && p == uint32(offset)+0x8014f000 {
		return &Instruction{
			Op:     OpPtr,
			Length: 4,
			Addr:   OffsetToAddr(offset, basePointer),
			Bytes:  append([]byte(nil), data[offset:offset+4]...),
			Disass: "<PTR>",
		}, nil
	}

	// Heuristic for detecting string literals embedded within the code. A
	// more solid way would be full control flow analysis, or tracking the
	// "addr" expression opcodes that reference these strings.
	looksLikeString := op == 0x05 || op > 0x28 || p == 0x20202020 ||
		(op == 0x11 && offset+3 <= len(data) && data[offset+2] != 0x00 && data[offset+2] != 0xff)

	if looksLikeString {
		end, err := indexByteFrom(data, offset, 0x00)
		if err != nil {
			return nil, err
		}
		length := end - offset + 1
		t, err := text.Decode(data[offset:end], v, text.OriginalCharset, kanjiBitmap)
		if err != nil {
			return nil, fmt.Errorf("script: decoding embedded string at offset %d: %w", offset, err)
		}
		return &Instruction{
			Op:     OpString,
			Length: length,
			Addr:   OffsetToAddr(offset, basePointer),
			Bytes:  append([]byte(nil), data[offset:end+1]...),
			Disass: "string " + t,
		}, nil
	}

	if int(op) >= len(opcodes) {
		return nil, fmt.Errorf("script: opcode 0x%02x out of range at offset %d", op, offset)
	}
	length := opcodes[op].length
	disass := opcodes[op].mnemonic
	var reloc []int

	switch Op(op) {
	case OpMessage:
		end, err := indexByteFrom(data, offset, 0x00)
		if err != nil {
			return nil, err
		}
		t, err := text.Decode(data[offset+1:end], v, text.OriginalCharset, kanjiBitmap)
		if err != nil {
			return nil, err
		}
		disass += " " + t
		length = end - offset + 1

	case OpCall, OpJump, OpBreak:
		addr := binary.LittleEndian.Uint16(data[offset+1 : offset+3])
		disass += fmt.Sprintf(" %04x", addr)
		if Op(op) != OpCall || addr != 0xfffe {
			reloc = append(reloc, 1)
		}

	case OpWindow:
		sel := data[offset+1]
		disass += fmt.Sprintf(" %d", sel)
		if sel == 3 {
			var param [5]uint16
			for i := range param {
				param[i] = binary.LittleEndian.Uint16(data[offset+2+i*2 : offset+4+i*2])
			}
			disass += fmt.Sprintf(" type %d, x/y = (%d, %d), w/h = (%d, %d)", param[0], param[1], param[2], param[3], param[4])
			length += 10
		}

	case OpAssign:
		var exReloc []int
		exLen, exStr, err := parseExpression(data, offset+1, &exReloc, true)
		if err != nil {
			return nil, err
		}
		for _, x := range exReloc {
			reloc = append(reloc, x-offset)
		}
		disass += " " + exStr
		length += exLen

	case OpIf, OpWhile:
		var exReloc []int
		exLen, exStr, err := parseExpression(data, offset+1, &exReloc, false)
		if err != nil {
			return nil, err
		}
		for _, x := range exReloc {
			reloc = append(reloc, x-offset)
		}
		reloc = append(reloc, 1+exLen)
		addr := binary.LittleEndian.Uint16(data[offset+1+exLen : offset+3+exLen])
		disass += " " + exStr + fmt.Sprintf(": (else jump %04x)", addr)
		length += exLen + 2

	case Op(0x0d):
		sel := data[offset+1]
		if sel == 0xfc || sel == 0xfd || sel == 0xfe {
			length++
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	case OpWait:
		sel := binary.LittleEndian.Uint16(data[offset+1 : offset+3])
		if sel == 0xfff2 || sel == 0xfff3 || sel == 0xfff9 || sel == 0xfffc {
			length += 2
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	case OpMove:
		end := offset + 3
		for data[end] != 0xfe && data[end] != 0xff {
			end++
		}
		length = end - offset + 1
		disass += " " + hexJoin(data[offset+1:offset+length])

	case OpVfx:
		sel := data[offset+1]
		switch sel {
		case 0xf1:
			length += 5
		case 0xf4, 0xfd:
			length += 6
		case 0xf5, 0xf6:
			length += 3
		case 0xfb:
			length += 2
		case 0xff:
			length += 8
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	case OpMenu:
		sel := data[offset+1]
		disass += fmt.Sprintf(" 0x%x", sel)

		switch sel {
		case 0x01:
			disass += " (memory card)"
		case 0x02:
			disass += " (name entry)"
			length += 2
		case 0x03:
			disass += " (buy)"
			end, err := indexByteFrom(data, offset, 0xff)
			if err != nil {
				return nil, err
			}
			length += end - offset - 1
		case 0x04:
			disass += " (sell)"
		case 0x07:
			disass += " (upgrade)"
		case 0x08:
			disass += " (create magic)"
			length++
		case 0x09:
			disass += " (load/save)"
			length++
		case 0x0a:
			disass += " (reload)"
		case 0x0e:
			disass += " (trial results)"
		case 0xff:
			disass += " (change)"
		}

		if length > 2 {
			disass += " " + hexJoin(data[offset+2:offset+length])
		}

	case OpExec:
		p := binary.LittleEndian.Uint32(data[offset+1 : offset+5])
		disass += fmt.Sprintf(" %08x", p)

	case Op(0x19), Op(0x1d):
		sel := data[offset+3]
		if sel == 0xff {
			length += 3
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	case Op(0x1a):
		sel := data[offset+1]
		if sel == 0xfe || sel == 0xff {
			idx := bytes.Index(data[offset+2:], []byte{0xff, 0xff})
			if idx < 0 {
				return nil, fmt.Errorf("script: terminator 0xffff not found from offset %d", offset+2)
			}
			end := offset + 2 + idx
			length = end - offset + 2
		} else {
			end, err := indexByteFrom(data, offset+2, 0xff)
			if err != nil {
				return nil, err
			}
			length = end - offset + 1
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	case Op(0x1f):
		sel := data[offset+1]
		if sel != 0 {
			length += 10
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	case Op(0x23):
		sel := data[offset+2]
		if sel < 0x80 {
			length += 6
		}
		disass += " " + hexJoin(data[offset+1:offset+length])

	default:
		if length > 1 {
			disass += " " + hexJoin(data[offset+1:offset+length])
		}
	}

	if offset+length > len(data) {
		return nil, fmt.Errorf("script: instruction at offset %d (opcode 0x%02x) runs past end of data", offset, op)
	}

	return &Instruction{
		Op:     Op(op),
		Length: length,
		Addr:   OffsetToAddr(offset, basePointer),
		Bytes:  append([]byte(nil), data[offset:offset+length]...),
		Disass: disass,
		Reloc:  reloc,
	}, nil
}

// RecalcScriptAddr reassigns every instruction's Addr starting at startAddr
// and returns a map from each instruction's old address to its new one.
func RecalcScriptAddr(script []*Instruction, startAddr uint16) map[uint16]uint16 {
	addrMap := make(map[uint16]uint16, len(script))
	newAddr := startAddr

	for _, instr := range script {
		oldAddr := instr.Addr
		instr.Addr = newAddr
		addrMap[oldAddr] = newAddr
		newAddr = uint16((uint32(newAddr) + uint32(instr.Length)) & 0xffff)
	}

	return addrMap
}

// FixupScript relocates the address operands of every instruction in script
// according to addrMap.
func FixupScript(script []*Instruction, addrMap map[uint16]uint16) error {
	for _, instr := range script {
		if err := instr.Relocate(addrMap); err != nil {
			return err
		}
	}
	return nil
}

// GetScriptData concatenates the raw bytes of every instruction in script.
func GetScriptData(script []*Instruction) []byte {
	var data []byte
	for _, instr := range script {
		data = append(data, instr.Bytes...)
	}
	return data
}

// Align4 pads data with zero bytes to the next 4-byte boundary.
func Align4(data []byte) []byte {
	if rem := len(data) % 4; rem != 0 {
		return append(data, make([]byte, 4-rem)...)
	}
	return data
}
