// Package text decodes and encodes the game's in-band text strings: control
// codes for formatting and variable substitution, plus one of several
// single-byte Western charsets or the double-byte Japanese encoding
// (Hiragana/Katakana via Shift-JIS, Kanji via either a global table or a
// per-map bitmap-hash lookup).
package text

import (
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/wildarms/toolkit/lib/wildarms/version"
)

// Charset selects which single-byte Western character table Decode/Encode
// use. The two charsets differ above 0x80 and at 0x40, 0x5e, 0x60 and 0x7e;
// ASCII control codes, digits and letters are identical in both.
type Charset int

const (
	// OriginalCharset mirrors the original game font (a DOS code page 437 variant).
	OriginalCharset Charset = iota
	// AlternativeCharset is for a replacement font (a DOS code page 850 variant).
	AlternativeCharset
)

func (cs Charset) runes() []rune {
	if cs == AlternativeCharset {
		return []rune(altCharsetRunes)
	}
	return []rune(origCharsetRunes)
}

// escapeChars lists characters that must be backslash-escaped when they
// appear as a decoded literal, since they are also used for command/escape
// syntax in the decoded text representation.
const escapeChars = "\\{}"

type controlCode struct {
	argLen int
	name   string
}

// controlCodes is indexed by the raw control byte (0x00-0x1f). Note that the
// byte value assigned to a command is its position in this table, not
// necessarily the value in its historical comment — CLEAR in particular sits
// at 0x0c despite older notes describing it as 0x09.
var controlCodes = [32]controlCode{
	{0, "0x00"},
	{1, "STR"},       // string parameter
	{1, "NUM"},       // signed numeric parameter
	{1, "UNUM"},      // unsigned numeric parameter
	{1, "HEX"},       // hexadecimal parameter
	{1, "CHAR"},      // character name
	{1, "ITEM"},      // item name
	{1, "SPELL"},     // spell name
	{1, "ITEMICON"},  // item icon
	{1, "SPELLICON"}, // spell icon
	{1, "TOOL"},      // tool name
	{1, "TOOLICON"},  // tool icon
	{0, "CLEAR"},     // clear window
	{0, "CR"},        // new line
	{0, "SMALL"},     // switch to regular small (12x12) font (JP only)
	{0, "SCROLL"},    // scroll up 1 line
	{0, "PAUSE"},     // pause until OK button is pressed
	{1, "COLOR"},     // set text color
	{3, "SOUND"},     // play sound effect
	{0, "NOP"},
	{0, "LARGE"}, // switch to large (16x16) font (JP only)
	{2, "SPEED"}, // set text speed
	{2, "WAIT"},  // wait xxxx frames
	{0, "CONTINUE"},
	{0, "XSHADOW"}, // toggle text shadow in X direction
	{0, "YSHADOW"}, // toggle text shadow in Y direction
	{1, "ASK"},      // ask question
	{0, "ASYNC"},    // continue script while message is being displayed
	{0, "0x1c"},
	{0, "0x1d"},
	{0, "0x1e"},
	{0, "0x1f"},
}

var codeOfCommand = buildCodeOfCommand()

func buildCodeOfCommand() map[string]int {
	m := make(map[string]int, len(controlCodes))
	for i, cc := range controlCodes {
		m[cc.name] = i
	}
	return m
}

// decodeControl renders the control byte c (already consumed from data at
// index-1) as a "{NAME arg}" token and returns the index past its argument bytes.
func decodeControl(c byte, data []byte, index int) (string, int, error) {
	cc := controlCodes[c]

	if index+cc.argLen > len(data) {
		return "", index, fmt.Errorf("text: control code 0x%02x argument runs past end of data", c)
	}

	code := cc.name
	if cc.argLen > 0 {
		code = code + " " + string(data[index:index+cc.argLen])
	}

	return "{" + code + "}", index + cc.argLen, nil
}

func decodeSJIS(b []byte) (string, error) {
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("text: shift-jis decode: %w", err)
	}
	return string(out), nil
}

// DecodeJP decodes a Japanese-version text string. kanjiBitmap, when
// non-nil, is the map's embedded Kanji glyph bitmap; each glyph's 22-byte
// slice is hashed and looked up in kanjiByHash. When kanjiBitmap is nil,
// Kanji are resolved from the two fixed global tables instead (used for text
// that lives outside any particular map, such as menus).
func DecodeJP(data []byte, kanjiBitmap []byte) (string, error) {
	var text strings.Builder

	largeFont := false

	i := 0
	for i < len(data) {
		c := data[i]
		i++

		switch {
		case c == 0x00:
			return text.String(), nil

		case c <= 0x1f:
			code, ni, err := decodeControl(c, data, i)
			if err != nil {
				return "", err
			}
			text.WriteString(code)
			i = ni

			if c == 0x14 {
				largeFont = true
			} else if c == 0x0e {
				largeFont = false
			}

		case c >= 0x28 && c <= 0x7a:
			s, err := decodeSJIS([]byte{0x82, c + 0x77})
			if err != nil {
				return "", err
			}
			text.WriteString(s)

		case c >= 0x81 && c <= 0x84:
			if i >= len(data) {
				return "", fmt.Errorf("text: truncated SJIS double-byte code at end of data")
			}
			s, err := decodeSJIS([]byte{c, data[i]})
			i++
			if err != nil {
				return "", err
			}
			text.WriteString(s)

		case c >= 0x88 && c <= 0x9f:
			if i >= len(data) {
				return "", fmt.Errorf("text: truncated Kanji code at end of data")
			}
			c2 := data[i]
			i++

			r, found, err := lookupKanji(c, c2, largeFont, kanjiBitmap)
			if err != nil {
				return "", err
			}
			if found {
				text.WriteRune(r)
			} else {
				fmt.Fprintf(&text, "{KANJI %02x %02x}", c, c2)
			}

		case c >= 0xa7 && c <= 0xdd:
			r, _ := kanjiBankRune(katakanaTable, int(c-0xa7))
			text.WriteRune(r)

		default:
			fmt.Fprintf(&text, "{0x%x}", c)
		}
	}

	return text.String(), nil
}

func lookupKanji(c, c2 byte, largeFont bool, kanjiBitmap []byte) (rune, bool, error) {
	if largeFont {
		// The large (PSX ROM) font uses plain SJIS encoding.
		s, err := decodeSJIS([]byte{c, c2})
		if err != nil {
			return 0, false, err
		}
		runes := []rune(s)
		if len(runes) == 0 {
			return 0, false, nil
		}
		return runes[0], true, nil
	}

	if kanjiBitmap == nil {
		switch c {
		case 0x88:
			r, ok := kanjiBankRune(kanjiBank1, int(c2)-1)
			return r, ok, nil
		case 0x89:
			r, ok := kanjiBankRune(kanjiBank2, int(c2)-1)
			return r, ok, nil
		default:
			return 0, false, nil
		}
	}

	offset := (int(c-0x88)*0xfd + int(c2) - 1) * 22
	if offset < 0 || offset+22 > len(kanjiBitmap) {
		return 0, false, nil
	}

	hash := crc32.ChecksumIEEE(kanjiBitmap[offset : offset+22])
	r, ok := kanjiByHash[hash]
	return r, ok, nil
}

// DecodeINT decodes a US/European text string using the given charset.
func DecodeINT(data []byte, cs Charset) (string, error) {
	runes := cs.runes()

	var text strings.Builder

	i := 0
	for i < len(data) {
		c := data[i]
		i++

		if c == 0x00 {
			break
		}

		if c <= 0x1f {
			code, ni, err := decodeControl(c, data, i)
			if err != nil {
				return "", err
			}
			text.WriteString(code)
			i = ni
			continue
		}

		idx := int(c) - 0x20
		if idx < 0 || idx >= len(runes) {
			return "", fmt.Errorf("text: byte 0x%02x has no charset entry", c)
		}

		t := runes[idx]
		if strings.ContainsRune(escapeChars, t) {
			text.WriteByte('\\')
		}
		text.WriteRune(t)
	}

	return text.String(), nil
}

// Decode decodes a text string for the given version, dispatching to the
// Japanese or Western decoder as appropriate. kanjiBitmap is only consulted
// for Japanese versions and may be nil.
func Decode(data []byte, v version.Version, cs Charset, kanjiBitmap []byte) (string, error) {
	if version.IsJapanese(v) {
		return DecodeJP(data, kanjiBitmap)
	}
	return DecodeINT(data, cs)
}

var (
	origCharsetIndex = buildCharsetIndex(OriginalCharset)
	altCharsetIndex  = buildCharsetIndex(AlternativeCharset)
)

func buildCharsetIndex(cs Charset) map[rune]byte {
	runes := cs.runes()
	m := make(map[rune]byte, len(runes))
	for i, r := range runes {
		// First occurrence wins, matching Python list.index() semantics for
		// the (rare) duplicate glyphs in these tables.
		if _, exists := m[r]; !exists {
			m[r] = byte(i + 0x20)
		}
	}
	return m
}

func charsetIndex(cs Charset, r rune) (byte, bool) {
	if cs == AlternativeCharset {
		b, ok := altCharsetIndex[r]
		return b, ok
	}
	b, ok := origCharsetIndex[r]
	return b, ok
}

// Encode encodes a Western text string (escape sequences and "{COMMAND
// arg}" tokens included) back to the game's byte representation, terminated
// by a trailing NUL. Japanese encoding is not supported, matching the
// original toolkit's own limitation.
func Encode(text string, v version.Version, cs Charset) ([]byte, error) {
	if version.IsJapanese(v) {
		return nil, fmt.Errorf("text: Japanese text encoding is not supported")
	}

	runes := []rune(text)
	var out []byte

	i := 0
	for i < len(runes) {
		c := runes[i]
		i++

		switch c {
		case '\\':
			if i >= len(runes) {
				return nil, fmt.Errorf("text: spurious '\\' at end of string %q", text)
			}
			esc := runes[i]
			i++

			if !strings.ContainsRune(escapeChars, esc) {
				return nil, fmt.Errorf("text: unknown escape sequence '\\%c' in string %q", esc, text)
			}
			b, ok := charsetIndex(cs, esc)
			if !ok {
				return nil, fmt.Errorf("text: unencodable character %q in string %q", esc, text)
			}
			out = append(out, b)

		case '{':
			tail := runes[i:]
			runeEnd := -1
			for j, rr := range tail {
				if rr == '}' {
					runeEnd = j
					break
				}
			}
			if runeEnd == -1 {
				return nil, fmt.Errorf("text: mismatched {} in string %q", text)
			}
			command := string(tail[:runeEnd])
			i += runeEnd + 1

			fields := strings.Fields(command)
			if len(fields) == 0 {
				return nil, fmt.Errorf("text: empty command in string %q", text)
			}
			keyword := fields[0]

			code, ok := codeOfCommand[keyword]
			if !ok {
				return nil, fmt.Errorf("text: unknown command %q in string %q", keyword, text)
			}
			out = append(out, byte(code))

			argLen := controlCodes[code].argLen
			if argLen > 0 {
				if len(fields) < 2 {
					return nil, fmt.Errorf("text: syntax error in command %q in string %q", command, text)
				}
				arg, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("text: syntax error in command %q in string %q", command, text)
				}

				limit := 1
				for j := 0; j < argLen; j++ {
					limit *= 10
				}
				if arg < 0 || arg >= limit {
					return nil, fmt.Errorf("text: argument of %s command out of range in string %q", keyword, text)
				}

				out = append(out, []byte(fmt.Sprintf("%0*d", argLen, arg))...)
			}

		default:
			b, ok := charsetIndex(cs, c)
			if !ok {
				return nil, fmt.Errorf("text: unencodable character %q in string %q", c, text)
			}
			if v == version.US && b >= 0x80 {
				return nil, fmt.Errorf("text: unencodable character %q in string %q", c, text)
			}
			out = append(out, b)
		}
	}

	out = append(out, 0)
	return out, nil
}
