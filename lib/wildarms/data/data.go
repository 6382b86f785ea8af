// Package data holds the version-keyed schedules that say where
// translatable strings, fonts, script code, and textures live inside the
// game's executable, overlay, and archive files. Every table is specific to
// one of the seven regional releases; the lookup functions below select the
// right one for a given version.Version.
package data

import (
	"github.com/wildarms/toolkit/lib/wildarms/mapdata"
	"github.com/wildarms/toolkit/lib/wildarms/version"
)

// ExecStringEntry describes one table of fixed-format strings embedded in
// the main executable, addressed through an offset table.
type ExecStringEntry struct {
	TableOffset int
	NumStrings  int
	// DataOffset is the offset of the string data when it isn't directly
	// reachable from TableOffset; DataOffsetSet is false for the common
	// case where the table's own offsets point straight at the strings.
	DataOffset    int
	DataOffsetSet bool
	DataSize      int
	// SpecialBytes is the count of leading bytes each string reserves
	// for non-text fields (e.g. item icon index) before the text starts.
	SpecialBytes int
	// SpecialHack marks a handful of tables that encode an extra
	// discriminator into a fixed string index rather than scanning all
	// NumStrings entries uniformly.
	SpecialHack   bool
	TransDir      string
	TransFileName string
}

// ExecStringEntry2 describes a simpler table: a single fixed-capacity slot
// per string with no shared offset table.
type ExecStringEntry2 struct {
	Offset        int
	NumStrings    int
	MaxStringLen  int
	Encoding      string // empty means the table text codec; "ascii" forces plain ASCII
	TransDir      string
	TransFileName string
}

// FontEntry describes one font bitmap embedded in the executable or overlay.
type FontEntry struct {
	Offset        int
	NumChars      int
	CharWidth     int
	CharHeight    int
	LineSpacing   int
	CharsPerRow   int
	TransDir      string
	TransFileName string
}

// ExecScriptEntry describes the bytecode scripts embedded directly in the
// main executable (distinct from the per-map script sections).
type ExecScriptEntry struct {
	TableOffset int
	NumScripts  int
	DataOffset  int
	DataSize    int
}

// TextureEntry describes one texture packed into an archive's sections.
type TextureEntry struct {
	PixelSection  int
	ClutSection   int
	Width, Height int
	ClutOffset    int
	TransFileName string
}

// TextureFile describes the textures held by one archive file.
type TextureFile struct {
	SubDir, FileName string
	// ArchiveSize is the archive's total size on disk; ArchiveSizeSet is
	// false when the size varies and must be read from the file itself.
	ArchiveSize    int
	ArchiveSizeSet bool
	// LastSectionSize is the declared size of the archive's last
	// section; -1 means "read to EOF", matching archive.Parse's own rule.
	LastSectionSize int
	Textures        []TextureEntry
}

// ExecStringData returns the menu_help.txt-style string tables embedded in
// the main executable for v, or nil if v has none.
func ExecStringData(v version.Version) []ExecStringEntry {
	switch {
	case version.IsJapanese(v):
		return execStringDataJP
	case v == version.US:
		return execStringDataUS
	case v == version.EN:
		return execStringDataEN
	case v == version.DE:
		return execStringDataDE
	case v == version.ES:
		return execStringDataES
	default:
		return nil
	}
}

// ExecStringData2 returns the single-table string schedules (job.txt,
// luck.txt, ...) for v, or nil if v has none.
func ExecStringData2(v version.Version) []ExecStringEntry2 {
	switch v {
	case version.JP1:
		return execStringData2JP1
	case version.JP2:
		return execStringData2JP2
	case version.US:
		return execStringData2US
	case version.EN:
		return execStringData2EN
	case version.DE:
		return execStringData2DE
	case version.ES:
		return execStringData2ES
	default:
		return nil
	}
}

// MapNameTableOffset returns the offset of the map name table in the main
// executable for v, and false if v has none.
func MapNameTableOffset(v version.Version) (int, bool) {
	switch {
	case version.IsJapanese(v):
		return 0x7544, true
	case v == version.US:
		return 0x7578, true
	case v == version.EN:
		return 0x7570, true
	case v == version.DE:
		return 0x7714, true
	case v == version.ES:
		return 0x7540, true
	default:
		return 0, false
	}
}

// UtilFileData returns the string tables embedded in the UT0.OVR overlay for v.
func UtilFileData(v version.Version) []ExecStringEntry2 {
	switch v {
	case version.JP1:
		return utilFileDataJP1
	case version.JP2:
		return utilFileDataJP2
	case version.US:
		return utilFileDataUS
	case version.EN:
		return utilFileDataEN
	case version.DE:
		return utilFileDataDE
	case version.ES:
		return utilFileDataES
	default:
		return nil
	}
}

// MapStringData returns the map-number-keyed schedule of code strings
// embedded in map native code for v, for use with mapdata's
// GetCodeStrings/SetScripts.
func MapStringData(v version.Version) map[int][]mapdata.StringSpan {
	if version.IsJapanese(v) {
		return mapStringDataJP
	}
	return mapStringDataINT
}

// FontData returns the font bitmaps embedded in the executable/overlay for v.
func FontData(v version.Version) []FontEntry {
	switch v {
	case version.JP1:
		return fontDataJP1
	case version.JP2:
		return fontDataJP2
	case version.US:
		return fontDataUS
	case version.EN:
		return fontDataEN
	case version.DE:
		return fontDataDE
	case version.ES:
		return fontDataES
	default:
		return nil
	}
}

// ExecScriptData returns the bytecode scripts embedded in the main
// executable for v, and false if v has none.
func ExecScriptData(v version.Version) (ExecScriptEntry, bool) {
	switch {
	case version.IsJapanese(v):
		return execScriptDataJP, true
	case v == version.US:
		return execScriptDataUS, true
	case v == version.EN:
		return execScriptDataEN, true
	case v == version.DE:
		return execScriptDataDE, true
	case v == version.ES:
		return execScriptDataES, true
	default:
		return ExecScriptEntry{}, false
	}
}

// TextureData returns the archive-packed texture schedule. It is the same
// for every version: these are system UI assets shared across releases.
func TextureData() []TextureFile {
	return textureData
}

var execStringDataJP = []ExecStringEntry{
	{0xf4c, 6, 0, false, 0xb0, 0, false, "exe", "menu_help.txt"},
	{0x1018, 256, 0, false, 0x988, 1, false, "exe", "item.txt"},
	{0x1da4, 256, 0, false, 0xa38, 0, false, "exe", "item_help.txt"},
	{0x4fe8, 8, 0, false, 0x68, 1, false, "exe", "arm.txt"},
	{0x5074, 8, 0, false, 0xd0, 0, false, "exe", "arm_help.txt"},
	{0x51cc, 33, 0, false, 0xd8, 1, false, "exe", "fast_draw.txt"},
	{0x532c, 32, 0, false, 0x2f4, 0, false, "exe", "fast_draw_help.txt"},
	{0x5868, 46, 0x5ea0, true, 0x1f4, 1, false, "exe", "magic2.txt"},
	{0x6098, 64, 0, false, 0x668, 0, false, "exe", "magic_help.txt"},
	{0x6e0c, 18, 0, false, 0xa4, 0, false, "exe", "auto_cmd.txt"},
	{0x6efc, 18, 0, false, 0x7c, 0, false, "exe", "auto_cmd_help.txt"},
	{0x6fc8, 3, 0, false, 0xc, 0, false, "exe", "technique.txt"},
	{0x6fe8, 10, 0, false, 0x64, 3, false, "exe", "config.txt"},
	{0x7078, 10, 0, false, 0xa4, 0, false, "exe", "config_help.txt"},
	{0x7148, 31, 0, false, 0xec, 1, true, "exe", "config_setting.txt"},
	{0x72b4, 12, 0, false, 0x64, 0, false, "exe", "menu.txt"},
	{0x734c, 2, 0, false, 0x14, 0, false, "exe", "menu2.txt"},
	{0x736c, 12, 0, false, 0x6c, 0, false, "exe", "tool.txt"},
	{0x740c, 12, 0, false, 0x104, 0, false, "exe", "tool_help.txt"},
	{0x7544, 128, 0, false, 0x26c, 0, false, "exe", "map_name.txt"},
	{0x840c, 20, 0, false, 0x22c, 1, false, "exe", "memory_card.txt"},
	{0x88ac, 21, 0, false, 0x80, 0, false, "exe", "icon.txt"},
	{0x8984, 10, 0, false, 0x70, 0, false, "exe", "window.txt"},
	{0x8a20, 22, 0, false, 0x174, 0, false, "exe", "load_save.txt"},
	{0x8e98, 13, 0, false, 0x50, 0, false, "exe", "controller.txt"},
	{0x9228, 70, 0, false, 0x3dc, 0, false, "exe", "battle.txt"},
	{0x9798, 256, 0, false, 0x734, 0, false, "exe", "enemy.txt"},
	{0xa2f0, 11, 0, false, 0xc4, 0, false, "exe", "command_help.txt"},
	{0xae20, 214, 0, false, 0x7b4, 1, false, "exe", "attack.txt"},
	{0xc53c, 13, 0, false, 0x78, 0, false, "exe", "force.txt"},
	{0xc5ec, 14, 0, false, 0x144, 0, false, "exe", "force_help.txt"},
	{0xc7e4, 21, 0, false, 0xd0, 1, false, "exe", "guardian.txt"},
}

var execStringData2JP1 = []ExecStringEntry2{
	{0xed8, 4, 19, "", "exe", "job.txt"},
	{0xf24, 5, 7, "ascii", "exe", "luck.txt"},
	{0x868c, 1, 520, "", "exe", "name_entry.txt"},
	{0xe0e4, 1, 20, "ascii", "exe", "best_runners.txt"},
	{0xe0f8, 1, 20, "ascii", "exe", "trial_result.txt"},
	{0xbd7b0, 1, 8, "ascii", "exe", "miss.txt"},
	{0xbd7f0, 1, 4, "ascii", "exe", "ok.txt"},
}

var execStringData2JP2 = []ExecStringEntry2{
	{0xed8, 4, 19, "", "exe", "job.txt"},
	{0xf24, 5, 7, "ascii", "exe", "luck.txt"},
	{0x868c, 1, 520, "", "exe", "name_entry.txt"},
	{0xe0e4, 1, 20, "ascii", "exe", "best_runners.txt"},
	{0xe0f8, 1, 20, "ascii", "exe", "trial_result.txt"},
	{0xcb52c, 1, 8, "ascii", "exe", "miss.txt"},
	{0xcb56c, 1, 4, "ascii", "exe", "ok.txt"},
}

var execStringDataUS = []ExecStringEntry{
	{0xf54, 6, 0, false, 0xac, 0, false, "exe", "menu_help.txt"},
	{0x101c, 256, 0, false, 0xad8, 1, false, "exe", "item.txt"},
	{0x1ef8, 256, 0, false, 0xaac, 0, false, "exe", "item_help.txt"},
	{0x51b0, 8, 0, false, 0x58, 1, false, "exe", "arm.txt"},
	{0x522c, 8, 0, false, 0xbc, 0, false, "exe", "arm_help.txt"},
	{0x5370, 33, 0, false, 0xdc, 1, false, "exe", "fast_draw.txt"},
	{0x54d4, 32, 0, false, 0x2e8, 0, false, "exe", "fast_draw_help.txt"},
	{0x5a04, 46, 0x5f22, true, 0x1d2, 1, false, "exe", "magic2.txt"},
	{0x60f8, 64, 0, false, 0x5c8, 0, false, "exe", "magic_help.txt"},
	{0x6dcc, 18, 0, false, 0x94, 0, false, "exe", "auto_cmd.txt"},
	{0x6eac, 18, 0, false, 0xac, 0, false, "exe", "auto_cmd_help.txt"},
	{0x6fa4, 3, 0, false, 0x18, 0, false, "exe", "technique.txt"},
	{0x6fcc, 10, 0, false, 0x64, 3, false, "exe", "config.txt"},
	{0x705c, 10, 0, false, 0xc8, 0, false, "exe", "config_help.txt"},
	{0x7150, 31, 0, false, 0x104, 1, true, "exe", "config_setting.txt"},
	{0x72d4, 12, 0, false, 0x84, 0, false, "exe", "menu.txt"},
	{0x738c, 2, 0, false, 0x18, 0, false, "exe", "menu2.txt"},
	{0x73b0, 12, 0, false, 0x50, 0, false, "exe", "tool.txt"},
	{0x7434, 12, 0, false, 0x110, 0, false, "exe", "tool_help.txt"},
	{0x7578, 128, 0, false, 0x330, 0, false, "exe", "map_name.txt"},
	{0x8508, 20, 0, false, 0x280, 1, false, "exe", "memory_card.txt"},
	{0x883c, 21, 0, false, 0x74, 0, false, "exe", "icon.txt"},
	{0x8908, 10, 0, false, 0x5c, 0, false, "exe", "window.txt"},
	{0x8990, 22, 0, false, 0x154, 0, false, "exe", "load_save.txt"},
	{0x8de8, 13, 0, false, 0x58, 0, false, "exe", "controller.txt"},
	{0x918c, 70, 0, false, 0x4f4, 0, false, "exe", "battle.txt"},
	{0x9814, 256, 0, false, 0x7a4, 0, false, "exe", "enemy.txt"},
	{0xa3e0, 11, 0, false, 0xdc, 0, false, "exe", "command_help.txt"},
	{0xaf28, 214, 0, false, 0xa34, 1, false, "exe", "attack.txt"},
	{0xc8c4, 13, 0, false, 0xa4, 0, false, "exe", "force.txt"},
	{0xc9a0, 14, 0, false, 0x184, 0, false, "exe", "force_help.txt"},
	{0xcbd8, 21, 0, false, 0xe0, 1, false, "exe", "guardian.txt"},
}

var execStringData2US = []ExecStringEntry2{
	{0xee0, 4, 19, "", "exe", "job.txt"},
	{0xf2c, 5, 7, "", "exe", "luck.txt"},
	{0x87dc, 1, 92, "", "exe", "name_entry.txt"},
	{0x8ed2, 1, 18, "", "exe", "best_runners.txt"},
	{0xe4dc, 1, 20, "", "exe", "trial_result.txt"},
	{0xc1c48, 1, 8, "", "exe", "miss.txt"},
	{0xc1c90, 1, 4, "", "exe", "ok.txt"},
}

var execStringDataEN = []ExecStringEntry{
	{0xf4c, 6, 0, false, 0xac, 0, false, "exe", "menu_help.txt"},
	{0x1014, 256, 0, false, 0xad8, 1, false, "exe", "item.txt"},
	{0x1ef0, 256, 0, false, 0xaac, 0, false, "exe", "item_help.txt"},
	{0x51a8, 8, 0, false, 0x58, 1, false, "exe", "arm.txt"},
	{0x5224, 8, 0, false, 0xbc, 0, false, "exe", "arm_help.txt"},
	{0x5368, 33, 0, false, 0xdc, 1, false, "exe", "fast_draw.txt"},
	{0x54cc, 32, 0, false, 0x2e8, 0, false, "exe", "fast_draw_help.txt"},
	{0x59fc, 46, 0x5f1a, true, 0x1d2, 1, false, "exe", "magic2.txt"},
	{0x60f0, 64, 0, false, 0x5c8, 0, false, "exe", "magic_help.txt"},
	{0x6dc4, 18, 0, false, 0x94, 0, false, "exe", "auto_cmd.txt"},
	{0x6ea4, 18, 0, false, 0xac, 0, false, "exe", "auto_cmd_help.txt"},
	{0x6f9c, 3, 0, false, 0x18, 0, false, "exe", "technique.txt"},
	{0x6fc4, 10, 0, false, 0x64, 3, false, "exe", "config.txt"},
	{0x7054, 10, 0, false, 0xc8, 0, false, "exe", "config_help.txt"},
	{0x7148, 31, 0, false, 0x104, 1, true, "exe", "config_setting.txt"},
	{0x72cc, 12, 0, false, 0x84, 0, false, "exe", "menu.txt"},
	{0x7384, 2, 0, false, 0x18, 0, false, "exe", "menu2.txt"},
	{0x73a8, 12, 0, false, 0x50, 0, false, "exe", "tool.txt"},
	{0x742c, 12, 0, false, 0x110, 0, false, "exe", "tool_help.txt"},
	{0x7570, 128, 0, false, 0x330, 0, false, "exe", "map_name.txt"},
	{0x8500, 20, 0, false, 0x278, 1, false, "exe", "memory_card.txt"},
	{0x882c, 21, 0, false, 0x74, 0, false, "exe", "icon.txt"},
	{0x88f8, 10, 0, false, 0x5c, 0, false, "exe", "window.txt"},
	{0x8980, 22, 0, false, 0x14c, 0, false, "exe", "load_save.txt"},
	{0x8dd0, 13, 0, false, 0x58, 0, false, "exe", "controller.txt"},
	{0x8f18, 6, 0, false, 0x58, 0, false, "exe", "load_save2.txt"},
	{0x9230, 70, 0, false, 0x4f4, 0, false, "exe", "battle.txt"},
	{0x98b8, 256, 0, false, 0x7a4, 0, false, "exe", "enemy.txt"},
	{0xa484, 11, 0, false, 0xdc, 0, false, "exe", "command_help.txt"},
	{0xafcc, 214, 0, false, 0xa34, 1, false, "exe", "attack.txt"},
	{0xc968, 13, 0, false, 0xa4, 0, false, "exe", "force.txt"},
	{0xca44, 14, 0, false, 0x184, 0, false, "exe", "force_help.txt"},
	{0xcc7c, 21, 0, false, 0xe0, 1, false, "exe", "guardian.txt"},
}

var execStringData2EN = []ExecStringEntry2{
	{0xed8, 4, 19, "", "exe", "job.txt"},
	{0xf24, 5, 7, "", "exe", "luck.txt"},
	{0x87cc, 1, 92, "", "exe", "name_entry.txt"},
	{0x8eba, 1, 18, "", "exe", "best_runners.txt"},
	{0xe580, 1, 20, "", "exe", "trial_result.txt"},
	{0xc1a80, 1, 8, "", "exe", "miss.txt"},
	{0xc1ac8, 1, 4, "", "exe", "ok.txt"},
}

var execStringDataDE = []ExecStringEntry{
	{0xf44, 6, 0, false, 0xbc, 0, false, "exe", "menu_help.txt"},
	{0x101c, 256, 0, false, 0xa9c, 1, false, "exe", "item.txt"},
	{0x1ebc, 256, 0, false, 0xae0, 0, false, "exe", "item_help.txt"},
	{0x51a8, 8, 0, false, 0x58, 1, false, "exe", "arm.txt"},
	{0x5224, 8, 0, false, 0xbc, 0, false, "exe", "arm_help.txt"},
	{0x5368, 33, 0, false, 0xdc, 1, false, "exe", "fast_draw.txt"},
	{0x54cc, 32, 0, false, 0x2d8, 0, false, "exe", "fast_draw_help.txt"},
	{0x59ec, 46, 0x6024, true, 0x20c, 1, false, "exe", "magic2.txt"},
	{0x6238, 64, 0, false, 0x5f8, 0, false, "exe", "magic_help.txt"},
	{0x6f3c, 18, 0, false, 0x98, 0, false, "exe", "auto_cmd.txt"},
	{0x7020, 18, 0, false, 0xb0, 0, false, "exe", "auto_cmd_help.txt"},
	{0x711c, 3, 0, false, 0x1c, 0, false, "exe", "technique.txt"},
	{0x7148, 10, 0, false, 0x64, 3, false, "exe", "config.txt"},
	{0x71d8, 10, 0, false, 0xdc, 0, false, "exe", "config_help.txt"},
	{0x72e0, 31, 0, false, 0x114, 1, true, "exe", "config_setting.txt"},
	{0x7474, 12, 0, false, 0x7c, 0, false, "exe", "menu.txt"},
	{0x7524, 2, 0, false, 0x18, 0, false, "exe", "menu2.txt"},
	{0x7548, 12, 0, false, 0x58, 0, false, "exe", "tool.txt"},
	{0x75d4, 12, 0, false, 0x10c, 0, false, "exe", "tool_help.txt"},
	{0x7714, 128, 0, false, 0x30c, 0, false, "exe", "map_name.txt"},
	{0x8680, 20, 0, false, 0x344, 1, false, "exe", "memory_card.txt"},
	{0x8a78, 21, 0, false, 0x88, 0, false, "exe", "icon.txt"},
	{0x8b58, 10, 0, false, 0x54, 0, false, "exe", "window.txt"},
	{0x8bd8, 22, 0, false, 0x19c, 0, false, "exe", "load_save.txt"},
	{0x9078, 13, 0, false, 0x6c, 0, false, "exe", "controller.txt"},
	{0x91d4, 6, 0, false, 0x64, 0, false, "exe", "load_save2.txt"},
	{0x94e8, 70, 0, false, 0x4e8, 0, false, "exe", "battle.txt"},
	{0x9b64, 256, 0, false, 0x7b8, 0, false, "exe", "enemy.txt"},
	{0xa744, 11, 0, false, 0xe0, 0, false, "exe", "command_help.txt"},
	{0xb290, 214, 0, false, 0xaa0, 1, false, "exe", "attack.txt"},
	{0xcc98, 13, 0, false, 0x9c, 0, false, "exe", "force.txt"},
	{0xcd6c, 14, 0, false, 0x180, 0, false, "exe", "force_help.txt"},
	{0xcfa0, 21, 0, false, 0xe0, 1, false, "exe", "guardian.txt"},
}

var execStringData2DE = []ExecStringEntry2{
	{0xed0, 4, 19, "", "exe", "job.txt"},
	{0xf1c, 5, 7, "", "exe", "luck.txt"},
	{0x8a18, 1, 92, "", "exe", "name_entry.txt"},
	{0x9176, 1, 18, "", "exe", "best_runners.txt"},
	{0xe8a4, 1, 20, "", "exe", "trial_result.txt"},
	{0xc1f8c, 1, 8, "", "exe", "miss.txt"},
	{0xc1fd4, 1, 4, "", "exe", "ok.txt"},
}

var execStringDataES = []ExecStringEntry{
	{0xf44, 6, 0, false, 0xb0, 0, false, "exe", "menu_help.txt"},
	{0x1010, 256, 0, false, 0xa18, 1, false, "exe", "item.txt"},
	{0x1e2c, 256, 0, false, 0xa6c, 0, false, "exe", "item_help.txt"},
	{0x50a4, 8, 0, false, 0x60, 1, false, "exe", "arm.txt"},
	{0x5128, 8, 0, false, 0x98, 0, false, "exe", "arm_help.txt"},
	{0x5248, 33, 0, false, 0xd0, 1, false, "exe", "fast_draw.txt"},
	{0x53a0, 32, 0, false, 0x2b4, 0, false, "exe", "fast_draw_help.txt"},
	{0x589c, 46, 0x5ed4, true, 0x1d4, 1, false, "exe", "magic2.txt"},
	{0x60ac, 64, 0, false, 0x5ec, 0, false, "exe", "magic_help.txt"},
	{0x6da4, 18, 0, false, 0x98, 0, false, "exe", "auto_cmd.txt"},
	{0x6e88, 18, 0, false, 0xa4, 0, false, "exe", "auto_cmd_help.txt"},
	{0x6f78, 3, 0, false, 0x1c, 0, false, "exe", "technique.txt"},
	{0x6fa4, 10, 0, false, 0x68, 3, false, "exe", "config.txt"},
	{0x7038, 10, 0, false, 0xc0, 0, false, "exe", "config_help.txt"},
	{0x7124, 31, 0, false, 0x100, 1, true, "exe", "config_setting.txt"},
	{0x72a4, 12, 0, false, 0x74, 0, false, "exe", "menu.txt"},
	{0x734c, 2, 0, false, 0x1c, 0, false, "exe", "menu2.txt"},
	{0x7374, 12, 0, false, 0x58, 0, false, "exe", "tool.txt"},
	{0x7400, 12, 0, false, 0x10c, 0, false, "exe", "tool_help.txt"},
	{0x7540, 128, 0, false, 0x334, 0, false, "exe", "map_name.txt"},
	{0x84d4, 20, 0, false, 0x298, 1, false, "exe", "memory_card.txt"},
	{0x8820, 21, 0, false, 0x88, 0, false, "exe", "icon.txt"},
	{0x8900, 10, 0, false, 0x58, 0, false, "exe", "window.txt"},
	{0x8984, 22, 0, false, 0x164, 0, false, "exe", "load_save.txt"},
	{0x8dec, 13, 0, false, 0x5c, 0, false, "exe", "controller.txt"},
	{0x8f38, 6, 0, false, 0x68, 0, false, "exe", "load_save2.txt"},
	{0x925c, 70, 0, false, 0x4c4, 0, false, "exe", "battle.txt"},
	{0x98b4, 256, 0, false, 0x79c, 0, false, "exe", "enemy.txt"},
	{0xa474, 11, 0, false, 0xd8, 0, false, "exe", "command_help.txt"},
	{0xafb8, 214, 0, false, 0x9a8, 1, false, "exe", "attack.txt"},
	{0xc8c8, 13, 0, false, 0xac, 0, false, "exe", "force.txt"},
	{0xc9ac, 14, 0, false, 0x180, 0, false, "exe", "force_help.txt"},
	{0xcbdc, 21, 0, false, 0xe0, 1, false, "exe", "guardian.txt"},
}

var execStringData2ES = []ExecStringEntry2{
	{0xed0, 4, 19, "", "exe", "job.txt"},
	{0xf1c, 5, 7, "", "exe", "luck.txt"},
	{0x87c0, 1, 92, "", "exe", "name_entry.txt"},
	{0x8eda, 1, 18, "", "exe", "best_runners.txt"},
	{0xe4e0, 1, 20, "", "exe", "trial_result.txt"},
	{0xc1bc8, 1, 8, "", "exe", "miss.txt"},
	{0xc1c10, 1, 4, "", "exe", "ok.txt"},
}

var utilFileDataJP1 = []ExecStringEntry2{
	{0xe778, 64, 21, "", "exe", "magic.txt"},
	{0xe878, 4, 17, "", "exe", "character.txt"},
}

var utilFileDataJP2 = []ExecStringEntry2{
	{0xe784, 64, 21, "", "exe", "magic.txt"},
	{0xe884, 4, 17, "", "exe", "character.txt"},
}

var utilFileDataUS = []ExecStringEntry2{
	{0xe23c, 64, 11, "", "exe", "magic.txt"},
	{0xe33c, 4, 9, "", "exe", "character.txt"},
}

var utilFileDataEN = []ExecStringEntry2{
	{0xd9b0, 64, 11, "", "exe", "magic.txt"},
	{0xdab0, 4, 9, "", "exe", "character.txt"},
}

var utilFileDataDE = []ExecStringEntry2{
	{0xd9a0, 64, 11, "", "exe", "magic.txt"},
	{0xdaa0, 4, 9, "", "exe", "character.txt"},
}

var utilFileDataES = []ExecStringEntry2{
	{0xd9a8, 64, 11, "", "exe", "magic.txt"},
	{0xdaa8, 4, 9, "", "exe", "character.txt"},
}

var mapStringDataJP = map[int][]mapdata.StringSpan{
	5:  {{Offset: 0, MaxSize: 12}, {Offset: 12, MaxSize: 8}, {Offset: 20, MaxSize: 12}, {Offset: 32, MaxSize: 12}, {Offset: 44, MaxSize: 12}},
	36: {{Offset: 16, MaxSize: 16}},
	51: {{Offset: 0, MaxSize: 20}},
	57: {{Offset: 0, MaxSize: 20}},
}

var mapStringDataINT = map[int][]mapdata.StringSpan{
	5:  {{Offset: 0, MaxSize: 8}, {Offset: 8, MaxSize: 8}, {Offset: 16, MaxSize: 8}, {Offset: 24, MaxSize: 8}, {Offset: 32, MaxSize: 12}},
	36: {{Offset: 16, MaxSize: 8}},
	51: {{Offset: 0, MaxSize: 12}},
	57: {{Offset: 0, MaxSize: 12}},
}

var fontDataJP1 = []FontEntry{
	{0xe10c, 465, 12, 11, 1, 32, "gfx", "kanji.png"},
	{0xc120c, 524, 12, 11, 1, 32, "gfx", "dialog_font.png"},
}

var fontDataJP2 = []FontEntry{
	{0xe10c, 465, 12, 11, 1, 32, "gfx", "kanji.png"},
	{0xc0e04, 524, 12, 11, 1, 32, "gfx", "dialog_font.png"},
}

var fontDataUS = []FontEntry{
	{0xe4f0, 96, 8, 16, 0, 16, "gfx", "dialog_font.png"},
	{0xeaf0, 96, 8, 16, 0, 16, "gfx", "dialog_font2.png"},
	{0xf0f0, 96, 8, 16, 0, 16, "gfx", "dialog_font3.png"},
	{0xf6f0, 96, 8, 16, 0, 16, "gfx", "dialog_font4.png"},
}

var fontDataEN = []FontEntry{
	{0xe594, 224, 8, 16, 0, 16, "gfx", "dialog_font.png"},
}

var fontDataDE = []FontEntry{
	{0xe8b8, 224, 8, 16, 0, 16, "gfx", "dialog_font.png"},
}

var fontDataES = []FontEntry{
	{0xe4f4, 224, 8, 16, 0, 16, "gfx", "dialog_font.png"},
}

var execScriptDataJP = ExecScriptEntry{0x8f80, 10, 0x9078, 0x1ac}
var execScriptDataUS = ExecScriptEntry{0x8ee8, 10, 0x8fe0, 0x1a8}
var execScriptDataEN = ExecScriptEntry{0x8f8c, 10, 0x9084, 0x1a8}
var execScriptDataDE = ExecScriptEntry{0x9254, 10, 0x934c, 0x198}
var execScriptDataES = ExecScriptEntry{0x8fbc, 10, 0x90b4, 0x1a4}

var textureData = []TextureFile{
	{
		SubDir: "SYS", FileName: "UT0.BIN", ArchiveSize: 0, ArchiveSizeSet: false, LastSectionSize: 0x200,
		Textures: []TextureEntry{
			{1, 0, 256, 256, 0, "memory_card.png"},
			{3, 2, 256, 256, 0, "name_entry.png"},
			{5, 4, 256, 256, 32, "load_save.png"},
		},
	},
	{
		SubDir: "SYS", FileName: "SY0.BIN", ArchiveSize: 0xb000, ArchiveSizeSet: true, LastSectionSize: -1,
		Textures: []TextureEntry{
			{1, 0, 256, 256, 0x1c0, "menu_font.png"},
			{2, 0, 256, 256, 0x260, "menu_labels.png"},
		},
	},
	{
		SubDir: "SYS", FileName: "SY1.BIN", ArchiveSize: 0xb000, ArchiveSizeSet: true, LastSectionSize: -1,
		Textures: []TextureEntry{
			{1, 0, 256, 256, 0x1c0, "menu_font.png"},
			{2, 0, 256, 256, 0x260, "menu_labels.png"},
		},
	},
}
