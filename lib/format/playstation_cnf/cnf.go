// Package playstation_cnf parses the Wild Arms disc's SYSTEM.CNF boot line
// to identify which regional release an image or directory holds.
//
// SYSTEM.CNF on a Wild Arms disc always starts with a single line of the form:
//
//	BOOT = cdrom:\EXE\SCUS_946.08;1
//
// the executable's filename (minus the ";1" ISO version suffix) names the
// release; the mapping from that name to a Version lives in
// lib/wildarms/game alongside the rest of version probing, since it also
// needs to peek inside the executable to disambiguate the two Japanese
// pressings.
package playstation_cnf

import (
	"bytes"
	"fmt"
	"regexp"
)

var bootLineRe = regexp.MustCompile(`^BOOT\s*=\s*cdrom:\\EXE\\([\w.]+)(;1)?`)

// ExecFileName extracts the boot executable's filename (e.g. "SCUS_946.08")
// from the raw bytes of a SYSTEM.CNF file.
func ExecFileName(data []byte) (string, error) {
	line := data
	if i := bytes.IndexByte(data, '\n'); i != -1 {
		line = data[:i]
	}
	line = bytes.TrimRight(line, "\r\n")

	m := bootLineRe.FindSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("playstation_cnf: unrecognized SYSTEM.CNF boot line %q (not a Wild Arms image?)", line)
	}
	return string(m[1]), nil
}
