package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wildarms/toolkit/lib/wildarms/mapdata"
	"github.com/wildarms/toolkit/lib/wildarms/script"
	"github.com/wildarms/toolkit/lib/wildarms/version"
)

var scriptVersionFlag string

var scriptCmd = &cobra.Command{
	Use:   "script <map-file> <map-number>",
	Short: "Disassemble a map's script sections to a symbolic listing",
	Args:  cobra.ExactArgs(2),
	RunE:  runScript,
}

func init() {
	scriptCmd.Flags().StringVar(&scriptVersionFlag, "version", string(version.US),
		"game release the map data was extracted from (jp1, jp2, us, en, fr, de, it, es)")
}

func runScript(cmd *cobra.Command, args []string) error {
	v := version.Version(scriptVersionFlag)
	if !version.Valid(v) {
		return fmt.Errorf("unknown --version %q", scriptVersionFlag)
	}

	mapNumber, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid map number %q: %w", args[1], err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	m, err := mapdata.New(data, mapNumber, v)
	if err != nil {
		return fmt.Errorf("parsing map data: %w", err)
	}

	out := cmd.OutOrStdout()

	script1, err := m.GetScript1()
	if err != nil {
		return fmt.Errorf("extracting script 1: %w", err)
	}
	printScript(out, "script1", script1)

	script2, err := m.GetScript2()
	if err != nil {
		return fmt.Errorf("extracting script 2: %w", err)
	}
	if script2 != nil {
		printScript(out, "script2", script2)
	}

	return nil
}

func printScript(out io.Writer, label string, instrs []*script.Instruction) {
	fmt.Fprintf(out, "; %s\n", label)
	for _, instr := range instrs {
		fmt.Fprintf(out, "%04x: %s\n", instr.Addr, instr.Disass)
	}
}
