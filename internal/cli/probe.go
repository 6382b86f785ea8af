package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wildarms/toolkit/lib/wildarms/game"
)

var probeCmd = &cobra.Command{
	Use:   "probe <path>",
	Short: "Detect which Wild Arms release a disc image, ZIP, or folder holds",
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	path := args[0]

	opener, err := game.OpenImage(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if closer, ok := opener.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	v, execName, err := game.ProbeVersion(opener)
	if err != nil {
		return fmt.Errorf("probing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version: %s\nexecutable: %s\n", v, execName)
	return nil
}
