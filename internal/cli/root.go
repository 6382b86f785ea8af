package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wadump",
	Short: "Inspect and rewrite Wild Arms disc data",
	Long: `wadump reads, decodes, and rewrites the binary formats used by the
Wild Arms 1 disc: its archive containers, LZSS-compressed blocks, and map
data blocks (scripts, text, and relocatable native code).`,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(lzssCmd)
	rootCmd.AddCommand(scriptCmd)
}

// Execute runs the wadump root command.
func Execute() error {
	return rootCmd.Execute()
}
