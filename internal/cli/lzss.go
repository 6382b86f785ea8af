package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wildarms/toolkit/lib/wildarms/lzss"
)

var lzssCmd = &cobra.Command{
	Use:   "lzss",
	Short: "Compress or decompress a file using the game's LZSS profile",
}

var lzssDecompressCmd = &cobra.Command{
	Use:   "decompress <in-file> <out-file>",
	Short: "Decompress an LZSS-compressed block",
	Args:  cobra.ExactArgs(2),
	RunE:  runLZSSDecompress,
}

var lzssCompressCmd = &cobra.Command{
	Use:   "compress <in-file> <out-file>",
	Short: "Compress a block using the game's LZSS profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runLZSSCompress,
}

func init() {
	lzssCmd.AddCommand(lzssDecompressCmd)
	lzssCmd.AddCommand(lzssCompressCmd)
}

func runLZSSDecompress(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	decompressed, err := lzss.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", args[0], err)
	}

	if err := os.WriteFile(args[1], decompressed, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	return nil
}

func runLZSSCompress(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	compressed := lzss.Compress(data)

	if err := os.WriteFile(args[1], compressed, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	return nil
}
