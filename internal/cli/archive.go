package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wildarms/toolkit/lib/wildarms/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List, extract, or rebuild sections of an archive container",
}

var archiveListCmd = &cobra.Command{
	Use:   "list <archive-file>",
	Short: "List the non-empty sections of an archive and their sizes",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveList,
}

var archiveExtractCmd = &cobra.Command{
	Use:   "extract <archive-file> <section-index> <out-file>",
	Short: "Write one section's raw bytes to a file",
	Args:  cobra.ExactArgs(3),
	RunE:  runArchiveExtract,
}

var archiveSetCmd = &cobra.Command{
	Use:   "set <archive-file> <section-index> <data-file> <out-archive-file>",
	Short: "Replace one section's data and rewrite the archive",
	Args:  cobra.ExactArgs(4),
	RunE:  runArchiveSet,
}

func init() {
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveExtractCmd)
	archiveCmd.AddCommand(archiveSetCmd)
}

func openArchive(path string) (*archive.Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	a, err := archive.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a, nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	a, err := openArchive(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, section := range a.Sections() {
		if section == nil {
			continue
		}
		fmt.Fprintf(out, "%3d  %8d bytes\n", i, len(section))
	}
	return nil
}

func runArchiveExtract(cmd *cobra.Command, args []string) error {
	a, err := openArchive(args[0])
	if err != nil {
		return err
	}

	index, err := sectionIndex(args[1])
	if err != nil {
		return err
	}

	data, err := a.GetSection(index)
	if err != nil {
		return fmt.Errorf("extracting section %d: %w", index, err)
	}

	if err := os.WriteFile(args[2], data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[2], err)
	}
	return nil
}

func runArchiveSet(cmd *cobra.Command, args []string) error {
	a, err := openArchive(args[0])
	if err != nil {
		return err
	}

	index, err := sectionIndex(args[1])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[2], err)
	}

	if err := a.SetSection(index, data); err != nil {
		return fmt.Errorf("setting section %d: %w", index, err)
	}

	out, err := os.Create(args[3])
	if err != nil {
		return fmt.Errorf("creating %s: %w", args[3], err)
	}
	defer out.Close()

	if _, err := a.WriteTo(out); err != nil {
		return fmt.Errorf("writing %s: %w", args[3], err)
	}
	return nil
}

func sectionIndex(s string) (int, error) {
	var index int
	if _, err := fmt.Sscanf(s, "%d", &index); err != nil {
		return 0, fmt.Errorf("invalid section index %q: %w", s, err)
	}
	return index, nil
}
