// Command wadump is a command-line front-end over the wildarms toolkit: it
// probes a disc/folder/zip for its release, and lists, extracts, compresses,
// or disassembles the binary data inside.
package main

import (
	"fmt"
	"os"

	"github.com/wildarms/toolkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
