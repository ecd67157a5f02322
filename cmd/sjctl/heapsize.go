package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendrilcode/sjson"
)

func init() {
	rootCmd.AddCommand(newHeapsizeCmd())
}

func newHeapsizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heapsize <json_file>",
		Short: "Parse a JSON file and report its resident-memory estimate",
		Long: `heapsize parses the given file into a Document and prints the
estimated resident bytes alongside the raw file size.

Example:
  sjctl heapsize data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeapsize(args)
		},
	}
	return cmd
}

func runHeapsize(args []string) error {
	path := args[0]

	printVerbose("Opening %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	doc, err := sjson.Parse(f, sjson.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	heapSize := doc.HeapSize()
	rawSize := stat.Size()

	if jsonOut {
		return printJSON(map[string]int64{
			"heap_size": heapSize,
			"raw_size":  rawSize,
		})
	}

	printInfo("File: %s\n", path)
	printInfo("Raw size:  %d bytes\n", rawSize)
	printInfo("Heap size: %d bytes\n", heapSize)
	if rawSize > 0 {
		printInfo("Ratio:     %.2fx\n", float64(heapSize)/float64(rawSize))
	}
	return nil
}
