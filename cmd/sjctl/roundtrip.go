package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendrilcode/sjson"
)

func init() {
	rootCmd.AddCommand(newRoundtripCmd())
}

func newRoundtripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip <json_file>",
		Short: "Parse, serialize, and re-parse a JSON file, reporting structural equality",
		Long: `roundtrip parses the given file, serializes the result back to JSON,
re-parses that output, and reports whether the two documents serialize to
the same bytes. Exits 1 if they don't match.

Example:
  sjctl roundtrip data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(args)
		},
	}
	return cmd
}

func runRoundtrip(args []string) error {
	path := args[0]

	printVerbose("Opening %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := sjson.Parse(f, sjson.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var first bytes.Buffer
	if err := doc.Serialize(&first); err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}

	printVerbose("Re-parsing serialized output\n")
	doc2, err := sjson.Parse(bytes.NewReader(first.Bytes()), sjson.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to re-parse serialized output: %w", err)
	}

	var second bytes.Buffer
	if err := doc2.Serialize(&second); err != nil {
		return fmt.Errorf("failed to serialize re-parsed document: %w", err)
	}

	equal := first.String() == second.String()

	if jsonOut {
		return printJSON(map[string]bool{"structurally_equal": equal})
	}

	if equal {
		printInfo("OK: round-trip preserved structural equality\n")
		return nil
	}
	printInfo("FAIL: round-trip diverged\n")
	os.Exit(1)
	return nil
}
