package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tendrilcode/sjson"
)

func init() {
	cmd := newExploreCmd()
	cmd.Flags().String("path", "", "Dotted/indexed path into the document, e.g. a.b.2.c")
	rootCmd.AddCommand(cmd)
}

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <json_file> [--path a.b.2.c]",
		Short: "Print the value at a path, or the whole tree if --path is omitted",
		Long: `explore parses the given file and prints the value reached by walking
--path as a sequence of dot-separated segments: a name resolves an
object field, an integer resolves an array element by index. With no
--path, the whole document is printed.

Example:
  sjctl explore data.json --path users.0.name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			return runExplore(args, path)
		},
	}
}

func runExplore(args []string, path string) error {
	file := args[0]

	printVerbose("Opening %s\n", file)

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	doc, err := sjson.Parse(f, sjson.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}

	v := doc.Value(doc.Root())

	var segments []string
	if path != "" {
		segments = strings.Split(path, ".")
	}

	for i, seg := range segments {
		next, err := descend(v, seg)
		if err != nil {
			return fmt.Errorf("at segment %d (%q): %w", i, seg, err)
		}
		v = next
	}

	return printValue(v)
}

// descend resolves one path segment against v: an integer segment indexes
// into an array, anything else looks up an object field.
func descend(v sjson.Value, seg string) (sjson.Value, error) {
	if idx, err := strconv.Atoi(seg); err == nil {
		arr, ok := v.AsArray()
		if !ok {
			return sjson.Value{}, sjson.ErrType
		}
		i := 0
		for elem := range arr.Iter() {
			if i == idx {
				return elem, nil
			}
			i++
		}
		return sjson.Value{}, sjson.ErrNotFound
	}

	obj, ok := v.AsObject()
	if !ok {
		return sjson.Value{}, sjson.ErrType
	}
	val, ok := obj.Get(seg)
	if !ok {
		return sjson.Value{}, sjson.ErrNotFound
	}
	return val, nil
}

func printValue(v sjson.Value) error {
	if jsonOut {
		return printJSON(valueToAny(v))
	}
	printInfo("%s\n", renderValue(v))
	return nil
}

// valueToAny materializes a Value into a plain interface{} tree so it can
// be round-tripped through encoding/json for --json output.
func valueToAny(v sjson.Value) interface{} {
	switch v.Kind() {
	case sjson.KindObject:
		obj, _ := v.AsObject()
		m := map[string]interface{}{}
		for k, val := range obj.Iter() {
			m[k] = valueToAny(val)
		}
		return m
	case sjson.KindArray:
		arr, _ := v.AsArray()
		var out []interface{}
		for val := range arr.Iter() {
			out = append(out, valueToAny(val))
		}
		return out
	case sjson.KindString:
		s, _ := v.AsString()
		return s
	case sjson.KindNumber:
		n, _ := v.AsNumber()
		return n
	case sjson.KindBoolean:
		b, _ := v.AsBoolean()
		return b
	default:
		return nil
	}
}

// renderValue prints a Value as a single line of JSON-like text, for the
// plain-text explore output.
func renderValue(v sjson.Value) string {
	switch v.Kind() {
	case sjson.KindObject:
		obj, _ := v.AsObject()
		var parts []string
		for k, val := range obj.Iter() {
			parts = append(parts, fmt.Sprintf("%q:%s", k, renderValue(val)))
		}
		return "{" + strings.Join(parts, ",") + "}"
	case sjson.KindArray:
		arr, _ := v.AsArray()
		var parts []string
		for val := range arr.Iter() {
			parts = append(parts, renderValue(val))
		}
		return "[" + strings.Join(parts, ",") + "]"
	case sjson.KindString:
		s, _ := v.AsString()
		return strconv.Quote(s)
	case sjson.KindNumber:
		n, _ := v.AsNumber()
		return strconv.FormatFloat(n, 'g', -1, 64)
	case sjson.KindBoolean:
		b, _ := v.AsBoolean()
		return strconv.FormatBool(b)
	default:
		return "null"
	}
}
