package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf"
	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

var diffUnmapped bool

func init() {
	cmd := newDiffCmd()
	cmd.Flags().BoolVar(&diffUnmapped, "unmapped", true, "Also report differing bytes outside any field")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two record files field by field",
		Long: `The diff command decodes both files with the profile detected for the
first (or --profile) and lists the fields whose bytes differ.

Example:
  mrdfctl diff stock.mrdf tuned.mrdf
  mrdfctl diff stock.mrdf tuned.mrdf --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	s, _, err := openFile(args[0])
	if err != nil {
		return err
	}
	a := s.Buffer().View()
	b, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	p := s.Profile()
	diffs := mrdf.DiffFields(a, b, p)
	var unmapped [][2]int
	if diffUnmapped {
		unmapped = mrdf.UnmappedDiff(a, b, p)
	}

	if jsonOut {
		var fields []map[string]interface{}
		for _, d := range diffs {
			fields = append(fields, map[string]interface{}{
				"name":   d.Def.Name,
				"offset": hexOffset(d.Def.Offset),
				"a":      sideValue(d.A),
				"b":      sideValue(d.B),
			})
		}
		var ranges []map[string]interface{}
		for _, r := range unmapped {
			ranges = append(ranges, map[string]interface{}{"offset": hexOffset(r[0]), "length": r[1]})
		}
		return printJSON(map[string]interface{}{
			"profile":  p.Key(),
			"fields":   fields,
			"unmapped": ranges,
			"size_a":   len(a),
			"size_b":   len(b),
		})
	}

	printInfo("Comparing %s → %s (%s)\n", args[0], args[1], p.Label())
	if len(a) != len(b) {
		printInfo("  Size: %s → %s\n", formatSize(len(a)), formatSize(len(b)))
	}
	if len(diffs) == 0 && len(unmapped) == 0 {
		printInfo("\n✓ No differences\n")
		return nil
	}
	for _, d := range diffs {
		printInfo("  ~ %s  %-28s %s → %s\n", hexOffset(d.Def.Offset), d.Def.Name, sideValue(d.A), sideValue(d.B))
	}
	for _, r := range unmapped {
		printInfo("  ? %s  %d unmapped byte(s): %s → %s\n", hexOffset(r[0]), r[1],
			codec.FormatRaw(a[r[0]:r[0]+r[1]]), codec.FormatRaw(b[r[0]:r[0]+r[1]]))
	}
	printInfo("\n%d field(s) differ\n", len(diffs))
	return nil
}

func sideValue(f *types.FieldInstance) string {
	if f == nil {
		return "(absent)"
	}
	return codec.FormatValue(f.Def, f.Value)
}
