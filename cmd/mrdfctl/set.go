package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
)

var (
	setOutput string
	setBackup bool
	setDryRun bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write to this file instead of editing in place")
	cmd.Flags().BoolVar(&setBackup, "backup", false, "Create a .bak copy before editing in place")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Validate and show the result without writing")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <field> <value>",
		Short: "Set a field value",
		Long: `The set command encodes a value into one field and writes the file.
Floats accept decimal notation, integers accept decimal or 0x hex, booleans
accept true/false/1/0, and enumerated fields accept their label.

Example:
  mrdfctl set car.mrdf TopSpeed_mps 92.5
  mrdfctl set car.mrdf EngineType V10
  mrdfctl set car.mrdf ABS true --backup
  mrdfctl set car.mrdf Mass_kg 1180 -o tuned.mrdf`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]
	name := args[1]
	literal := args[2]

	s, cfg, err := openFile(path)
	if err != nil {
		return err
	}

	before, err := s.Field(name)
	if err != nil {
		return err
	}
	if err := s.Apply(name, literal); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	after, err := s.Field(name)
	if err != nil {
		return err
	}

	if !setDryRun {
		if err := commit(s, setOutput, setBackup || cfg.Backup); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"field":   name,
			"before":  codec.FormatValue(before.Def, before.Value),
			"after":   codec.FormatValue(after.Def, after.Value),
			"raw":     codec.FormatRaw(after.Raw),
			"written": !setDryRun,
		})
	}

	printInfo("\nSetting %s in %s:\n", name, path)
	printInfo("  Before: %s\n", codec.FormatValue(before.Def, before.Value))
	printInfo("  After:  %s\n", codec.FormatValue(after.Def, after.Value))
	printInfo("  Bytes:  %s\n", codec.FormatRaw(after.Raw))
	if setDryRun {
		printInfo("\n✓ Dry run, nothing written\n")
		return nil
	}
	printInfo("\n✓ Value set successfully\n")
	if setOutput != "" {
		printInfo("Written to: %s\n", setOutput)
	}
	return nil
}
