package main

import (
	"github.com/spf13/cobra"
)

var getShowRaw bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowRaw, "raw", false, "Show field type, offset and raw bytes")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <field>",
		Short: "Get a field value",
		Long: `The get command decodes a single field and prints its value.

Example:
  mrdfctl get car.mrdf TopSpeed_mps
  mrdfctl get car.mrdf EngineType --raw
  mrdfctl get car.mrdf Mass_kg --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	s, _, err := openFile(args[0])
	if err != nil {
		return err
	}

	f, err := s.Field(args[1])
	if err != nil {
		return err
	}
	v := newFieldView(f)

	if jsonOut {
		return printJSON(v)
	}

	if getShowRaw {
		printInfo("%s (%s @ %s): %s\n", v.Display, v.Type, v.Offset, v.Raw)
	} else {
		printInfo("%s\n", v.Display)
	}
	if verbose && v.Note != "" {
		printVerbose("  %s\n", v.Note)
	}
	return nil
}
