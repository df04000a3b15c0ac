package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
)

var (
	pokeOutput string
	pokeBackup bool
	pokeLength int
)

func init() {
	cmd := newPokeCmd()
	cmd.Flags().StringVarP(&pokeOutput, "output", "o", "", "Write to this file instead of editing in place")
	cmd.Flags().IntVarP(&pokeLength, "length", "n", 0, "Size of the target range; the byte string must fill it exactly")
	cmd.Flags().BoolVar(&pokeBackup, "backup", false, "Create a .bak copy before editing in place")
	rootCmd.AddCommand(cmd)
}

func newPokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poke <file> <offset> <hex>",
		Short: "Overwrite raw bytes",
		Long: `The poke command overwrites bytes starting at a hex offset. The byte
string is hex pairs separated by spaces or commas; the file size never
changes, so the range must lie inside the file. With --length the byte
string must be exactly that long.

Example:
  mrdfctl poke car.mrdf C0 "01 00 00 00"
  mrdfctl poke car.mrdf 0x20 00,00,B4,42 -n 4 -o tuned.mrdf`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoke(args)
		},
	}
	return cmd
}

func runPoke(args []string) error {
	path := args[0]

	off, err := codec.ParseOffset(args[1])
	if err != nil {
		return err
	}
	data, err := codec.ParseHexBytes(args[2])
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("no bytes given")
	}
	length := len(data)
	if pokeLength > 0 {
		length = pokeLength
	}

	s, cfg, err := openFile(path)
	if err != nil {
		return err
	}
	if err := s.Overwrite(off, length, args[2]); err != nil {
		return fmt.Errorf("failed to write bytes: %w", err)
	}
	if err := commit(s, pokeOutput, pokeBackup || cfg.Backup); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"offset":  hexOffset(off),
			"length":  len(data),
			"success": true,
		})
	}

	printInfo("✓ Wrote %d byte(s) at %s\n", len(data), hexOffset(off))
	return nil
}
