package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/edit"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

var (
	bitsClear  bool
	bitsOutput string
	bitsBackup bool
)

func init() {
	cmd := newBitsCmd()
	cmd.Flags().BoolVar(&bitsClear, "clear", false, "Clear every bit")
	cmd.Flags().StringVarP(&bitsOutput, "output", "o", "", "Write to this file instead of editing in place")
	cmd.Flags().BoolVar(&bitsBackup, "backup", false, "Create a .bak copy before editing in place")
	rootCmd.AddCommand(cmd)
}

func newBitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits <file> <field> [bit...]",
		Short: "Show or set the flags of a bitmask field",
		Long: `The bits command lists the legend of a bitmask field with the bits
that are currently set. Given bits (by label or mask), it replaces the field
value with exactly those bits.

Example:
  mrdfctl bits car.mrdf TyreAvailability
  mrdfctl bits car.mrdf TyreAvailability Medium Hard
  mrdfctl bits car.mrdf TyreAvailability 0x01 0x04
  mrdfctl bits car.mrdf TyreAvailability --clear`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBits(args)
		},
	}
	return cmd
}

func runBits(args []string) error {
	path := args[0]
	name := args[1]

	s, cfg, err := openFile(path)
	if err != nil {
		return err
	}
	def, err := s.Def(name)
	if err != nil {
		return err
	}
	if !def.IsBitmask() {
		return fmt.Errorf("field %s is not a bitmask", name)
	}

	if len(args) > 2 || bitsClear {
		var checked []uint32
		for _, tok := range args[2:] {
			mask, err := parseBit(def, tok)
			if err != nil {
				return err
			}
			checked = append(checked, mask)
		}
		if err := s.ApplyBits(name, checked); err != nil {
			return err
		}
		if err := commit(s, bitsOutput, bitsBackup || cfg.Backup); err != nil {
			return err
		}
	}

	f, err := s.Field(name)
	if err != nil {
		return err
	}
	set := edit.CheckedBits(def, f.Value)
	isSet := func(m uint32) bool {
		for _, c := range set {
			if c == m {
				return true
			}
		}
		return false
	}

	if jsonOut {
		var bits []map[string]interface{}
		for _, b := range def.Bits {
			bits = append(bits, map[string]interface{}{
				"mask":  fmt.Sprintf("0x%02X", b.Mask),
				"label": b.Label,
				"set":   isSet(b.Mask),
			})
		}
		return printJSON(map[string]interface{}{
			"field": name,
			"value": codec.FormatValue(def, f.Value),
			"bits":  bits,
		})
	}

	printInfo("%s = %s\n", name, codec.FormatValue(def, f.Value))
	for _, b := range def.Bits {
		box := "[ ]"
		if isSet(b.Mask) {
			box = "[x]"
		}
		printInfo("  %s 0x%02X %s\n", box, b.Mask, b.Label)
	}
	return nil
}

// parseBit resolves a bit token by legend label or numeric mask.
func parseBit(def types.FieldDef, tok string) (uint32, error) {
	for _, b := range def.Bits {
		if strings.EqualFold(b.Label, tok) {
			return b.Mask, nil
		}
	}
	n, err := strconv.ParseUint(tok, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown bit %q for %s", tok, def.Name)
	}
	for _, b := range def.Bits {
		if b.Mask == uint32(n) {
			return b.Mask, nil
		}
	}
	return 0, fmt.Errorf("mask 0x%02X is not in the %s legend", n, def.Name)
}
