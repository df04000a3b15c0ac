package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/internal/buf"
	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/hexdump"
)

var (
	hexOffsetFlag string
	hexLength     int
	hexField      string
)

func init() {
	cmd := newHexCmd()
	cmd.Flags().StringVar(&hexOffsetFlag, "offset", "0", "Start offset (hex)")
	cmd.Flags().IntVarP(&hexLength, "length", "n", 0, "Bytes to dump (default: one page)")
	cmd.Flags().StringVar(&hexField, "field", "", "Dump the page around this field")
	rootCmd.AddCommand(cmd)
}

func newHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex <file>",
		Short: "Hex dump part of a record file",
		Long: `The hex command prints offset, hex and ASCII columns for a byte range.
Offsets are hexadecimal, with or without a 0x prefix.

Example:
  mrdfctl hex car.mrdf
  mrdfctl hex car.mrdf --offset 80 -n 64
  mrdfctl hex car.mrdf --field Wheelbase_m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHex(args)
		},
	}
	return cmd
}

func runHex(args []string) error {
	s, cfg, err := openFile(args[0])
	if err != nil {
		return err
	}

	data := s.Buffer().View()
	perLine := cfg.Hex.BytesPerLine
	pager := hexdump.NewPager(len(data), perLine, cfg.Hex.PageLines)

	start, err := codec.ParseOffset(hexOffsetFlag)
	if err != nil {
		return err
	}
	if hexField != "" {
		def, err := s.Def(hexField)
		if err != nil {
			return err
		}
		start = def.Offset
		pager.Focus(def.Offset, def.Width())
	} else {
		pager.Jump(start)
	}

	length := hexLength
	if length <= 0 {
		length = pager.PageSize()
	}
	from := pager.Anchor()
	if hexLength > 0 {
		from = start
	}
	if !buf.Has(data, from, 1) {
		return fmt.Errorf("offset 0x%X is beyond end of file (%s)", from, formatSize(len(data)))
	}
	length = buf.Clamp(length, 1, len(data)-from)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   args[0],
			"offset": hexOffset(from),
			"length": length,
			"hex":    codec.FormatRaw(data[from : from+length]),
		})
	}

	for _, line := range hexdump.Lines(data, from, length, perLine) {
		printInfo("%s\n", line)
	}
	return nil
}
