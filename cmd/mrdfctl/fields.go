package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf/record"
)

var (
	fieldsFilter  string
	fieldsSection string
	fieldsRaw     bool
)

func init() {
	cmd := newFieldsCmd()
	cmd.Flags().StringVar(&fieldsFilter, "filter", "", "Only show fields whose name or section contains this text")
	cmd.Flags().StringVar(&fieldsSection, "section", "", "Only show fields in this section")
	cmd.Flags().BoolVar(&fieldsRaw, "raw", false, "Show raw bytes next to each value")
	rootCmd.AddCommand(cmd)
}

func newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields <file>",
		Short: "List decoded fields",
		Long: `The fields command decodes every field of the active profile and
prints them grouped by section. Fields beyond the end of the file are
counted as skipped.

Example:
  mrdfctl fields car.mrdf
  mrdfctl fields car.mrdf --section ENGINE
  mrdfctl fields car.mrdf --filter brake --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(args)
		},
	}
	return cmd
}

func runFields(args []string) error {
	s, _, err := openFile(args[0])
	if err != nil {
		return err
	}

	res := s.Fields().Filter(fieldsFilter)
	if fieldsSection != "" {
		res = onlySection(res, fieldsSection)
	}

	if jsonOut {
		views := make([]fieldView, 0, len(res.Fields))
		for _, f := range res.Fields {
			views = append(views, newFieldView(f))
		}
		return printJSON(map[string]interface{}{
			"file":    args[0],
			"profile": s.Profile().Key(),
			"fields":  views,
			"skipped": res.SkipCount(),
		})
	}

	for _, sec := range res.Sections() {
		printInfo("\n[%s]\n", sec.Name)
		for _, f := range sec.Fields {
			v := newFieldView(f)
			if fieldsRaw {
				printInfo("  %s  %-28s %-24s %s\n", v.Offset, v.Name, v.Display, v.Raw)
			} else {
				printInfo("  %s  %-28s %s\n", v.Offset, v.Name, v.Display)
			}
		}
	}
	if n := res.SkipCount(); n > 0 {
		printInfo("\n%d field(s) skipped (beyond end of file)\n", n)
	}
	return nil
}

func onlySection(r record.Result, name string) record.Result {
	var out record.Result
	for _, f := range r.Fields {
		if strings.EqualFold(f.Def.Section, name) {
			out.Fields = append(out.Fields, f)
		}
	}
	for _, sk := range r.Skipped {
		if strings.EqualFold(sk.Def.Section, name) {
			out.Skipped = append(out.Skipped, sk)
		}
	}
	return out
}
