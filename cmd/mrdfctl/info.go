package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Display record file information",
		Long: `The info command shows the size of a record file, the profile it was
read with and the rule that chose that profile.

Example:
  mrdfctl info car.mrdf
  mrdfctl info car.mrdf --profile physics
  mrdfctl info car.mrdf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	s, _, err := openFile(path)
	if err != nil {
		return err
	}

	p := s.Profile()
	res := s.Fields()

	if jsonOut {
		result := map[string]interface{}{
			"file":         path,
			"size":         s.Size(),
			"profile":      p.Key(),
			"label":        p.Label(),
			"detected_by":  s.DetectedBy(),
			"fields":       len(res.Fields),
			"skipped":      res.SkipCount(),
			"min_size":     p.MinSize(),
			"fully_mapped": s.Size() >= p.MinSize(),
		}
		return printJSON(result)
	}

	printInfo("\nRecord Information:\n")
	printInfo("  File:        %s\n", path)
	printInfo("  Size:        %s\n", formatSize(s.Size()))
	printInfo("  Profile:     %s (%s)\n", p.Label(), p.Key())
	printInfo("  Detected by: %s\n", s.DetectedBy())
	printInfo("\nFields:\n")
	printInfo("  Decoded:     %d\n", len(res.Fields))
	printInfo("  Skipped:     %d\n", res.SkipCount())
	if res.SkipCount() > 0 {
		printInfo("\n⚠ File is shorter than the %s layout (%s)\n", p.Label(), formatSize(p.MinSize()))
	}

	return nil
}
