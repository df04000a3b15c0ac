package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDetectCmd())
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "Report which profile each file is read with",
		Long: `The detect command runs profile detection on one or more files and
prints the chosen profile and the rule that decided it. The --profile flag
is ignored.

Example:
  mrdfctl detect data/physics/car.mrdf
  mrdfctl detect *.mrdf --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(args)
		},
	}
	return cmd
}

func runDetect(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	type detection struct {
		File    string `json:"file"`
		Profile string `json:"profile"`
		Label   string `json:"label"`
		Rule    string `json:"rule"`
		Size    int    `json:"size"`
	}
	var results []detection
	for _, path := range args {
		printVerbose("Opening file: %s\n", path)
		if err := s.Open(path); err != nil {
			return err
		}
		results = append(results, detection{
			File:    path,
			Profile: s.Profile().Key(),
			Label:   s.Profile().Label(),
			Rule:    s.DetectedBy(),
			Size:    s.Size(),
		})
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"files": results})
	}

	for _, r := range results {
		printInfo("%s: %s [%s]\n", r.File, r.Label, r.Rule)
	}
	return nil
}
