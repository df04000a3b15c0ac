package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf"
)

var (
	patchOutput string
	patchBackup bool
	patchDryRun bool
)

func init() {
	cmd := newPatchCmd()
	cmd.Flags().StringVarP(&patchOutput, "output", "o", "", "Write to this file instead of editing in place")
	cmd.Flags().BoolVar(&patchBackup, "backup", false, "Create a .bak copy before editing in place")
	cmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Validate the patch without writing")
	rootCmd.AddCommand(cmd)
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file> <patch.yaml>",
		Short: "Apply a YAML patch of field values and raw bytes",
		Long: `The patch command applies a batch of edits. Every entry is validated
before any byte changes; a bad entry leaves the file untouched.

Patch format:
  profile: stats          # optional
  fields:
    TopSpeed_mps: 92.5
    EngineType: V10
  bytes:
    - {offset: "C0", hex: "01 00"}

Example:
  mrdfctl patch car.mrdf tune.yaml
  mrdfctl patch car.mrdf tune.yaml --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args)
		},
	}
	return cmd
}

func runPatch(args []string) error {
	path := args[0]

	p, err := mrdf.LoadPatch(args[1])
	if err != nil {
		return fmt.Errorf("failed to load patch: %w", err)
	}

	s, cfg, err := openFile(path)
	if err != nil {
		return err
	}
	n, err := s.ApplyPatch(p)
	if err != nil {
		return fmt.Errorf("failed to apply patch: %w", err)
	}
	if !patchDryRun {
		if err := commit(s, patchOutput, patchBackup || cfg.Backup); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"profile": s.Profile().Key(),
			"edits":   n,
			"written": !patchDryRun,
		})
	}

	printInfo("\nPatch %s:\n", args[1])
	printInfo("  Profile: %s\n", s.Profile().Label())
	printInfo("  Edits:   %d\n", n)
	if patchDryRun {
		printInfo("\n✓ Patch is valid, nothing written\n")
		return nil
	}
	printInfo("\n✓ Patch applied successfully\n")
	return nil
}
