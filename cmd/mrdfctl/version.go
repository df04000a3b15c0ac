package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mrdfkit/mrdf/profile"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version  = "dev"
	commitID = "none"
	date     = "unknown"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and built-in profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func runVersion() error {
	builtin := profile.Builtin().All()
	keys := make([]string, 0, len(builtin))
	for _, p := range builtin {
		keys = append(keys, p.Key())
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"version":  version,
			"commit":   commitID,
			"built":    date,
			"profiles": keys,
		})
	}

	printInfo("mrdfctl %s (%s, built %s)\n", version, commitID, date)
	printInfo("  built-in profiles: %s\n", strings.Join(keys, ", "))
	return nil
}
