package main

import (
	"github.com/spf13/cobra"
)

var profilesFields bool

func init() {
	cmd := newProfilesCmd()
	cmd.Flags().BoolVar(&profilesFields, "fields", false, "List each profile's field table")
	rootCmd.AddCommand(cmd)
}

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available profiles",
		Long: `The profiles command lists the built-in profiles and any loaded from
the configured profile directories.

Example:
  mrdfctl profiles
  mrdfctl profiles --fields`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(args)
		},
	}
	return cmd
}

func runProfiles(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	reg := s.Registry()
	all := reg.All()

	if jsonOut {
		var out []map[string]interface{}
		for _, p := range all {
			entry := map[string]interface{}{
				"key":      p.Key(),
				"label":    p.Label(),
				"fields":   p.Len(),
				"min_size": p.MinSize(),
				"default":  p.Key() == reg.Default().Key(),
			}
			if profilesFields {
				var defs []map[string]interface{}
				for _, d := range p.Fields() {
					defs = append(defs, map[string]interface{}{
						"name":    d.Name,
						"section": d.Section,
						"offset":  hexOffset(d.Offset),
						"type":    d.Kind.String(),
					})
				}
				entry["field_table"] = defs
			}
			out = append(out, entry)
		}
		return printJSON(map[string]interface{}{"profiles": out})
	}

	printInfo("\nProfiles (%d):\n", len(all))
	for _, p := range all {
		marker := " "
		if p.Key() == reg.Default().Key() {
			marker = "*"
		}
		printInfo("%s %-12s %-24s %3d fields, min %s\n", marker, p.Key(), p.Label(), p.Len(), formatSize(p.MinSize()))
		if profilesFields {
			for _, d := range p.Fields() {
				printInfo("    %s  %-8s %-10s %s\n", hexOffset(d.Offset), d.Kind, d.Section, d.Name)
			}
		}
	}
	return nil
}
