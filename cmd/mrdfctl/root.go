package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/mrdfkit/internal/config"
	"github.com/joshuapare/mrdfkit/internal/logger"
	"github.com/joshuapare/mrdfkit/mrdf"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	profileFlag string
	configPath  string
)

var numbers = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "mrdfctl",
	Short: "Inspect and edit fixed-layout MRDF record files",
	Long: `mrdfctl reads MRDF records through a named field table (profile),
shows decoded values and raw bytes, and edits them in place. Files never
change size.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return logger.Init(cfg.LoggerOptions())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Force a profile instead of detecting one")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.mrdfkit/config.yaml)")
}

func execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newSession builds a session from the config, including user profiles.
func newSession(cfg *config.Config) (*mrdf.Session, error) {
	specs, err := mrdf.LoadSpecs(cfg.ProfileDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	s, err := mrdf.NewSession(mrdf.Options{Specs: specs, DefaultProfile: cfg.DefaultProfile})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// openFile opens path in a new session and applies --profile.
func openFile(path string) (*mrdf.Session, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := newSession(cfg)
	if err != nil {
		return nil, nil, err
	}

	printVerbose("Opening file: %s\n", path)
	if err := s.Open(path); err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	if profileFlag != "" {
		if err := s.SetProfile(profileFlag); err != nil {
			return nil, nil, err
		}
	}
	printVerbose("Profile: %s (%s)\n", s.Profile().Label(), s.DetectedBy())
	return s, cfg, nil
}

// commit saves the session to output, or in place when output is empty.
func commit(s *mrdf.Session, output string, backup bool) error {
	if output != "" {
		printVerbose("Writing to %s\n", output)
		return s.SaveAs(output)
	}
	if backup {
		bak, err := s.WriteBackup()
		if err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		printVerbose("Backup created: %s\n", bak)
	}
	return s.Save()
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatSize renders a byte count with thousands separators.
func formatSize(n int) string {
	return numbers.Sprintf("%d bytes", n)
}
