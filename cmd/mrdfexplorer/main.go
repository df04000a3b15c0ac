package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mrdfkit/internal/config"
	"github.com/joshuapare/mrdfkit/internal/logger"
	"github.com/joshuapare/mrdfkit/mrdf"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false
	configPath := ""

	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--debug", "-d":
			debugMode = true
		case "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	opts := cfg.LoggerOptions()
	if debugMode {
		opts.Enabled = true
		opts.Level = "debug"
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer logger.Sync()

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("mrdfexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting mrdfexplorer", "path", path, "debug", debugMode)

	specs, err := mrdf.LoadSpecs(cfg.ProfileDirs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load profiles: %v\n", err)
		os.Exit(1)
	}
	s, err := mrdf.NewSession(mrdf.Options{Specs: specs, DefaultProfile: cfg.DefaultProfile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := s.Open(path); err != nil {
		logger.Error("open failed", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("mrdfexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: mrdfexplorer [options] <file.mrdf>\n")
	fmt.Fprintf(os.Stderr, "Try 'mrdfexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("mrdfexplorer - Interactive editor for MRDF record files")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  mrdfexplorer [options] <file.mrdf>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Shows the fields of a record grouped by section next to a hex view,")
	fmt.Println("  and edits values in place. The file size never changes.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    ↑/k, ↓/j    Navigate fields")
	fmt.Println("    e, Enter    Edit value (Enter on a section folds it)")
	fmt.Println("    x / X       Overwrite field bytes / bytes at an offset")
	fmt.Println("    Tab, Space  Focus detail pane, toggle bitmask bits")
	fmt.Println("    p           Next profile")
	fmt.Println("    r / R       Revert field / discard all edits")
	fmt.Println("    Ctrl+S      Save")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug      Enable debug logging to ~/.mrdfkit/logs/")
	fmt.Println("      --config     Config file (default ~/.mrdfkit/config.yaml)")
	fmt.Println("  -h, --help       Show this help message")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println()
	fmt.Println("For scripted edits, use the 'mrdfctl' command instead.")
}
