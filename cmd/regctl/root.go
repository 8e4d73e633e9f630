package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/regfile"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	lenient   bool
	deletions bool
	limitsSet string
	encoding  string
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Inspect and validate Windows .reg files",
	Long: `regctl parses Windows Registry Editor 5.00 (.reg) files and reports
their keys, values and any problems found. Several files can be layered
to see the effective result of applying them in order.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&noColor, "no-color", os.Getenv("NO_COLOR") != "", "Disable colored output")
	rootCmd.PersistentFlags().
		BoolVar(&lenient, "lenient", false, "Skip malformed values instead of failing")
	rootCmd.PersistentFlags().
		BoolVar(&deletions, "deletions", false, `Honor [-Key] and "name"=- lines`)
	rootCmd.PersistentFlags().
		StringVar(&limitsSet, "limits", "default", "Limits preset (default, strict, relaxed)")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, Windows-1252, ISO-8859-1)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// parseOptions builds parse options from the global flags.
func parseOptions() (regfile.Options, error) {
	limits, err := limitsPreset(limitsSet)
	if err != nil {
		return regfile.Options{}, err
	}
	opts := regfile.Options{
		Limits:         &limits,
		InputEncoding:  encoding,
		ApplyDeletions: deletions,
	}
	if lenient {
		opts.Mode = regfile.ModeLenient
	}
	if verbose && !quiet {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return opts, nil
}

// limitsPreset maps a preset name to its limits.
func limitsPreset(name string) (regfile.Limits, error) {
	switch name {
	case "default":
		return regfile.DefaultLimits(), nil
	case "strict":
		return regfile.StrictLimits(), nil
	case "relaxed":
		return regfile.RelaxedLimits(), nil
	default:
		return regfile.Limits{}, fmt.Errorf("unknown limits preset: %s (must be default, strict, or relaxed)", name)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
