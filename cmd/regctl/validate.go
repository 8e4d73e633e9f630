package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/regfile"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <regfile>...",
		Short: "Check .reg files for errors",
		Long: `The validate command parses each .reg file and reports every problem
found. With --lenient, malformed values are listed and parsing continues;
otherwise the first problem in a file stops that file.

Limits presets:
  default - Accepts anything regedit exports
  strict  - Smaller ceilings for untrusted input
  relaxed - Larger ceilings for hand-built files

Example:
  regctl validate changes.reg
  regctl validate base.reg patch.reg --lenient
  regctl validate changes.reg --limits strict --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

type validateResult struct {
	File   string               `json:"file"`
	Valid  bool                 `json:"valid"`
	Error  string               `json:"error,omitempty"`
	Line   int                  `json:"line,omitempty"`
	Keys   int                  `json:"keys"`
	Values int                  `json:"values"`
	Issues *regfile.Diagnostics `json:"issues,omitempty"`
}

func runValidate(args []string) error {
	results := make([]validateResult, 0, len(args))
	failed := 0
	for _, path := range args {
		r := validateResult{File: path}
		res, err := loadFile(path)
		if err != nil {
			r.Error = err.Error()
			var perr *regfile.Error
			if errors.As(err, &perr) {
				r.Line = perr.Line
			}
		} else {
			r.Keys = res.Tree.Len()
			r.Values = res.Tree.ValueCount()
			if res.Diagnostics.HasAnyIssues() {
				r.Issues = &res.Diagnostics
			}
		}
		r.Valid = err == nil && (r.Issues == nil || !r.Issues.HasErrors())
		if !r.Valid {
			failed++
		}
		results = append(results, r)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printValidateText(r)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) invalid", failed, len(args))
	}
	return nil
}

func printValidateText(r validateResult) {
	printInfo("\n%s\n", paint(pathStyle, r.File))
	if r.Error != "" {
		printInfo("  %s %s\n", paint(errorStyle, "✗"), r.Error)
		return
	}
	printInfo("  %d keys, %d values\n", r.Keys, r.Values)
	if r.Issues != nil {
		for _, line := range strings.Split(strings.TrimRight(r.Issues.FormatText(), "\n"), "\n") {
			printInfo("  %s\n", paintDiagnostic(line))
		}
	}
	if r.Valid {
		printInfo("  %s\n", paint(successStyle, "✓ VALID"))
	} else {
		printInfo("  %s\n", paint(errorStyle, "✗ INVALID"))
	}
}
