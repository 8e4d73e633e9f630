package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/ast"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <regfile>",
		Short: "Show detailed statistics",
		Long: `The stats command shows statistics about a .reg file including
key/value counts, type distribution, size analysis, and more.

Example:
  regctl stats changes.reg
  regctl stats changes.reg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type RegStats struct {
	FilePath string `json:"file"`

	TotalKeys    int `json:"total_keys"`
	TotalValues  int `json:"total_values"`
	DeletedKeys  int `json:"deleted_keys"`
	MaxDepth     int `json:"max_depth"`
	Warnings     int `json:"warnings"`
	SkippedCount int `json:"skipped"`

	KeysByLevel map[int]int    `json:"keys_by_level"`
	ValueTypes  map[string]int `json:"value_types"`
	ValueSizes  map[string]int `json:"value_sizes"` // <100, 100-1K, 1K-10K, >10K

	LargestValue struct {
		Path string `json:"path"`
		Name string `json:"name"`
		Size int    `json:"size"`
	} `json:"largest_value"`
}

func runStats(args []string) error {
	res, err := loadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	s := res.Stats()
	stats := RegStats{
		FilePath:     args[0],
		TotalKeys:    s.KeyCount,
		TotalValues:  s.ValueCount,
		DeletedKeys:  s.DeletedKeys,
		Warnings:     s.Warnings,
		SkippedCount: s.SkippedCount,
		KeysByLevel:  make(map[int]int),
		ValueTypes:   make(map[string]int),
		ValueSizes:   make(map[string]int),
	}

	for _, vs := range res.Tree.ValueSets() {
		depth := len(ast.SplitPath(vs.Path))
		stats.KeysByLevel[depth]++
		stats.MaxDepth = max(stats.MaxDepth, depth)

		for _, e := range vs.Entries() {
			stats.ValueTypes[e.Value.Type().String()]++
			size := len(e.Value.Bytes())
			stats.ValueSizes[sizeBucket(size)]++
			if size > stats.LargestValue.Size {
				stats.LargestValue.Path = vs.Path
				stats.LargestValue.Name = e.Name
				stats.LargestValue.Size = size
			}
		}
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\n%s %s\n\n", paint(headerStyle, "Statistics for"), paint(pathStyle, stats.FilePath))
	printInfo("Keys:          %d\n", stats.TotalKeys)
	printInfo("Values:        %d\n", stats.TotalValues)
	printInfo("Deleted keys:  %d\n", stats.DeletedKeys)
	printInfo("Max depth:     %d\n", stats.MaxDepth)
	printInfo("Warnings:      %d\n", stats.Warnings)
	printInfo("Skipped:       %d\n", stats.SkippedCount)

	if len(stats.ValueTypes) > 0 {
		printInfo("\n%s\n", paint(headerStyle, "Value types:"))
		for _, name := range sortedKeys(stats.ValueTypes) {
			printInfo("  %-14s %d\n", name, stats.ValueTypes[name])
		}
	}
	if stats.LargestValue.Size > 0 {
		printInfo("\nLargest value: %s\\%s (%d bytes)\n",
			stats.LargestValue.Path, displayName(stats.LargestValue.Name), stats.LargestValue.Size)
	}
	return nil
}

func sizeBucket(n int) string {
	switch {
	case n < 100:
		return "<100"
	case n < 1024:
		return "100-1K"
	case n < 10*1024:
		return "1K-10K"
	default:
		return ">10K"
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

