package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keysPrefix string

func init() {
	cmd := newKeysCmd()
	cmd.Flags().StringVar(&keysPrefix, "under", "", "Only list keys at or below this path")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <regfile>",
		Short: "List the keys a .reg file declares",
		Long: `The keys command lists every key in a .reg file in the order it was
first declared, with the number of values each key holds.

Example:
  regctl keys changes.reg
  regctl keys changes.reg --under "HKEY_LOCAL_MACHINE\\Software\\App"
  regctl keys changes.reg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

type keyInfo struct {
	Path   string `json:"path"`
	Values int    `json:"values"`
}

func runKeys(args []string) error {
	res, err := loadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	var keys []keyInfo
	for _, vs := range res.Tree.ValueSets() {
		if keysPrefix != "" && !underPath(vs.Path, keysPrefix) {
			continue
		}
		keys = append(keys, keyInfo{Path: vs.Path, Values: vs.Len()})
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":  args[0],
			"keys":  keys,
			"count": len(keys),
		})
	}

	for _, k := range keys {
		printInfo("%s (%d)\n", k.Path, k.Values)
	}
	return nil
}

// underPath reports whether path equals prefix or lies below it,
// ignoring case.
func underPath(path, prefix string) bool {
	if len(path) < len(prefix) || !strings.EqualFold(path[:len(prefix)], prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '\\'
}
