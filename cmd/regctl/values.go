package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	valuesShowType bool
	valuesHex      bool
)

func init() {
	cmd := newValuesCmd()
	cmd.Flags().BoolVar(&valuesShowType, "show-type", true, "Show registry type")
	cmd.Flags().BoolVar(&valuesHex, "hex", false, "Show numeric values as hex")
	rootCmd.AddCommand(cmd)
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <regfile> <key>",
		Short: "List the values declared for a key",
		Long: `The values command lists every value a .reg file sets on a key.
Key paths match case-insensitively.

Example:
  regctl values changes.reg "HKEY_LOCAL_MACHINE\\Software\\App"
  regctl values changes.reg "HKEY_LOCAL_MACHINE\\Software\\App" --hex
  regctl values changes.reg "HKEY_LOCAL_MACHINE\\Software\\App" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	res, err := loadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	vs, ok := res.Tree.Lookup(args[1])
	if !ok {
		return fmt.Errorf("key not found: %s", args[1])
	}

	if jsonOut {
		result := make(map[string]any, vs.Len())
		for _, e := range vs.Entries() {
			if valuesShowType {
				result[displayName(e.Name)] = map[string]any{
					"type": e.Value.Type().String(),
					"data": jsonData(e.Value),
				}
			} else {
				result[displayName(e.Name)] = jsonData(e.Value)
			}
		}
		return printJSON(result)
	}

	for _, e := range vs.Entries() {
		if valuesShowType {
			printInfo("%s\t%s\t%s\n", displayName(e.Name), e.Value.Type(), formatData(e.Value, valuesHex))
		} else {
			printInfo("%s\t%s\n", displayName(e.Name), formatData(e.Value, valuesHex))
		}
	}
	return nil
}
