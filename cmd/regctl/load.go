package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/regfile"
)

// maxDataPreview bounds how many bytes of binary data text output shows.
const maxDataPreview = 16

// loadFile parses one .reg file with the global flags.
func loadFile(path string) (*regfile.Result, error) {
	opts, err := parseOptions()
	if err != nil {
		return nil, err
	}
	printVerbose("Parsing: %s\n", path)
	return regfile.ParseFile(path, opts)
}

// displayName renders the default value's empty name the way regedit does.
func displayName(name string) string {
	if name == ast.DefaultValueName {
		return ast.DefaultValueDisplayName
	}
	return name
}

// formatData renders a value for text output.
func formatData(v ast.Value, hexNumbers bool) string {
	switch v := v.(type) {
	case ast.String:
		return fmt.Sprintf("%q", string(v))
	case ast.ExpandableString:
		return fmt.Sprintf("%q", v.Text())
	case ast.MultiString:
		parts := v.Strings()
		quoted := make([]string, len(parts))
		for i, p := range parts {
			quoted[i] = fmt.Sprintf("%q", p)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case ast.Dword:
		if hexNumbers {
			return fmt.Sprintf("0x%08x", uint32(v))
		}
		return fmt.Sprintf("%d", uint32(v))
	case ast.Qword:
		if hexNumbers {
			return fmt.Sprintf("0x%016x", uint64(v))
		}
		return fmt.Sprintf("%d", uint64(v))
	case ast.Binary:
		if len(v) > maxDataPreview {
			return hex.EncodeToString(v[:maxDataPreview]) + fmt.Sprintf("... (%d bytes)", len(v))
		}
		return hex.EncodeToString(v)
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// jsonData renders a value for JSON output.
func jsonData(v ast.Value) any {
	switch v := v.(type) {
	case ast.String:
		return string(v)
	case ast.ExpandableString:
		return v.Text()
	case ast.MultiString:
		return v.Strings()
	case ast.Dword:
		return uint32(v)
	case ast.Qword:
		return uint64(v)
	case ast.Binary:
		return hex.EncodeToString(v)
	default:
		return nil
	}
}
