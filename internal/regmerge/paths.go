package regmerge

import (
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
)

// rootAliases maps short hive root names to their long forms.
var rootAliases = map[string]string{
	"HKLM": "HKEY_LOCAL_MACHINE",
	"HKCU": "HKEY_CURRENT_USER",
	"HKU":  "HKEY_USERS",
	"HKCR": "HKEY_CLASSES_ROOT",
	"HKCC": "HKEY_CURRENT_CONFIG",
}

// CanonicalPath expands a short hive root to its long name. Other paths are
// returned unchanged.
//
// Example:
//
//	CanonicalPath("HKLM\\Software\\Test") → "HKEY_LOCAL_MACHINE\\Software\\Test"
//	CanonicalPath("hkcu")                 → "HKEY_CURRENT_USER"
//	CanonicalPath("Software\\Test")       → "Software\\Test"
func CanonicalPath(path string) string {
	root, rest, found := strings.Cut(path, ast.RegistryPathSeparator)
	long, ok := rootAliases[strings.ToUpper(root)]
	if !ok {
		return path
	}
	if !found {
		return long
	}
	return long + ast.RegistryPathSeparator + rest
}

// isUnderDeleted reports whether path equals or lies below one of the
// deleted paths. deleted holds lowercased paths.
//
// Algorithm: Walk up the path hierarchy checking each ancestor.
// Complexity: O(D) where D = path depth (typically 5-10).
func isUnderDeleted(path string, deleted map[string]bool) bool {
	path = strings.ToLower(path)
	for {
		if deleted[path] {
			return true
		}
		idx := strings.LastIndex(path, ast.RegistryPathSeparator)
		if idx <= 0 {
			return false
		}
		path = path[:idx]
	}
}
