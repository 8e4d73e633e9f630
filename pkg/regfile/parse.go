package regfile

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/regkit/internal/mmfile"
	"github.com/joshuapare/regkit/internal/regmerge"
	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/pkg/ast"
)

// Parse reads a .reg document from r.
//
// On success the result holds every key in first-declaration order. In
// lenient mode, values that could not be decoded are listed in
// res.Diagnostics. On failure the result is nil and the error wraps an
// *Error.
//
// Example:
//
//	f, _ := os.Open("changes.reg")
//	defer f.Close()
//	res, err := regfile.Parse(f, regfile.Options{})
func Parse(r io.Reader, opts Options) (*Result, error) {
	res, err := regtext.Parse(r, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse .reg data: %w", err)
	}
	return res, nil
}

// ParseString parses .reg content from a string.
//
// Example:
//
//	regContent := `Windows Registry Editor Version 5.00
//
//	[HKEY_LOCAL_MACHINE\Software\MyApp]
//	"Version"="1.0"
//	`
//	res, err := regfile.ParseString(regContent, regfile.Options{})
func ParseString(regContent string, opts Options) (*Result, error) {
	return Parse(strings.NewReader(regContent), opts)
}

// ParseBytes parses .reg content from bytes.
func ParseBytes(regData []byte, opts Options) (*Result, error) {
	return Parse(bytes.NewReader(regData), opts)
}

// ParseFile parses a .reg file. The file is memory-mapped for the duration
// of the parse; the returned tree does not reference the mapping.
func ParseFile(regPath string, opts Options) (*Result, error) {
	if !fileExists(regPath) {
		return nil, fmt.Errorf(".reg file not found: %s", regPath)
	}

	data, cleanup, err := mmfile.Map(regPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .reg file %s: %w", regPath, err)
	}
	defer cleanup()

	res, err := regtext.Parse(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse .reg file %s: %w", regPath, err)
	}
	return res, nil
}

// ParseFiles parses each file and layers them in order: a value in a later
// file replaces the same value from an earlier one. Short root names such
// as HKLM are expanded so both spellings address the same key. When
// opts.ApplyDeletions is set, [-Key] and "name"=- in a later file also
// remove content contributed by earlier files.
//
// Diagnostics from every file are combined, each tagged with its file path.
// The first file that fails to parse aborts the whole operation.
//
// Example:
//
//	res, stats, err := regfile.ParseFiles(
//	    []string{"base.reg", "patch1.reg", "patch2.reg"},
//	    regfile.Options{ApplyDeletions: true},
//	)
func ParseFiles(regPaths []string, opts Options) (*Result, MergeStats, error) {
	results := make([]*Result, 0, len(regPaths))
	var diags Diagnostics
	for _, p := range regPaths {
		res, err := ParseFile(p, opts)
		if err != nil {
			return nil, MergeStats{}, err
		}
		diags.Merge(res.Diagnostics, p)
		results = append(results, res)
	}

	mopts := DefaultMergeOptions()
	mopts.ApplyDeletes = opts.ApplyDeletions
	merged, stats := Merge(mopts, results...)
	merged.Diagnostics = diags
	return merged, stats, nil
}

// Merge layers already parsed results in order. Diagnostics are
// concatenated. A nil result contributes nothing but still counts in
// MergeStats.Layers.
//
// Example:
//
//	base, _ := regfile.ParseString(baseText, regfile.Options{})
//	patch, _ := regfile.ParseString(patchText, regfile.Options{})
//	merged, stats := regfile.Merge(regfile.DefaultMergeOptions(), base, patch)
func Merge(opts MergeOptions, results ...*Result) (*Result, MergeStats) {
	layers := make([]*ast.Tree, 0, len(results))
	var diags Diagnostics
	for _, r := range results {
		if r == nil {
			layers = append(layers, nil)
			continue
		}
		layers = append(layers, r.Tree)
		diags.Merge(r.Diagnostics, "")
	}

	tree, stats := regmerge.Overlay(layers, opts)
	return &Result{Tree: tree, Diagnostics: diags}, stats
}
