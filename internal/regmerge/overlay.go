package regmerge

import (
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
)

// Overlay layers parsed trees left to right into a new tree.
//
// Later layers win: a value set in layer N replaces the same value from any
// earlier layer, and keys merge by case-insensitive path. With ApplyDeletes,
// the [-Key] and "name"=- declarations recorded in a layer remove matching
// content from the earlier layers before that layer's own keys are added,
// which matches applying the files to a registry one after another.
//
// Example:
//
//	base, _ := regtext.Parse(baseFile, types.ParseOptions{ApplyDeletions: true})
//	patch, _ := regtext.Parse(patchFile, types.ParseOptions{ApplyDeletions: true})
//	merged, stats := Overlay([]*ast.Tree{base.Tree, patch.Tree}, DefaultOptions())
//	fmt.Printf("%d values overridden, %d removed\n",
//	    stats.Overridden, stats.ShadowedByDelete)
//
// The input trees are not modified. Values are shared with the inputs;
// they are immutable once parsed.
func Overlay(layers []*ast.Tree, opts Options) (*ast.Tree, Stats) {
	out := ast.NewTree()
	stats := Stats{Layers: len(layers)}

	canon := func(p string) string { return p }
	if opts.ExpandRootAliases {
		canon = CanonicalPath
	}

	for _, layer := range layers {
		if layer == nil {
			continue
		}
		stats.InputValues += layer.ValueCount()

		if opts.ApplyDeletes {
			stats.ShadowedByDelete += applyKeyDeletes(out, layer, canon)
		}

		for _, vs := range layer.ValueSets() {
			dst, _ := out.Open(canon(vs.Path))
			if opts.ApplyDeletes {
				for _, name := range vs.Deleted() {
					if dst.Delete(name) {
						stats.ShadowedByDelete++
					}
				}
			}
			for _, e := range vs.Entries() {
				if dst.Set(e.Name, e.Value) {
					stats.Overridden++
				}
			}
		}
	}

	stats.OutputKeys = out.Len()
	stats.OutputValues = out.ValueCount()
	return out, stats
}

// applyKeyDeletes removes from out every key the layer deleted, along with
// its subkeys, and returns how many values went with them.
func applyKeyDeletes(out, layer *ast.Tree, canon func(string) string) int {
	deleted := layer.DeletedKeys()
	if len(deleted) == 0 {
		return 0
	}

	index := make(map[string]bool, len(deleted))
	for _, p := range deleted {
		index[strings.ToLower(canon(p))] = true
	}

	removed := 0
	for _, vs := range out.ValueSets() {
		if isUnderDeleted(vs.Path, index) {
			removed += vs.Len()
		}
	}
	for _, p := range deleted {
		out.DeleteKey(canon(p))
	}
	return removed
}
