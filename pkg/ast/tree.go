package ast

import (
	"strings"
)

// Tree is the parsed content of a .reg file: key paths mapped to the values
// declared under them. Keys keep the order of their first declaration and are
// looked up case-insensitively. A Tree exclusively owns its ValueSets.
type Tree struct {
	keys  []*ValueSet
	index map[string]int // lowercased path -> position in keys

	deleted      []string
	deletedIndex map[string]struct{}
}

// ValueSet holds the values of one key. Names are case-insensitive; the
// default value is stored under DefaultValueName ("").
type ValueSet struct {
	Path string

	entries []Entry
	index   map[string]int // lowercased name -> position in entries

	deleted []string
}

// Entry is one named value within a ValueSet.
type Entry struct {
	Name  string
	Value Value
}

// NewTree creates a new empty tree.
func NewTree() *Tree {
	return &Tree{
		index:        make(map[string]int),
		deletedIndex: make(map[string]struct{}),
	}
}

// Len returns the number of keys.
func (t *Tree) Len() int { return len(t.keys) }

// Keys returns the key paths in first-declaration order.
func (t *Tree) Keys() []string {
	out := make([]string, len(t.keys))
	for i, k := range t.keys {
		out[i] = k.Path
	}
	return out
}

// ValueSets returns the keys in first-declaration order.
func (t *Tree) ValueSets() []*ValueSet {
	out := make([]*ValueSet, len(t.keys))
	copy(out, t.keys)
	return out
}

// Lookup finds a key by path (case-insensitive).
func (t *Tree) Lookup(path string) (*ValueSet, bool) {
	i, ok := t.index[foldName(path)]
	if !ok {
		return nil, false
	}
	return t.keys[i], true
}

// Open returns the ValueSet for path, creating it if needed. existed reports
// whether the key was already present; an existing key is never reset.
func (t *Tree) Open(path string) (vs *ValueSet, existed bool) {
	if vs, ok := t.Lookup(path); ok {
		return vs, true
	}
	vs = newValueSet(path)
	t.index[foldName(path)] = len(t.keys)
	t.keys = append(t.keys, vs)
	return vs, false
}

// DeleteKey records a [-path] declaration. The key and every key below it
// that was declared earlier in the file is removed from the tree.
func (t *Tree) DeleteKey(path string) {
	folded := foldName(path)
	if _, seen := t.deletedIndex[folded]; !seen {
		t.deletedIndex[folded] = struct{}{}
		t.deleted = append(t.deleted, path)
	}

	prefix := folded + RegistryPathSeparator
	kept := t.keys[:0]
	removed := false
	for _, k := range t.keys {
		kf := foldName(k.Path)
		if kf == folded || strings.HasPrefix(kf, prefix) {
			removed = true
			continue
		}
		kept = append(kept, k)
	}
	if !removed {
		return
	}
	for i := len(kept); i < len(t.keys); i++ {
		t.keys[i] = nil
	}
	t.keys = kept
	t.reindex()
}

// DeletedKeys returns the [-path] declarations in first-seen order.
func (t *Tree) DeletedKeys() []string {
	out := make([]string, len(t.deleted))
	copy(out, t.deleted)
	return out
}

// ValueCount returns the number of values across all keys.
func (t *Tree) ValueCount() int {
	n := 0
	for _, k := range t.keys {
		n += k.Len()
	}
	return n
}

func (t *Tree) reindex() {
	clear(t.index)
	for i, k := range t.keys {
		t.index[foldName(k.Path)] = i
	}
}

func newValueSet(path string) *ValueSet {
	return &ValueSet{
		Path:  path,
		index: make(map[string]int),
	}
}

// Len returns the number of values.
func (v *ValueSet) Len() int { return len(v.entries) }

// Names returns value names in first-declaration order.
func (v *ValueSet) Names() []string {
	out := make([]string, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns the name/value pairs in first-declaration order.
func (v *ValueSet) Entries() []Entry {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Get finds a value by name (case-insensitive). Use "" for the default value.
func (v *ValueSet) Get(name string) (Value, bool) {
	i, ok := v.index[foldName(name)]
	if !ok {
		return nil, false
	}
	return v.entries[i].Value, true
}

// Set stores a value. Re-declaring a name overwrites the previous value in
// place and reports replaced=true.
func (v *ValueSet) Set(name string, val Value) (replaced bool) {
	key := foldName(name)
	if i, ok := v.index[key]; ok {
		v.entries[i].Value = val
		return true
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, Entry{Name: name, Value: val})
	return false
}

// Delete records a "name"=- declaration and removes the value if present.
func (v *ValueSet) Delete(name string) bool {
	v.deleted = append(v.deleted, name)

	key := foldName(name)
	i, ok := v.index[key]
	if !ok {
		return false
	}
	v.entries = append(v.entries[:i], v.entries[i+1:]...)
	delete(v.index, key)
	for j := i; j < len(v.entries); j++ {
		v.index[foldName(v.entries[j].Name)] = j
	}
	return true
}

// Deleted returns the names declared with "name"=- in declaration order.
func (v *ValueSet) Deleted() []string {
	out := make([]string, len(v.deleted))
	copy(out, v.deleted)
	return out
}

// foldName normalizes a key path or value name for case-insensitive lookup.
func foldName(s string) string {
	return strings.ToLower(s)
}

// SplitPath splits a registry path into segments, skipping empty ones.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	segments := make([]string, 0)
	start := 0
	for i := range len(path) {
		if path[i] == RegistryPathSeparator[0] {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}
	if start < len(path) {
		segments = append(segments, path[start:])
	}

	return segments
}
