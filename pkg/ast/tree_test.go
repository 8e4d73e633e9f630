package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	tree := NewTree()
	if tree.Len() != 0 {
		t.Fatalf("new tree should be empty, got %d keys", tree.Len())
	}
	if len(tree.Keys()) != 0 {
		t.Errorf("Keys() should be empty, got %v", tree.Keys())
	}
	if len(tree.DeletedKeys()) != 0 {
		t.Errorf("DeletedKeys() should be empty, got %v", tree.DeletedKeys())
	}
}

func TestTreeOpen_CaseInsensitiveReopen(t *testing.T) {
	tree := NewTree()

	vs, existed := tree.Open(`HKEY_CURRENT_USER\Software\Test`)
	require.False(t, existed)
	vs.Set("Name", String("Value"))

	again, existed := tree.Open(`hkey_current_user\SOFTWARE\test`)
	require.True(t, existed)
	assert.Same(t, vs, again)
	assert.Equal(t, `HKEY_CURRENT_USER\Software\Test`, again.Path, "first spelling wins")

	again.Set("Other", Dword(1))
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 2, vs.Len())
}

func TestTreeKeys_InsertionOrder(t *testing.T) {
	tree := NewTree()
	for _, p := range []string{`B`, `A`, `C`, `a`} {
		tree.Open(p)
	}
	assert.Equal(t, []string{"B", "A", "C"}, tree.Keys())

	sets := tree.ValueSets()
	require.Len(t, sets, 3)
	assert.Equal(t, "A", sets[1].Path)
}

func TestTreeLookup_Missing(t *testing.T) {
	tree := NewTree()
	tree.Open("Present")

	_, ok := tree.Lookup("Absent")
	assert.False(t, ok)

	vs, ok := tree.Lookup("PRESENT")
	require.True(t, ok)
	assert.Equal(t, "Present", vs.Path)
}

func TestTreeDeleteKey_RemovesSubtree(t *testing.T) {
	tree := NewTree()
	tree.Open(`HKLM\Software\App`)
	tree.Open(`HKLM\Software\App\Sub`)
	tree.Open(`HKLM\Software\AppOther`)
	tree.Open(`HKLM\System`)

	tree.DeleteKey(`hklm\software\app`)
	tree.DeleteKey(`HKLM\Software\App`) // recorded once

	assert.Equal(t, []string{`HKLM\Software\AppOther`, `HKLM\System`}, tree.Keys())
	assert.Equal(t, []string{`hklm\software\app`}, tree.DeletedKeys())

	_, ok := tree.Lookup(`HKLM\Software\App\Sub`)
	assert.False(t, ok)
	vs, ok := tree.Lookup(`HKLM\System`)
	require.True(t, ok)
	assert.Equal(t, `HKLM\System`, vs.Path)

	_, existed := tree.Open(`HKLM\Software\App`)
	assert.False(t, existed, "a deleted key is re-created fresh")
}

func TestTreeDeleteKey_Unknown(t *testing.T) {
	tree := NewTree()
	tree.Open("Keep")
	tree.DeleteKey("Missing")
	assert.Equal(t, []string{"Keep"}, tree.Keys())
	assert.Equal(t, []string{"Missing"}, tree.DeletedKeys())
}

func TestValueSet_SetOverwritesInPlace(t *testing.T) {
	vs := newValueSet("K")
	assert.False(t, vs.Set("A", String("1")))
	assert.False(t, vs.Set("B", Dword(2)))
	assert.True(t, vs.Set("a", String("3")))

	assert.Equal(t, []string{"A", "B"}, vs.Names())
	v, ok := vs.Get("A")
	require.True(t, ok)
	assert.Equal(t, String("3"), v)
}

func TestValueSet_DefaultValue(t *testing.T) {
	vs := newValueSet("K")
	vs.Set(DefaultValueName, String("x"))

	v, ok := vs.Get("")
	require.True(t, ok)
	assert.Equal(t, String("x"), v)

	entries := vs.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Name)
}

func TestValueSet_Delete(t *testing.T) {
	vs := newValueSet("K")
	vs.Set("A", Dword(1))
	vs.Set("B", Dword(2))
	vs.Set("C", Dword(3))

	assert.True(t, vs.Delete("b"))
	assert.False(t, vs.Delete("missing"))

	assert.Equal(t, []string{"A", "C"}, vs.Names())
	v, ok := vs.Get("C")
	require.True(t, ok)
	assert.Equal(t, Dword(3), v)
	assert.Equal(t, []string{"b", "missing"}, vs.Deleted())

	vs.Set("B", Dword(4))
	assert.Equal(t, []string{"A", "C", "B"}, vs.Names())
}

func TestTreeValueCount(t *testing.T) {
	tree := NewTree()
	a, _ := tree.Open("A")
	a.Set("x", Dword(1))
	a.Set("y", Dword(2))
	b, _ := tree.Open("B")
	b.Set("", String("d"))
	assert.Equal(t, 3, tree.ValueCount())
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{`HKEY_CURRENT_USER`, []string{"HKEY_CURRENT_USER"}},
		{`HKEY_CURRENT_USER\Software\Test`, []string{"HKEY_CURRENT_USER", "Software", "Test"}},
		{`\Leading\\Double\`, []string{"Leading", "Double"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.path))
		})
	}
}
