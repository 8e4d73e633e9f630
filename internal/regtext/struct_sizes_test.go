package regtext

import (
	"testing"
	"unsafe"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

func TestStructSizes(t *testing.T) {
	t.Logf("Parser struct sizes:")
	t.Logf("  physLine:       %d bytes", unsafe.Sizeof(physLine{}))
	t.Logf("  decodedValue:   %d bytes", unsafe.Sizeof(decodedValue{}))
	t.Logf("  ast.Entry:      %d bytes", unsafe.Sizeof(ast.Entry{}))
	t.Logf("  types.Error:    %d bytes", unsafe.Sizeof(types.Error{}))

	t.Logf("\nValue sizes:")
	t.Logf("  ast.String:     %d bytes (header only)", unsafe.Sizeof(ast.String("")))
	t.Logf("  ast.Binary:     %d bytes (header only)", unsafe.Sizeof(ast.Binary(nil)))
	t.Logf("  ast.Dword:      %d bytes", unsafe.Sizeof(ast.Dword(0)))
	t.Logf("  ast.Qword:      %d bytes", unsafe.Sizeof(ast.Qword(0)))

	// A typical entry: a short name and a UTF-16LE path string.
	entry := ast.Entry{
		Name:  "ProgramFilesDir",
		Value: ast.String(`C:\Program Files`),
	}
	payload := len(entry.Value.Bytes())

	t.Logf("\nExample entry (struct + data):")
	t.Logf("  Entry struct:   %d bytes", unsafe.Sizeof(entry))
	t.Logf("    + Name:       %d bytes", len(entry.Name))
	t.Logf("    + UTF-16LE:   %d bytes", payload)

	if got := unsafe.Sizeof(ast.Dword(0)); got != ast.DWORDSize {
		t.Errorf("Dword is %d bytes, want %d", got, ast.DWORDSize)
	}
	if got := unsafe.Sizeof(ast.Qword(0)); got != ast.QWORDSize {
		t.Errorf("Qword is %d bytes, want %d", got, ast.QWORDSize)
	}
}
