/*
Package regfile parses Windows Registry Editor 5.00 (.reg) files into an
in-memory tree of keys and typed values.

# Quick Start

Parse a file:

	res, err := regfile.ParseFile("changes.reg", regfile.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	for _, vs := range res.Tree.ValueSets() {
	    fmt.Println(vs.Path, vs.Names())
	}

# Features

  - Exact Registry Editor 5.00 header check
  - All regedit value forms: strings, dword, qword, hex, hex(N)
  - Quoted strings and hex streams that span lines
  - Case-insensitive key and value names, first spelling kept
  - Strict or lenient handling of malformed values
  - Optional [-Key] and "name"=- deletions
  - Configurable resource limits
  - Memory-mapped file input
  - Layering of several files, last write wins

# Values

Every value decodes to one of the ast value types:

	"name"="text"           ast.String
	"name"=dword:0000002a   ast.Dword
	"name"=qword:...        ast.Qword
	"name"=hex(b):...       ast.Qword (8 little-endian bytes)
	"name"=hex:... hex(0):  ast.Binary
	"name"=hex(2):...       ast.MultiString (raw UTF-16LE bytes)
	"name"=hex(7):...       ast.ExpandableString (raw UTF-16LE bytes)

The unnamed default value is written @ and stored under the empty name.

# Error Handling

Errors are *Error values with a Kind. Use errors.Is against the sentinels:

	_, err := regfile.ParseString(text, regfile.Options{})
	if errors.Is(err, regfile.ErrInvalidHexByte) {
	    var perr *regfile.Error
	    errors.As(err, &perr)
	    fmt.Println(perr.Line, perr.KeyPath, perr.ValueName)
	}

In lenient mode a malformed value is skipped and recorded instead:

	res, err := regfile.ParseString(text, regfile.Options{Mode: regfile.ModeLenient})
	fmt.Print(res.Diagnostics.FormatText())

Structural problems (bad header, value outside a key, unterminated
continuation, limits) abort in both modes.

# Multiple Files

Later files override earlier ones:

	res, stats, err := regfile.ParseFiles(
	    []string{"base.reg", "patch1.reg", "patch2.reg"},
	    regfile.Options{ApplyDeletions: true},
	)
	fmt.Printf("%d values overridden\n", stats.Overridden)
*/
package regfile
