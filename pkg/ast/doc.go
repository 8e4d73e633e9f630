// Package ast provides the in-memory representation of a parsed .reg file.
//
// The structure is a strict two-level map: a Tree maps key paths to
// ValueSets, and a ValueSet maps value names to Values. Both levels keep
// first-declaration order and compare names case-insensitively, matching
// how Windows treats key and value names.
//
// # Values
//
// Value is a closed sum type over the six shapes a .reg file can express:
//
//	String            "text"
//	MultiString       hex(2):...
//	ExpandableString  hex(7):...
//	Dword             dword:xxxxxxxx
//	Qword             qword:... or hex(b):...
//	Binary            hex:... or hex(0):...
//
// Consumers type-switch on the concrete type. Each value also exposes its
// canonical byte serialization through Bytes(), which is what a hive writer
// would store.
//
// # Usage Example
//
//	vs, ok := tree.Lookup(`HKEY_CURRENT_USER\Software\Test`)
//	if !ok {
//		return errNotFound
//	}
//	switch v := mustGet(vs, "Count").(type) {
//	case ast.Dword:
//		fmt.Println(uint32(v))
//	case ast.String:
//		fmt.Println(string(v))
//	}
//
// # Validation
//
// Validate checks a finished tree against types.Limits; the parser applies
// the same checks incrementally while building.
package ast
