// Package mmfile maps .reg files into memory for parsing.
//
// Map returns the file contents and a cleanup function that must be called
// once the caller is done with the bytes. On unix and Windows the contents
// are a read-only mapping; elsewhere the file is read into memory and
// cleanup does nothing.
package mmfile

func noop() error { return nil }
