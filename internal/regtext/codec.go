package regtext

import (
	"bytes"
	"io"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// Codec parses .reg documents with a fixed set of options.
type Codec struct {
	opts types.ParseOptions
}

// NewCodec creates a codec that applies opts to every parse.
func NewCodec(opts types.ParseOptions) *Codec {
	return &Codec{opts: opts}
}

// Options returns the options the codec was created with.
func (c *Codec) Options() types.ParseOptions {
	return c.opts
}

// Parse reads a .reg document from r.
func (c *Codec) Parse(r io.Reader) (*Result, error) {
	return Parse(r, c.opts)
}

// ParseBytes parses an in-memory .reg document.
func (c *Codec) ParseBytes(data []byte) (*Result, error) {
	return Parse(bytes.NewReader(data), c.opts)
}

// ParseString parses a .reg document held in a string.
func (c *Codec) ParseString(text string) (*Result, error) {
	return Parse(strings.NewReader(text), c.opts)
}

// Stats summarizes a parse result.
type Stats struct {
	KeyCount     int      // Number of keys in the tree
	ValueCount   int      // Number of values across all keys
	Keys         []string // Key paths in first-declaration order
	DeletedKeys  int      // Number of [-key] declarations
	Warnings     int      // Non-fatal warnings, e.g. duplicate keys
	SkippedCount int      // Values dropped in lenient mode
}

// Stats computes counts for r.
func (r *Result) Stats() Stats {
	return Stats{
		KeyCount:     r.Tree.Len(),
		ValueCount:   r.Tree.ValueCount(),
		Keys:         r.Tree.Keys(),
		DeletedKeys:  len(r.Tree.DeletedKeys()),
		Warnings:     len(r.Diagnostics.Warnings()),
		SkippedCount: len(r.Diagnostics.Errors()),
	}
}
