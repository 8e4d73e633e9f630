package regtext

import (
	"io"
	"log/slog"
	"strings"

	"github.com/joshuapare/regkit/pkg/ast"
	"github.com/joshuapare/regkit/pkg/types"
)

// Result is the outcome of a successful parse.
type Result struct {
	Tree *ast.Tree

	// Diagnostics holds non-fatal findings: duplicate key warnings and, in
	// lenient mode, the per-value errors that caused values to be skipped.
	Diagnostics types.Diagnostics
}

// Parse reads a complete .reg document from r and builds its key tree.
//
// Structural errors (bad header, a value before any key, unterminated
// strings, limit violations, read failures) abort the parse. Per-value
// decode errors abort in ModeStrict and are collected in ModeLenient.
// The returned error is always a *types.Error.
func Parse(r io.Reader, opts types.ParseOptions) (*Result, error) {
	in, err := decodeInput(r, opts.InputEncoding)
	if err != nil {
		return nil, err
	}

	b := newBuilder(in, opts)
	b.log.Debug("regtext: parse start",
		"mode", opts.Mode.String(),
		"encoding", opts.InputEncoding)

	if err := b.src.readHeader(); err != nil {
		return nil, err
	}
	if err := b.run(); err != nil {
		return nil, err
	}

	b.log.Debug("regtext: parse done",
		"keys", b.tree.Len(),
		"values", b.tree.ValueCount(),
		"lines", b.src.lineNo,
		"skipped", len(b.diags.Errors()))
	return &Result{Tree: b.tree, Diagnostics: b.diags}, nil
}

// builder is the key/value dispatch loop. current is nil until the first
// [key] line and again after a [-key] deletion.
type builder struct {
	src    *lineSource
	dec    *valueDecoder
	tree   *ast.Tree
	diags  types.Diagnostics
	opts   types.ParseOptions
	limits types.Limits
	log    *slog.Logger

	current   *ast.ValueSet
	firstSeen map[*ast.ValueSet]int // key -> line of its first declaration
}

func newBuilder(r io.Reader, opts types.ParseOptions) *builder {
	limits := opts.EffectiveLimits()
	src := newLineSource(r, limits)
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &builder{
		src: src,
		dec: &valueDecoder{
			src:            src,
			limits:         limits,
			applyDeletions: opts.ApplyDeletions,
		},
		tree:      ast.NewTree(),
		opts:      opts,
		limits:    limits,
		log:       logger,
		firstSeen: make(map[*ast.ValueSet]int),
	}
}

func (b *builder) run() error {
	for {
		line, ok := b.src.nextLogical()
		if !ok {
			return b.src.Err()
		}
		trimmed := strings.TrimSpace(line.text)
		if isKeyLine(trimmed) {
			if err := b.openKey(trimmed[1:len(trimmed)-1], line); err != nil {
				return err
			}
			continue
		}
		if err := b.addValue(line); err != nil {
			return err
		}
	}
}

// isKeyLine reports whether a trimmed line is a [key] header.
func isKeyLine(trimmed string) bool {
	return len(trimmed) >= 2 &&
		strings.HasPrefix(trimmed, KeyOpenBracket) &&
		strings.HasSuffix(trimmed, KeyCloseBracket)
}

func (b *builder) openKey(path string, line physLine) error {
	if b.opts.ApplyDeletions && strings.HasPrefix(path, DeleteKeyPrefix) {
		target := path[len(DeleteKeyPrefix):]
		if vs, ok := b.tree.Lookup(target); ok {
			delete(b.firstSeen, vs)
		}
		b.tree.DeleteKey(target)
		b.current = nil
		b.log.Debug("regtext: key deleted", "key", target, "line", line.no)
		return nil
	}

	if ve := ast.ValidateKeyPath(path, b.limits); ve != nil {
		err := ast.LimitError(ve)
		err.Line = line.no
		return err
	}

	vs, existed := b.tree.Open(path)
	if !existed {
		if !b.limits.CheckKeys(b.tree.Len()) {
			return &types.Error{
				Kind:     types.ErrKindLimit,
				Msg:      "too many keys",
				Line:     line.no,
				KeyPath:  path,
				Position: -1,
			}
		}
		b.firstSeen[vs] = line.no
		b.current = vs
		return nil
	}

	first := b.firstSeen[vs]
	b.diags.Add(types.Diagnostic{
		Severity: types.SevWarning,
		Line:     line.no,
		KeyPath:  vs.Path,
		Issue:    "duplicate key declaration; values merged",
	})
	b.log.Warn("regtext: duplicate key declaration",
		"key", vs.Path,
		"line", line.no,
		"first_line", first)
	b.current = vs
	return nil
}

func (b *builder) addValue(line physLine) error {
	if b.current == nil {
		return &types.Error{
			Kind:     types.ErrKindValueBeforeKey,
			Msg:      "value line outside any key",
			Line:     line.no,
			Raw:      truncate(strings.TrimSpace(line.text), maxRawLen),
			Position: -1,
		}
	}

	dv, err := b.dec.decodeLine(line)
	if err != nil {
		err.KeyPath = b.current.Path
		return b.reject(err)
	}

	if dv.del {
		b.current.Delete(dv.name)
		return nil
	}
	if ve := ast.ValidateValue(b.current.Path, dv.name, dv.value, b.limits); ve != nil {
		lerr := ast.LimitError(ve)
		lerr.Line = line.no
		return lerr
	}
	b.current.Set(dv.name, dv.value)
	return nil
}

// reject applies the error policy: structural errors and any error in
// strict mode abort; lenient mode records per-value errors and continues.
func (b *builder) reject(err *types.Error) error {
	if b.opts.Mode != types.ModeLenient || err.Kind.Structural() {
		return err
	}
	b.diags.AddError(err)
	b.log.Warn("regtext: value skipped",
		"key", err.KeyPath,
		"value", err.ValueName,
		"line", err.Line,
		"kind", err.Kind.String(),
		"error", err.Msg)
	return nil
}
