package ast

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/regkit/pkg/types"
)

// ValidationError represents a limit validation failure.
type ValidationError struct {
	Limit     string // Name of the limit that was exceeded
	Current   int64  // Current value
	Maximum   int64  // Maximum allowed value
	KeyPath   string // Path to the key (if applicable)
	ValueName string // Name of the value (if applicable)
}

func (e *ValidationError) Error() string {
	if e.KeyPath != "" {
		return fmt.Sprintf("limit exceeded at '%s': %s is %d (max %d)",
			e.KeyPath, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// LimitError wraps a ValidationError in the typed error taxonomy.
func LimitError(ve *ValidationError) *types.Error {
	return &types.Error{
		Kind:      types.ErrKindLimit,
		Msg:       "parse limit exceeded",
		Err:       ve,
		KeyPath:   ve.KeyPath,
		ValueName: ve.ValueName,
		Position:  -1,
	}
}

// ValidateValue checks one value against the size and name limits.
func ValidateValue(keyPath, name string, val Value, limits types.Limits) *ValidationError {
	if n := utf8.RuneCountInString(name); !limits.CheckValueName(n) {
		return &ValidationError{
			Limit:     "MaxValueNameLen",
			Current:   int64(n),
			Maximum:   int64(limits.MaxValueNameLen),
			KeyPath:   keyPath,
			ValueName: name,
		}
	}
	if n := len(val.Bytes()); !limits.CheckValueSize(n) {
		return &ValidationError{
			Limit:     "MaxValueSize",
			Current:   int64(n),
			Maximum:   int64(limits.MaxValueSize),
			KeyPath:   keyPath,
			ValueName: name,
		}
	}
	return nil
}

// ValidateKeyPath checks a key path against the path length limit.
func ValidateKeyPath(path string, limits types.Limits) *ValidationError {
	if n := utf8.RuneCountInString(path); !limits.CheckKeyPath(n) {
		return &ValidationError{
			Limit:   "MaxKeyPathLen",
			Current: int64(n),
			Maximum: int64(limits.MaxKeyPathLen),
			KeyPath: path,
		}
	}
	return nil
}

// Validate checks the whole tree against limits and returns the first
// violation as a *types.Error of kind ErrKindLimit.
func (t *Tree) Validate(limits types.Limits) error {
	if !limits.CheckKeys(t.Len()) {
		return LimitError(&ValidationError{
			Limit:   "MaxKeys",
			Current: int64(t.Len()),
			Maximum: int64(limits.MaxKeys),
		})
	}
	for _, k := range t.keys {
		if ve := ValidateKeyPath(k.Path, limits); ve != nil {
			return LimitError(ve)
		}
		for _, e := range k.entries {
			if ve := ValidateValue(k.Path, e.Name, e.Value, limits); ve != nil {
				return LimitError(ve)
			}
		}
	}
	return nil
}
