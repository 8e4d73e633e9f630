package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := &Error{
		Kind:      ErrKindInvalidHexByte,
		Msg:       "invalid hex byte",
		Line:      7,
		KeyPath:   `HKEY_CURRENT_USER\Software\Test`,
		ValueName: "Blob",
		Raw:       "zz",
		Position:  3,
	}
	wrapped := fmt.Errorf("failed to parse .reg data: %w", err)

	assert.ErrorIs(t, wrapped, ErrInvalidHexByte)
	assert.NotErrorIs(t, wrapped, ErrInvalidInteger)

	var target *Error
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, 3, target.Position)
	assert.Equal(t, "Blob", target.ValueName)
}

func TestError_Message(t *testing.T) {
	err := &Error{
		Kind:     ErrKindInvalidHexByte,
		Msg:      "invalid hex byte",
		Line:     12,
		KeyPath:  `HKLM\Software`,
		Raw:      "g1",
		Position: 2,
	}
	assert.Equal(t, `regtext: line 12: invalid hex byte "g1" at token 2 in [HKLM\Software]`, err.Error())

	withCause := &Error{Kind: ErrKindIO, Msg: "read failed", Err: io.ErrUnexpectedEOF, Position: -1}
	assert.Equal(t, "regtext: read failed: unexpected EOF", withCause.Error())
	assert.ErrorIs(t, withCause, io.ErrUnexpectedEOF)

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestErrKind_Structural(t *testing.T) {
	structural := []ErrKind{
		ErrKindFormat, ErrKindValueBeforeKey, ErrKindUnterminatedString,
		ErrKindLimit, ErrKindUnsupported, ErrKindIO,
	}
	for _, k := range structural {
		assert.True(t, k.Structural(), k.String())
	}
	for _, k := range []ErrKind{ErrKindInvalidInteger, ErrKindInvalidHexByte, ErrKindUnknownValueType} {
		assert.False(t, k.Structural(), k.String())
	}
}

func TestError_IsRejectsOtherErrors(t *testing.T) {
	assert.False(t, errors.Is(ErrFormat, io.EOF))
	assert.True(t, errors.Is(&Error{Kind: ErrKindFormat}, ErrFormat))
}
