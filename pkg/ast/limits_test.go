package ast

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func TestValidate_DefaultLimitsAcceptOrdinaryTree(t *testing.T) {
	tree := NewTree()
	vs, _ := tree.Open(`HKEY_CURRENT_USER\Software\Test`)
	vs.Set("Name", String("Value"))
	vs.Set("Blob", Binary(make([]byte, 1024)))

	assert.NoError(t, tree.Validate(types.DefaultLimits()))
}

func TestValidate_ValueTooLarge(t *testing.T) {
	tree := NewTree()
	vs, _ := tree.Open("K")
	vs.Set("Blob", Binary(make([]byte, types.WindowsMaxValueSize64KB+1)))

	err := tree.Validate(types.StrictLimits())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLimit)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "MaxValueSize", ve.Limit)
	assert.Equal(t, "Blob", ve.ValueName)
	assert.Contains(t, ve.Error(), "limit exceeded at 'K'")
}

func TestValidate_ValueNameTooLong(t *testing.T) {
	tree := NewTree()
	vs, _ := tree.Open("K")
	vs.Set(strings.Repeat("n", 300), Dword(1))

	err := tree.Validate(types.StrictLimits())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "MaxValueNameLen", ve.Limit)
	assert.Equal(t, int64(300), ve.Current)
}

func TestValidate_KeyLimits(t *testing.T) {
	tree := NewTree()
	tree.Open(strings.Repeat("k", 50))

	err := tree.Validate(types.Limits{MaxKeyPathLen: 10})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "MaxKeyPathLen", ve.Limit)

	tree.Open("second")
	err = tree.Validate(types.Limits{MaxKeys: 1})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "MaxKeys", ve.Limit)
	assert.Equal(t, "limit exceeded: MaxKeys is 2 (max 1)", ve.Error())
}
