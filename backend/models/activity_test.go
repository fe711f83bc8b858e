package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityID(t *testing.T) {
	id, err := ParseActivityID("p10-d21-a3")
	require.NoError(t, err)
	assert.Equal(t, NewActivityID(10, 21, 3), id)
	assert.Equal(t, "p10-d21-a3", id.String())
}

func TestParseActivityID_Rejects(t *testing.T) {
	for _, input := range []string{
		"",
		"p1-d1",
		"p1-d1-a0-x",
		"1-d1-a0",
		"p1-x1-a0",
		"p1-d1-b0",
		"pa-d1-a0",
		"p1-d1-a",
		"p+1-d1-a0",
		"p1-d1-a-1",
	} {
		_, err := ParseActivityID(input)
		assert.ErrorIs(t, err, ErrInvalidActivityID, input)
	}
}

func TestActivityID_Less(t *testing.T) {
	assert.True(t, NewActivityID(1, 5, 9).Less(NewActivityID(2, 1, 0)))
	assert.True(t, NewActivityID(2, 1, 9).Less(NewActivityID(2, 3, 0)))
	assert.True(t, NewActivityID(2, 3, 0).Less(NewActivityID(2, 3, 1)))
	assert.False(t, NewActivityID(10, 1, 0).Less(NewActivityID(2, 1, 0)))
}

func TestCompletionSet_ToggleIsItsOwnInverse(t *testing.T) {
	original := NewCompletionSet(NewActivityID(1, 1, 0), NewActivityID(2, 21, 1))
	id := NewActivityID(1, 2, 2)

	once := original.Toggle(id)
	assert.True(t, once.Contains(id))
	assert.False(t, original.Contains(id))

	twice := once.Toggle(id)
	assert.True(t, twice.Equal(original))

	removed := original.Toggle(NewActivityID(1, 1, 0))
	assert.Equal(t, 1, removed.Len())
	assert.True(t, removed.Toggle(NewActivityID(1, 1, 0)).Equal(original))
}

func TestCompletionSet_ZeroValue(t *testing.T) {
	var s CompletionSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(NewActivityID(1, 1, 0)))
	assert.Equal(t, 1, s.Toggle(NewActivityID(1, 1, 0)).Len())
}

func TestCompletionSet_JSON(t *testing.T) {
	s := NewCompletionSet(NewActivityID(2, 1, 0), NewActivityID(1, 3, 1))
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["p1-d3-a1","p2-d1-a0"]`, string(data))

	var decoded CompletionSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(s))
}

func TestDecodeCompletionSet_SkipsMalformedEntries(t *testing.T) {
	set, skipped, err := DecodeCompletionSet([]byte(`["p1-d1-a0","garbage","p1-d1-a0"]`))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{"garbage"}, skipped)

	_, _, err = DecodeCompletionSet([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
}
