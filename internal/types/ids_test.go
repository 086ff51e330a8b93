package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("42")
	require.NoError(t, err)
	assert.Equal(t, TaskID(42), id)

	_, err = ParseTaskID("abc")
	assert.Error(t, err)
}

func TestParseLabelID(t *testing.T) {
	id, err := ParseLabelID("3")
	require.NoError(t, err)
	assert.Equal(t, LabelID(3), id)
	assert.Equal(t, "3", id.String())
	assert.Equal(t, 3, id.ToInt())
}

func TestLabelIDsFromInts(t *testing.T) {
	assert.Nil(t, LabelIDsFromInts(nil))
	assert.Equal(t, []LabelID{1, 3, 4}, LabelIDsFromInts([]int{1, 3, 4}))
	assert.Equal(t, []LabelID{}, LabelIDsFromInts([]int{}))
}
