package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSetJSONRoundTrip(t *testing.T) {
	rs := ResponseSet{1: 5, 2: -1, 14: 3, 57: 7}

	encoded, err := rs.ToJSON()
	require.NoError(t, err)

	decoded, err := ResponsesFromJSON(encoded)
	require.NoError(t, err)
	assert.Equal(t, rs, decoded)
}

func TestResponsesFromJSONRejectsGarbage(t *testing.T) {
	_, err := ResponsesFromJSON("{broken")
	assert.Error(t, err)

	_, err = ResponsesFromJSON(`{"1": "five"}`)
	assert.Error(t, err)
}

func TestResponseSetCloneIsIndependent(t *testing.T) {
	rs := ResponseSet{1: 2, 2: 4}
	clone := rs.Clone()
	clone[1] = 5

	assert.Equal(t, 2, rs[1])
	assert.Equal(t, 5, clone[1])
}
