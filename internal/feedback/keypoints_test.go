package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPointsRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"one"},
		{"one", "two", "three"},
		{"contains, commas", "contains \"quotes\"", "contains\nnewlines"},
		{"", "blank entries survive", ""},
	}

	for _, points := range cases {
		blob, err := encodeKeyPoints(points)
		require.NoError(t, err)

		decoded, err := decodeKeyPoints(blob)
		require.NoError(t, err)
		assert.Equal(t, points, decoded, "blob=%s", blob)
	}
}

func TestDecodeKeyPoints_Invalid(t *testing.T) {
	_, err := decodeKeyPoints("not json")
	assert.Error(t, err)
}
