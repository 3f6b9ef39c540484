package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3, 9}, UniqueIDs([]int64{1, 2, 2}, []int64{3, 1, 9}))
	assert.Equal(t, []int64{}, UniqueIDs())
	assert.Equal(t, []int64{}, UniqueIDs(nil, nil))
}

func TestFirstNonPositive(t *testing.T) {
	_, found := FirstNonPositive([]int64{1, 2}, []int64{3})
	assert.False(t, found)

	id, found := FirstNonPositive([]int64{1}, []int64{4, -2, 0})
	assert.True(t, found)
	assert.Equal(t, int64(-2), id)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("15")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(nil))
	blank := "   "
	assert.Nil(t, OptionalString(&blank))
	padded := " Data Science "
	assert.Equal(t, "Data Science", *OptionalString(&padded))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"SER-120", "SER-491"}, UniqueStrings([]string{" SER-120", "SER-491", "", "SER-120"}))
}
