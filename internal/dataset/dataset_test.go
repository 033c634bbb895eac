package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsDeterministic(t *testing.T) {
	a := NewGenerator(42).Records(50)
	b := NewGenerator(42).Records(50)

	assert.Equal(t, a, b, "same seed must yield the same records")

	c := NewGenerator(43).Records(50)
	assert.NotEqual(t, a, c, "different seed must yield different records")
}

func TestRecordsShape(t *testing.T) {
	records := NewGenerator(1).Records(100)
	require.Len(t, records, 100)

	for i, r := range records {
		assert.Equal(t, i, r.Index)
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Tags)
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.Less(t, r.Score, 100.0)
	}
}

func TestKeysUnique(t *testing.T) {
	keys := NewGenerator(7).Keys(1000)
	require.Len(t, keys, 1000)

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestWordsDeterministic(t *testing.T) {
	a := NewGenerator(5).Words(200)
	b := NewGenerator(5).Words(200)

	assert.Equal(t, a, b)
}
