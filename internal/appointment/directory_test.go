package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	d := NewDirectory[string]()

	require.NoError(t, d.Put("P002", "second"))
	require.NoError(t, d.Put("P001", "first"))
	assert.ErrorIs(t, d.Put("P001", "again"), ErrDuplicateID)

	v, ok := d.Get("P001")
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = d.Get("P404")
	assert.False(t, ok)
	assert.True(t, d.Contains("P002"))
	assert.False(t, d.Contains("P404"))
	assert.Equal(t, 2, d.Len())

	// Insertion order, and the sequence can be ranged over again.
	for range 2 {
		var keys, values []string
		for k, v := range d.All() {
			keys = append(keys, k)
			values = append(values, v)
		}
		assert.Equal(t, []string{"P002", "P001"}, keys)
		assert.Equal(t, []string{"second", "first"}, values)
	}
	assert.Equal(t, []string{"P002", "P001"}, d.Keys())
}

func TestDirectory_AllStopsEarly(t *testing.T) {
	d := NewDirectory[int]()
	for i, id := range []string{"A001", "A002", "A003"} {
		require.NoError(t, d.Put(id, i))
	}

	var seen []string
	for k := range d.All() {
		seen = append(seen, k)
		if k == "A002" {
			break
		}
	}
	assert.Equal(t, []string{"A001", "A002"}, seen)
}
