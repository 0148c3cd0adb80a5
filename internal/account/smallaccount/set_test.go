package smallaccount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var s Set
	a := MustNew(params([]byte{1, 2, 3}))
	dirty := MustNew(params([]byte{1, 2, 3}))
	dirty.data[10] = 0x55
	other := MustNew(params([]byte{3, 2, 1}))

	assert.False(t, s.Contains(a))
	assert.True(t, s.Add(a))
	assert.False(t, s.Add(dirty), "padding must not create a second entry")
	assert.True(t, s.Contains(dirty))
	assert.True(t, s.Add(other))
	assert.Equal(t, 2, s.Len())
}
