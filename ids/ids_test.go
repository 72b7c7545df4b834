package ids

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayIDs(t *testing.T) {
	a := NewArray(5, 1, 3)
	a.Add(1)

	assert.Equal(t, 4, a.Len())
	assert.False(t, a.IsEmpty())
	assert.True(t, a.Contains(3))
	assert.False(t, a.Contains(7))
	assert.Equal(t, ID(1), a.Get(1))
	assert.Equal(t, []ID{5, 1, 3, 1}, slices.Collect(a.All()))
}

func TestArrayIDs_Empty(t *testing.T) {
	a := NewArrayWithCapacity(8)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, slices.Collect(a.All()))
}

func TestBitmapIDs(t *testing.T) {
	b := NewBitmap(10, 2, 7)

	assert.True(t, b.Add(4))
	assert.False(t, b.Add(10))
	assert.Equal(t, 4, b.Len())
	assert.True(t, b.Contains(7))
	assert.False(t, b.Contains(3))
	assert.Equal(t, []ID{2, 4, 7, 10}, slices.Collect(b.All()))
}

func TestBitmapIDs_EarlyStop(t *testing.T) {
	b := NewBitmap(1, 2, 3, 4)

	var seen []ID
	for id := range b.All() {
		seen = append(seen, id)
		if id == 2 {
			break
		}
	}
	assert.Equal(t, []ID{1, 2}, seen)
}

func TestFromRoaring_Nil(t *testing.T) {
	b := FromRoaring(nil)
	require.NotNil(t, b.Bitmap())
	assert.True(t, b.IsEmpty())
}

func TestCollect(t *testing.T) {
	out := Collect(NewBitmap(9, 3))
	assert.Equal(t, []ID{3, 9}, out.Slice())
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "42", ID(42).String())
}
