package activation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/activation"
)

func TestSet_Ops(t *testing.T) {
	var s activation.Set
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())

	s = s.With(0).With(3).With(63)
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(63))
	assert.False(t, s.Has(1))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 3, 63}, s.Bits())

	s = s.Without(3)
	assert.Equal(t, []int{0, 63}, s.Bits())

	o := activation.Set(0).With(1).With(2)
	assert.True(t, s.Disjoint(o))
	assert.False(t, s.Disjoint(s))
	assert.Equal(t, []int{0, 1, 2, 63}, s.Union(o).Bits())

	// the empty set is disjoint from everything, itself included
	assert.True(t, activation.Set(0).Disjoint(0))
}

func TestIndex_SortedAndRoundTrip(t *testing.T) {
	x, err := activation.NewIndex([]string{"JJ", "BB", "DD"})
	require.NoError(t, err)
	assert.Equal(t, 3, x.Len())

	b, ok := x.Bit("BB")
	require.True(t, ok)
	assert.Equal(t, 0, b)
	assert.Equal(t, "JJ", x.ID(2))

	s, err := x.SetOf("JJ", "BB")
	require.NoError(t, err)
	assert.Equal(t, []string{"BB", "JJ"}, x.IDs(s))
	assert.Equal(t, activation.Set(0b111), x.Full())

	_, err = x.SetOf("ZZ")
	assert.ErrorIs(t, err, activation.ErrUnknownValve)
}

func TestIndex_Errors(t *testing.T) {
	_, err := activation.NewIndex([]string{"AA", "AA"})
	assert.ErrorIs(t, err, activation.ErrDuplicateValve)

	ids := make([]string, activation.MaxValves+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("V%02d", i)
	}
	_, err = activation.NewIndex(ids)
	assert.ErrorIs(t, err, activation.ErrTooManyValves)

	x, err := activation.NewIndex(ids[:activation.MaxValves])
	require.NoError(t, err)
	assert.Equal(t, activation.MaxValves, x.Full().Len())
}
