package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set[uint]
	require.False(t, s.Has(1))
	require.Equal(t, 0, s.Len())

	require.True(t, s.Insert(1))
	require.False(t, s.Insert(1))
	require.True(t, s.Has(1))
	require.Equal(t, 1, s.Len())

	s.Remove(1)
	s.Remove(7)
	require.False(t, s.Has(1))

	s.Insert(2)
	s.Insert(3)
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.True(t, s.Insert(2))
}
