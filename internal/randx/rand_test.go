package randx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString_LengthAndAlphabet(t *testing.T) {
	s, err := String(12)
	require.NoError(t, err)
	require.Len(t, s, 12)

	for _, r := range s {
		require.Contains(t, base36, string(r))
	}
}

func TestString_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := String(8)
		require.NoError(t, err)
		require.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func TestString_InvalidLength(t *testing.T) {
	_, err := String(0)
	require.Error(t, err)
}
