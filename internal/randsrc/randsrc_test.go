package randsrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func TestPick_UsesSource(t *testing.T) {
	pool := []string{"a", "b", "c"}
	for i, want := range pool {
		require.Equal(t, want, Pick[string](fixedSource(i), pool))
	}
}

func TestOrDefault(t *testing.T) {
	require.Equal(t, fixedSource(2), OrDefault(fixedSource(2)))

	src := OrDefault(nil)
	require.NotNil(t, src)
	for i := 0; i < 100; i++ {
		n := src.Intn(5)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 5)
	}
}
