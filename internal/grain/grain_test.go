package grain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitVectorPacking(t *testing.T) {
	iv := InitVector(1, 1, 255, 4, 8, 56, 0)
	require.Len(t, iv, 80)

	// 2 bits field parity = 01
	require.Equal(t, []bool{false, true}, iv[0:2])
	// 4 bits s-box flag = 0001
	require.Equal(t, []bool{false, false, false, true}, iv[2:6])
	// 12 bits prime bit length = 255
	require.Equal(t, []bool{false, false, false, false, true, true, true, true, true, true, true, true}, iv[6:18])
	// 12 bits t = 4
	require.Equal(t, []bool{false, false, false, false, false, false, false, false, false, true, false, false}, iv[18:30])
	// trailing 30 one-bits
	for i := 50; i < 80; i++ {
		require.True(t, iv[i], "bit %d", i)
	}
}

func TestInitVectorSeed(t *testing.T) {
	base := InitVector(1, 1, 255, 4, 8, 56, 0)
	seeded := InitVector(1, 1, 255, 4, 8, 56, 5)

	require.Equal(t, base[:50], seeded[:50], "seed must only touch the tail bits")
	// 5 = 0b101 flips the last and third-to-last tail bits.
	require.Equal(t, !base[79], seeded[79])
	require.Equal(t, base[78], seeded[78])
	require.Equal(t, !base[77], seeded[77])
}

func TestStreamDeterministic(t *testing.T) {
	iv := InitVector(1, 0, 64, 5, 8, 41, 0)
	a := New(iv)
	b := New(iv)
	for i := 0; i < 512; i++ {
		require.Equal(t, a.Next(), b.Next(), "bit %d", i)
	}
}

func TestStreamDependsOnParameters(t *testing.T) {
	a := New(InitVector(1, 0, 64, 5, 8, 41, 0))
	b := New(InitVector(1, 0, 64, 6, 8, 41, 0))

	diff := false
	for i := 0; i < 512 && !diff; i++ {
		diff = a.Next() != b.Next()
	}
	require.True(t, diff, "streams for different widths must diverge")
}
