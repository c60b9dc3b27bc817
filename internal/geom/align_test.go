package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAlignUp verifies power-of-two round-up, including the negative-input
// behavior the co-pack table check depends on.
func TestAlignUp(t *testing.T) {
	cases := []struct {
		n, b, want int
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{63, 64, 64},
		{64, 64, 64},
		{65, 64, 128},
		{7, 1, 7},
		{-2, 4, 0},
		{-29, 4, -28},
		{-5, 8, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AlignUp(c.n, c.b), "AlignUp(%d, %d)", c.n, c.b)
	}
}

// TestAlignDown verifies power-of-two round-down.
func TestAlignDown(t *testing.T) {
	assert.Equal(t, 0, AlignDown(3, 4))
	assert.Equal(t, 4, AlignDown(4, 4))
	assert.Equal(t, 4, AlignDown(7, 4))
	assert.Equal(t, 64, AlignDown(127, 64))
}

// TestCeilDiv verifies ceiling division against exact and inexact quotients.
func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 3, CeilDiv(176, 64))
	assert.Equal(t, 2, CeilDiv(128, 64))
	assert.Equal(t, 1, CeilDiv(1, 64))
	assert.Equal(t, 5, CeilDiv(9, 2))
}

// TestIsPow2 covers zero, powers of two, and composites.
func TestIsPow2(t *testing.T) {
	assert.False(t, IsPow2(0))
	assert.True(t, IsPow2(1))
	assert.True(t, IsPow2(64))
	assert.True(t, IsPow2(4096))
	assert.False(t, IsPow2(3))
	assert.False(t, IsPow2(96))
	assert.False(t, IsPow2(-4))
}
