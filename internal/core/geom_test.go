package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Bottom())

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 4, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "(%d, %d)", tt.x, tt.y)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{5, 5, 0},
		{6, 5, 1},
		{-1, 5, 4},
		{-6, 5, 4},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.i, tt.n), "Wrap(%d, %d)", tt.i, tt.n)
	}
}
