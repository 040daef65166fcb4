package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(0, 0))
	assert.Equal(t, 8, Index(0, 8))
	assert.Equal(t, 9, Index(1, 0))
	assert.Equal(t, 35, Index(3, 8))
}

func TestSlotName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "a1"},
		{8, "a9"},
		{10, "b2"},
		{35, "d9"},
		{36, "#36"},
		{-1, "#-1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotName(tt.index))
	}
}

func TestDefaultCapacity(t *testing.T) {
	assert.Equal(t, 36, Default.Capacity())
	assert.Equal(t, 27, Fixed(27).Capacity())
}
