package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 3, 8, 18)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 18, p.TotalCount)

	p = NewPage([]int{}, 1, 8, 16)
	assert.Equal(t, 2, p.TotalPages)

	empty := NewPage[string](nil, 1, 6, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
