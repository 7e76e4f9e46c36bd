package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(120, 101, 100, 100)
	assert.Equal(t, NewRect(100, 100, 20, 1), r)
	assert.Equal(t, 120.0, r.Right())
	assert.Equal(t, 101.0, r.Bottom())
	assert.Equal(t, NewPoint2D(110, 100.5), r.Center())
	assert.False(t, r.Empty())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(NewPoint2D(10, 10)))
	assert.False(t, r.Contains(NewPoint2D(10.5, 5)))
	assert.True(t, NewRect(5, 5, 0, 3).Empty())
}
