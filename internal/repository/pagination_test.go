package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_FirstPage(t *testing.T) {
	p := NewPagination(1, 10, 25)

	assert.Equal(t, 1, p.Current)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, int64(25), p.Total)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_MiddlePage(t *testing.T) {
	p := NewPagination(2, 12, 30)

	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPagination_LastPage(t *testing.T) {
	p := NewPagination(3, 10, 25)

	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPagination_ExactFit(t *testing.T) {
	p := NewPagination(2, 10, 20)

	assert.Equal(t, 2, p.Pages)
	assert.False(t, p.HasNext)
}

func TestNewPagination_Empty(t *testing.T) {
	p := NewPagination(1, 10, 0)

	assert.Equal(t, 0, p.Pages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_PastTheEnd(t *testing.T) {
	// Requesting a page beyond the data still reports sane flags.
	p := NewPagination(5, 10, 25)

	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
