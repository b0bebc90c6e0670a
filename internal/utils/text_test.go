package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "hello w...", Truncate("hello world and more", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "héllo...", Truncate("héllo wörld", 8))
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "Spades", ToTitle("spades"))
	assert.Equal(t, "", ToTitle(""))
	assert.Equal(t, "X", ToTitle("x"))
}
