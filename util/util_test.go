package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnByteArrayToString(t *testing.T) {
	assert.Equal(t, "97 98 0 ", TurnByteArrayToString([]byte{'a', 'b', 0}))
	assert.Equal(t, "", TurnByteArrayToString(nil))
}

func TestRenderByte(t *testing.T) {
	assert.Equal(t, "97(a)", RenderByte('a'))
	assert.Equal(t, "32( )", RenderByte(' '))
	assert.Equal(t, "0", RenderByte(0))
	assert.Equal(t, "255", RenderByte(255))
}

func TestRenderKey(t *testing.T) {
	assert.Equal(t, "abcas", RenderKey([]byte("abcas")))
	assert.Equal(t, `a\x00b\xff`, RenderKey([]byte{'a', 0, 'b', 0xFF}))
	assert.Equal(t, `c:\x5cwin`, RenderKey([]byte(`c:\win`)))
	assert.Equal(t, "", RenderKey(nil))
}
