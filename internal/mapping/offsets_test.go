package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodepointIndexASCII(t *testing.T) {
	idx := NewCodepointIndex("abc")
	require.Equal(t, 3, idx.Len())
	require.Equal(t, 0, idx.ByteOffset(0))
	require.Equal(t, 1, idx.ByteOffset(1))
	require.Equal(t, 3, idx.ByteOffset(3)) // trailing end-of-text entry
	require.Equal(t, 'b', idx.RuneAt(1))
}

func TestCodepointIndexMultiByte(t *testing.T) {
	// "café" = c,a,f,é where é is 2 bytes in UTF-8.
	idx := NewCodepointIndex("café")
	require.Equal(t, 4, idx.Len())
	require.Equal(t, 0, idx.ByteOffset(0))
	require.Equal(t, 1, idx.ByteOffset(1))
	require.Equal(t, 2, idx.ByteOffset(2))
	require.Equal(t, 3, idx.ByteOffset(3))
	require.Equal(t, 5, idx.ByteOffset(4)) // end-of-text, 3 single-byte + 2-byte é
	require.Equal(t, 'é', idx.RuneAt(3))
}

func TestCodepointIndexEmpty(t *testing.T) {
	idx := NewCodepointIndex("")
	require.Equal(t, 0, idx.Len())
}
