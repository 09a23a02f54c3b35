package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_ReadFrom(t *testing.T) {
	data := bytes.Repeat([]byte{0xA5}, SnapshotBufferDefaultSize*3+17)

	bb := NewByteBuffer(16)
	n, err := bb.ReadFrom(bytes.NewReader(data))

	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
	require.Equal(t, data, bb.Bytes())
	require.Equal(t, len(data), bb.Len())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestByteBuffer_ReadFromError(t *testing.T) {
	bb := NewByteBuffer(8)
	_, err := bb.ReadFrom(failingReader{})
	require.EqualError(t, err, "disk on fire")
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, 1, 2, 3)
	bb.Grow(100)

	require.GreaterOrEqual(t, cap(bb.B), 103)
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 32)

	bb.B = append(bb.B, 1, 2, 3)
	p.Put(bb)

	again := p.Get()
	require.Zero(t, again.Len())

	oversized := NewByteBuffer(128)
	p.Put(oversized) // dropped, must not panic
	p.Put(nil)
}

func TestSnapshotPool(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())
	PutSnapshotBuffer(bb)
}
