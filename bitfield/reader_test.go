package bitfield

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mii/endian"
)

func TestRead_BigEndian(t *testing.T) {
	be := endian.GetBigEndianEngine()
	// 1011_0110 0101_1100
	buf := []byte{0xB6, 0x5C}

	tests := []struct {
		name   string
		offset int
		width  int
		want   uint64
	}{
		{"first bit", 0, 1, 1},
		{"second bit", 1, 1, 0},
		{"nibble", 0, 4, 0xB},
		{"inside byte", 2, 4, 0b1101},
		{"straddle", 6, 5, 0b10010},
		{"whole word", 0, 16, 0xB65C},
		{"last bits", 13, 3, 0b100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Read(buf, tt.offset, tt.width, be))
		})
	}
}

func TestRead_LittleEndian(t *testing.T) {
	le := endian.GetLittleEndianEngine()
	// u16 LE 0x5CB6: bits LSB-first
	buf := []byte{0xB6, 0x5C}

	tests := []struct {
		name   string
		offset int
		width  int
		want   uint64
	}{
		{"bit 0", 0, 1, 0},
		{"bit 1", 1, 1, 1},
		{"low nibble", 0, 4, 0x6},
		{"straddle", 6, 5, (0x5CB6 >> 6) & 0x1F},
		{"whole word", 0, 16, 0x5CB6},
		{"high bits", 10, 6, 0x5CB6 >> 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Read(buf, tt.offset, tt.width, le))
		})
	}
}

func TestRead_MatchesByteOrder(t *testing.T) {
	buf := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x10}

	for _, engine := range []endian.EndianEngine{endian.GetBigEndianEngine(), endian.GetLittleEndianEngine()} {
		t.Run(endian.Name(engine), func(t *testing.T) {
			require.Equal(t, uint64(engine.Uint16(buf[2:4])), Read(buf, 16, 16, engine))
			require.Equal(t, uint64(engine.Uint32(buf[4:8])), Read(buf, 32, 32, engine))
			require.Equal(t, engine.Uint64(buf[0:8]), Read(buf, 0, 64, engine))
		})
	}
}

func TestRead_UnalignedWide(t *testing.T) {
	be := endian.GetBigEndianEngine()
	buf := []byte{0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF0}

	// 64 set bits starting at bit 4 span nine bytes.
	require.Equal(t, ^uint64(0), Read(buf, 4, 64, be))

	lsb := []byte{0xF0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	require.Equal(t, ^uint64(0), Read(lsb, 4, 64, endian.GetLittleEndianEngine()))
}

func TestRead_OutOfRangePanics(t *testing.T) {
	buf := make([]byte, 2)
	be := endian.GetBigEndianEngine()

	require.Panics(t, func() { Read(buf, 10, 7, be) })
	require.Panics(t, func() { Read(buf, 0, 0, be) })
	require.Panics(t, func() { Read(buf, -1, 4, be) })
	require.Panics(t, func() { Read(make([]byte, 16), 0, 65, be) })
	require.NotPanics(t, func() { Read(buf, 9, 7, be) })
}

func TestBool(t *testing.T) {
	buf := []byte{0x80, 0x01}
	require.True(t, Bool(buf, 0, endian.GetBigEndianEngine()))
	require.False(t, Bool(buf, 0, endian.GetLittleEndianEngine()))
	require.True(t, Bool(buf, 8, endian.GetLittleEndianEngine()))
}

func TestFits(t *testing.T) {
	buf := make([]byte, 4)
	require.True(t, Fits(buf, 0, 32))
	require.False(t, Fits(buf, 1, 32))
	require.False(t, Fits(nil, 0, 1))
}

func BenchmarkRead(b *testing.B) {
	buf := make([]byte, 96)
	for i := range buf {
		buf[i] = byte(i * 37)
	}
	be := endian.GetBigEndianEngine()
	le := endian.GetLittleEndianEngine()

	b.Run("BigEndian", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Read(buf, 311, 5, be)
		}
	})
	b.Run("LittleEndian", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Read(buf, 437, 5, le)
		}
	})
}
