package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mii/endian"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/layout"
)

func trailingSpec(size int) layout.ChecksumSpec {
	return layout.ChecksumSpec{
		BitOffset: (size - 2) * 8,
		BitWidth:  16,
		Engine:    endian.GetBigEndianEngine(),
		Poly:      0x1021,
		Init:      0,
	}
}

// xmodem is the textbook table-less CRC-16/XMODEM.
func xmodem(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}

func TestCompute_CheckValue(t *testing.T) {
	raw := append([]byte("123456789"), 0, 0)
	require.Equal(t, uint16(0x31C3), Compute(raw, trailingSpec(len(raw))))
}

func TestCompute_IgnoresStoredBytes(t *testing.T) {
	raw := append([]byte("123456789"), 0xAB, 0xCD)
	spec := trailingSpec(len(raw))

	require.Equal(t, uint16(0x31C3), Compute(raw, spec))
	require.Equal(t, []byte{0xAB, 0xCD}, raw[9:], "input must not be modified")
}

func TestCompute_MatchesXModemForEveryVariant(t *testing.T) {
	for _, d := range layout.All() {
		t.Run(d.Variant.String(), func(t *testing.T) {
			charData := make([]byte, d.RecordStride)
			for i := range charData {
				charData[i] = byte(i*7 + 3)
			}
			start, _ := d.Checksum.ByteRange()

			// The CRC covers CharData and the zero padding before the field.
			covered := make([]byte, start)
			copy(covered, charData)
			want := xmodem(covered)

			require.Equal(t, want, Compute(charData, d.Checksum), "CharData form")
			require.Equal(t, want, Compute(StoreForm(charData, d.Checksum), d.Checksum), "StoreData form")
		})
	}
}

func TestStoreForm(t *testing.T) {
	d := layout.Describe(format.WiiUMaker)
	charData := make([]byte, d.RecordStride)
	charData[0] = 0x03
	charData[d.RecordStride-1] = 0xEE

	store := StoreForm(charData, d.Checksum)
	require.Len(t, store, 0x60)
	require.Equal(t, charData, store[:0x5C])
	require.Equal(t, []byte{0, 0}, store[0x5C:0x5E], "padding")

	crc := Compute(charData, d.Checksum)
	require.Equal(t, crc, endian.GetBigEndianEngine().Uint16(store[0x5E:]))
	require.Equal(t, byte(0x03), charData[0], "input must not be modified")
	require.Len(t, charData, 0x5C)
}

func TestStoredAndVerify(t *testing.T) {
	d := layout.Describe(format.WiiPlaza)
	charData := make([]byte, d.RecordStride)
	copy(charData[2:], []byte{0x00, 'M', 0x00, 'i', 0x00, 'i'})

	_, ok := Stored(charData, d.Checksum)
	require.False(t, ok, "CharData holds no checksum")
	require.True(t, Verify(charData, d.Checksum))

	raw := StoreForm(charData, d.Checksum)
	crc := Compute(charData, d.Checksum)

	stored, ok := Stored(raw, d.Checksum)
	require.True(t, ok)
	require.Equal(t, crc, stored)
	require.True(t, Verify(raw, d.Checksum))

	for bit := range 16 {
		corrupt := append([]byte(nil), raw...)
		corrupt[0x4A+bit/8] ^= 0x80 >> (bit % 8)
		require.False(t, Verify(corrupt, d.Checksum), "bit %d", bit)
	}
}

func TestVerify_LittleEndianRecordBigEndianChecksum(t *testing.T) {
	d := layout.Describe(format.ThreeDSMaker)
	raw := make([]byte, d.StoreLength)
	raw[0] = 0x03

	crc := Compute(raw, d.Checksum)
	endian.GetBigEndianEngine().PutUint16(raw[0x5E:], crc)

	require.True(t, Verify(raw, d.Checksum))
	endian.GetLittleEndianEngine().PutUint16(raw[0x5E:], crc)
	if crc>>8 != crc&0xFF {
		require.False(t, Verify(raw, d.Checksum))
	}
}

func BenchmarkCompute(b *testing.B) {
	d := layout.Describe(format.WiiUMaker)
	raw := make([]byte, d.RecordStride)
	for i := range raw {
		raw[i] = byte(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compute(raw, d.Checksum)
	}
}
