package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(GetLittleEndianEngine()))
	require.Equal(t, binary.ByteOrder(binary.BigEndian), binary.ByteOrder(GetBigEndianEngine()))
}

func TestIsBigEndian(t *testing.T) {
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
	require.False(t, IsBigEndian(nil))
}

func TestName(t *testing.T) {
	require.Equal(t, "big", Name(GetBigEndianEngine()))
	require.Equal(t, "little", Name(GetLittleEndianEngine()))
}

func TestEngineRoundTrip(t *testing.T) {
	buf := GetBigEndianEngine().AppendUint16(nil, 0x1234)
	require.Equal(t, []byte{0x12, 0x34}, buf)
	require.Equal(t, uint16(0x3412), GetLittleEndianEngine().Uint16(buf))
}
