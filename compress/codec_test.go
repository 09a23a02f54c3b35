package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
)

// snapshotLike mimics a database image: a short header, a few records and
// long runs of empty slots.
func snapshotLike() []byte {
	data := make([]byte, 64*1024)
	copy(data, "RNOD")
	for i := 0; i < 8; i++ {
		off := 4 + i*76
		for j := 0; j < 74; j++ {
			data[off+j] = byte(i*31 + j)
		}
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := snapshotLike()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(data)
			require.NoError(t, err)
			if ct != format.CompressionNone {
				require.Less(t, len(packed), len(data))
			}

			unpacked, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, unpacked))
		})
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte("definitely not compressed data")

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestCodecs_Empty(t *testing.T) {
	for _, codec := range []Codec{NewS2Compressor(), NewLZ4Compressor(), NewZstdCompressor()} {
		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7F))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want format.CompressionType
	}{
		{"RFL_DB.dat", format.CompressionNone},
		{"dumps/RFL_DB.dat.zst", format.CompressionZstd},
		{"CFL_DB.dat.ZSTD", format.CompressionZstd},
		{"FFL_ODB.dat.s2", format.CompressionS2},
		{"FFL_ODB.dat.lz4", format.CompressionLZ4},
		{"noext", format.CompressionNone},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, ForPath(tt.path))
		})
	}
}
