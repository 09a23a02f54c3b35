package compress

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
)

// MaxSnapshotSize bounds the decompressed size of a snapshot. The largest
// supported database is about 2 MiB.
const MaxSnapshotSize = 64 * 1024 * 1024

// ErrSnapshotTooLarge is returned when decompressed data exceeds MaxSnapshotSize.
var ErrSnapshotTooLarge = errors.New("decompressed snapshot exceeds size limit")

// Compressor compresses a whole snapshot.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data.
	Compress(data []byte) ([]byte, error)
}

// Decompressor expands a snapshot produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original bytes or an error if data is corrupt
	// or not in the codec's format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// ForPath infers the compression of a snapshot from its file extension.
// Unknown extensions mean the file is not compressed.
func ForPath(path string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}
