// Package compress provides the codecs used for compressed database snapshots.
//
// Console database dumps are mostly empty slots and compress very well, so
// tooling often keeps them as RFL_DB.dat.zst or similar. The database loader
// expands such a snapshot in memory before the size check, and the pack
// command of miidump produces them.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the data is passed through unchanged.
//   - Zstd (format.CompressionZstd): standard zstd frames, pooled encoders and decoders.
//   - S2 (format.CompressionS2): S2 block format.
//   - LZ4 (format.CompressionLZ4): standard LZ4 frames.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(snapshot)
//	original, err := codec.Decompress(packed)
//
// Decompression is bounded by MaxSnapshotSize to keep a corrupt or hostile
// input from exhausting memory.
//
// # Thread Safety
//
// Every codec returned by this package is safe for concurrent use.
package compress
