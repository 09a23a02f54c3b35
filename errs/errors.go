// Package errs defines the sentinel errors returned by the mii packages.
//
// File-level errors (ErrFileNotFound, ErrIO, ErrInvalidDatabaseSize) abort a
// database load. Record-level errors (ErrMalformedRecord, ErrChecksumMismatch)
// are isolated to a single slot and never abort a load.
package errs

import "errors"

// File-level errors.
var (
	ErrFileNotFound           = errors.New("database file not found")
	ErrIO                     = errors.New("database I/O failure")
	ErrInvalidDatabaseSize    = errors.New("invalid database size")
	ErrUnknownVariant         = errors.New("unknown database variant")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// Record-level errors.
var (
	ErrMalformedRecord  = errors.New("malformed record")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Access errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
)
