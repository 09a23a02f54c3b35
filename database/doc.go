// Package database loads whole Mii database files and exposes their decoded
// records.
//
// A database file is a fixed-size header followed by a table of fixed-size
// record slots (and, for files holding two tables, a trailer). Loading is
// all-or-nothing at the file level and forgiving at the record level:
//
//   - a missing or unreadable file, or a file whose size does not match the
//     variant exactly, aborts the load with an error from package errs
//   - an empty, malformed or checksum-failing slot is kept in the slot table
//     with its state, but never handed out as a valid record
//
// # Loading
//
//	db, err := database.Load("RFL_DB.dat", format.WiiPlaza,
//	    database.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//
//	for i, m := range db.All() {
//	    fmt.Println(i, m.Name, m.Birthday)
//	}
//
// Snapshots compressed with zstd, S2 or LZ4 are recognized by file extension
// (.zst, .s2, .lz4) or selected explicitly with WithCompression.
//
// # Filtering
//
// Filters take a Predicate, an explicit interface over a read-only record:
//
//	reds := db.Filter(database.And(
//	    database.IsFavorite(),
//	    database.HasFavoriteColor(format.ColorRed),
//	))
//
// A loaded Database is immutable and safe for concurrent reads.
package database
