// Package mii reads the Mii face-library databases of the Wii, Wii U and 3DS.
//
// Each console keeps its Miis in a fixed-size database file: a header
// followed by a table of fixed-size record slots. Four tables are supported:
//
//   - WiiPlaza: 100 slots in RFL_DB.dat (Mii Channel plaza)
//   - WiiParade: 10000 slots in RFL_DB.dat (Mii Channel parade)
//   - WiiUMaker: 3000 slots in FFL_ODB.dat
//   - ThreeDSMaker: 100 slots in CFL_DB.dat
//
// Every record is validated with the CRC-16 the consoles use. Records with a
// bad checksum or impossible field values stay visible as slots but are never
// returned as valid Miis.
//
// # Basic Usage
//
//	db, err := mii.Load("RFL_DB.dat", format.WiiPlaza)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%d Miis in %d slots\n", db.Len(), db.SlotCount())
//	for _, m := range db.All() {
//	    fmt.Printf("%s by %s, born %s\n", m.Name, m.CreatorName, m.Birthday)
//	}
//
//	favorites := db.Filter(database.IsFavorite())
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The database package
// holds the loader and predicates, record the single-record parser, layout the
// per-variant descriptor table, and export the .mii writer.
package mii

import (
	"fmt"

	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/export"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/layout"
	"github.com/arloliu/mii/record"
)

// Load reads the database file at path as variant v.
//
// Parameters:
//   - path: the database file, or a .zst/.s2/.lz4 snapshot of it
//   - v: the table to read
//   - opts: database.WithLogger, database.WithCompression and friends
//
// Returns:
//   - *database.Database: the decoded, immutable database
//   - error: errs.ErrFileNotFound, errs.ErrIO, errs.ErrInvalidDatabaseSize or
//     errs.ErrUnknownVariant
func Load(path string, v format.Variant, opts ...database.LoadOption) (*database.Database, error) {
	return database.Load(path, v, opts...)
}

// LoadDefault reads variant v from the console's file name in the working
// directory, e.g. RFL_DB.dat for the Wii tables.
func LoadDefault(v format.Variant, opts ...database.LoadOption) (*database.Database, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownVariant, v)
	}

	return database.Load(layout.Describe(v).DefaultPath, v, opts...)
}

// Decode decodes an in-memory database image.
func Decode(data []byte, v format.Variant, opts ...database.LoadOption) (*database.Database, error) {
	return database.Decode(data, v, opts...)
}

// Parse decodes a single record of variant v, given in the CharData form of
// a database slot or the StoreData form of an exported file.
//
// A checksum mismatch is not an error: the returned record has
// ChecksumValid set to false and Err reports the mismatch.
func Parse(raw []byte, v format.Variant, opts ...record.ParserOption) (*record.Mii, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownVariant, v)
	}

	return record.Parse(raw, layout.Describe(v), opts...)
}

// ParseFile reads one exported .mii file, inferring its variant.
func ParseFile(path string, opts ...record.ParserOption) (*record.Mii, error) {
	return export.ReadRecord(path, opts...)
}

// Merge returns the valid records of every database, dropping repeats of the
// same character.
func Merge(dbs ...*database.Database) []*record.Mii {
	return database.Merge(dbs...)
}

// Describe returns a copy of the static layout of v. It panics if v is not a
// supported variant.
func Describe(v format.Variant) *layout.FormatDescriptor {
	return layout.Describe(v)
}
