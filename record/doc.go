// Package record decodes a single fixed-layout Mii record.
//
// A record is parsed against a layout.FormatDescriptor:
//
//	desc := layout.Describe(format.WiiPlaza)
//	m, err := record.Parse(raw, desc)
//	if err != nil {
//	    // errs.ErrMalformedRecord: wrong length or a field outside its range
//	}
//	if !m.ChecksumValid {
//	    // stored CRC disagrees with the computed one; m.Err() reports it
//	}
//
// # Record Forms
//
// Database slots hold the CharData form. Exported .mii files hold the
// StoreData form, which appends zero padding and a big-endian CRC-16 to
// CharData. Parse accepts both. Only the StoreData form has a stored
// checksum to verify; Mii.StoreData builds that form from either.
//
// # Failure Model
//
// Structural problems (a buffer of the wrong length, a field value outside
// its defined range, a favorite color beyond the palette) return an error
// wrapping errs.ErrMalformedRecord and no record. A checksum mismatch is not a
// parse failure: the record is returned with ChecksumValid set to false so a
// caller walking a whole database can keep going.
//
// # Text Policy
//
// Names are read as UTF-16 code units in the field's byte order, stopping at
// the first zero unit or the end of the field. Unpaired surrogates decode to
// U+FFFD by default; WithStrictText turns them into ErrMalformedRecord.
//
// # Thread Safety
//
// Parse is a pure function of its inputs. A Parser holds only immutable
// configuration and may be shared between goroutines.
package record
