package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/internal/testutil"
	"github.com/arloliu/mii/layout"
)

func fixtureDB(t *testing.T, v format.Variant) (*database.Database, []byte) {
	t.Helper()

	d := layout.Describe(v)
	bad := testutil.NewRecord(d).
		SetRaw(0, testutil.Standard(d, 0x80000002, "Bad", "Player")).
		Set(layout.FieldBirthMonth, 13).
		Bytes()

	data := testutil.Database(d, map[int][]byte{
		0:  testutil.Standard(d, 0x80000001, "Alice", "Player"),
		3:  bad,
		12: testutil.Standard(d, 0x80000003, "Carol", "Player"),
	})

	db, err := database.Decode(data, v)
	require.NoError(t, err)

	return db, data
}

func TestFileName(t *testing.T) {
	require.Equal(t, "WII_PL00000.mii", FileName(layout.Describe(format.WiiPlaza), 0))
	require.Equal(t, "WII_PA09999.mii", FileName(layout.Describe(format.WiiParade), 9999))
	require.Equal(t, "WIIU00042.mii", FileName(layout.Describe(format.WiiUMaker), 42))
	require.Equal(t, "3DS00099.mii", FileName(layout.Describe(format.ThreeDSMaker), 99))
}

func TestWriter_WriteAll(t *testing.T) {
	for _, v := range format.Variants {
		t.Run(v.String(), func(t *testing.T) {
			db, data := fixtureDB(t, v)
			d := db.Descriptor()

			w, err := NewWriter(filepath.Join(t.TempDir(), "out", "nested"))
			require.NoError(t, err)

			paths, err := w.WriteAll(db)
			require.NoError(t, err)
			require.Equal(t, []string{
				filepath.Join(w.Dir(), FileName(d, 0)),
				filepath.Join(w.Dir(), FileName(d, 12)),
			}, paths)

			for i, slot := range []int{0, 12} {
				got, err := os.ReadFile(paths[i])
				require.NoError(t, err)

				off := d.SlotOffset(slot)
				require.Equal(t, data[off:off+d.RecordStride], got, "exported bytes are verbatim")
			}
		})
	}
}

func TestWriter_WithInvalid(t *testing.T) {
	db, _ := fixtureDB(t, format.WiiUMaker)

	w, err := NewWriter(t.TempDir(), WithInvalid())
	require.NoError(t, err)

	paths, err := w.WriteAll(db)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.Equal(t, FileName(db.Descriptor(), 3), filepath.Base(paths[1]))
}

func TestWriter_WriteSlotOutOfRange(t *testing.T) {
	db, _ := fixtureDB(t, format.ThreeDSMaker)

	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = w.WriteSlot(db, db.SlotCount())
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestReadRecord_RoundTrip(t *testing.T) {
	for _, v := range format.Variants {
		t.Run(v.String(), func(t *testing.T) {
			db, _ := fixtureDB(t, v)

			w, err := NewWriter(t.TempDir())
			require.NoError(t, err)
			path, err := w.WriteSlot(db, 12)
			require.NoError(t, err)

			m, err := ReadRecord(path)
			require.NoError(t, err)
			require.Equal(t, v, m.Variant)
			require.True(t, m.ChecksumValid)
			require.False(t, m.HasStoredChecksum)

			want, err := db.At(1)
			require.NoError(t, err)
			require.Equal(t, want.Name, m.Name)
			require.Equal(t, want.ID, m.ID)
			require.Equal(t, want.Raw, m.Raw)
		})
	}
}

func TestWriter_WithStoreData(t *testing.T) {
	for _, v := range format.Variants {
		t.Run(v.String(), func(t *testing.T) {
			db, data := fixtureDB(t, v)
			d := db.Descriptor()

			w, err := NewWriter(t.TempDir(), WithStoreData())
			require.NoError(t, err)
			path, err := w.WriteSlot(db, 12)
			require.NoError(t, err)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Len(t, got, d.StoreLength)
			off := d.SlotOffset(12)
			require.Equal(t, data[off:off+d.RecordStride], got[:d.RecordStride])

			m, err := ReadRecord(path)
			require.NoError(t, err)
			require.Equal(t, v, m.Variant)
			require.True(t, m.HasStoredChecksum)
			require.True(t, m.ChecksumValid)
			require.Equal(t, "Carol", m.Name)

			want, err := db.At(1)
			require.NoError(t, err)
			require.Equal(t, want.StoreData(), got)

			got[len(got)-1] ^= 0x01
			require.NoError(t, os.WriteFile(path, got, 0o600))
			m, err = ReadRecord(path)
			require.NoError(t, err)
			require.False(t, m.ChecksumValid)
		})
	}
}

func TestWriteRecord(t *testing.T) {
	db, _ := fixtureDB(t, format.WiiPlaza)
	m, err := db.At(0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "single_mii.mii")
	require.NoError(t, WriteRecord(path, m))

	got, err := ReadRecord(path)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, format.WiiPlaza, got.Variant)
}

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name string
		size int
		want format.Variant
	}{
		{"WII_PL00001.mii", 74, format.WiiPlaza},
		{"WII_PL00001.mii", 76, format.WiiPlaza},
		{"WII_PA00001.mii", 64, format.WiiParade},
		{"WII_PA00001.mii", 66, format.WiiParade},
		{"WIIU00001.mii", 92, format.WiiUMaker},
		{"WIIU00001.mii", 96, format.WiiUMaker},
		{"3DS00001.mii", 92, format.ThreeDSMaker},
		{"3ds00001.mii", 96, format.ThreeDSMaker},
		{"custom.mii", 74, format.WiiPlaza},
		{"custom.mii", 76, format.WiiPlaza},
		{"custom.mii", 64, format.WiiParade},
		{"custom.mii", 92, format.WiiUMaker},
		{"custom.mii", 96, format.WiiUMaker},
		{"3DS00001.mii", 74, format.WiiPlaza},
	}

	for _, tt := range tests {
		got, err := DetectVariant(tt.name, tt.size)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got, "%s (%d bytes)", tt.name, tt.size)
	}

	_, err := DetectVariant("WII_PL00000.mii", 75)
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
}

func TestReadRecord_Missing(t *testing.T) {
	_, err := ReadRecord(filepath.Join(t.TempDir(), "WII_PL00000.mii"))
	require.ErrorIs(t, err, errs.ErrFileNotFound)
}

func TestPack(t *testing.T) {
	db, data := fixtureDB(t, format.WiiParade)
	dir := t.TempDir()

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			path := PackPath(dir, db, ct)
			require.Equal(t, "RFL_DB.dat"+ct.Extension(), filepath.Base(path))
			require.NoError(t, Pack(db, path, ct))

			loaded, err := database.Load(path, format.WiiParade)
			require.NoError(t, err)
			require.Equal(t, db.Len(), loaded.Len())
			require.Equal(t, data, loaded.Image())
		})
	}

	err := Pack(db, filepath.Join(dir, "x"), format.CompressionType(77))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}
