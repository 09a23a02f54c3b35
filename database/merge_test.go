package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/internal/testutil"
	"github.com/arloliu/mii/layout"
)

func TestMerge(t *testing.T) {
	plaza := layout.Describe(format.WiiPlaza)
	parade := layout.Describe(format.WiiParade)

	plazaDB, err := Decode(testutil.Database(plaza, map[int][]byte{
		0: miiRecord(plaza, 0x80000001, "Alice", true, format.ColorRed),
		1: miiRecord(plaza, 0x80000002, "Bob", false, format.ColorBlue),
	}), plaza.Variant)
	require.NoError(t, err)

	// Alice was also sent to the parade; Dave lives only there.
	paradeDB, err := Decode(testutil.Database(parade, map[int][]byte{
		4: miiRecord(parade, 0x80000001, "Alice", false, format.ColorRed),
		9: miiRecord(parade, 0x80000009, "Dave", false, format.ColorGreen),
	}), parade.Variant)
	require.NoError(t, err)

	merged := Merge(plazaDB, nil, paradeDB)
	require.Len(t, merged, 3)

	names := []string{merged[0].Name, merged[1].Name, merged[2].Name}
	require.Equal(t, []string{"Alice", "Bob", "Dave"}, names)
	require.Equal(t, format.WiiPlaza, merged[0].Variant, "first occurrence wins")

	require.Empty(t, Merge())
	require.Len(t, Merge(plazaDB, plazaDB), 2)
}

func TestMergeWithStats(t *testing.T) {
	plaza := layout.Describe(format.WiiPlaza)
	parade := layout.Describe(format.WiiParade)

	plazaDB, err := Decode(testutil.Database(plaza, map[int][]byte{
		0: miiRecord(plaza, 0x80000001, "Alice", true, format.ColorRed),
		1: miiRecord(plaza, 0x80000002, "Bob", false, format.ColorBlue),
	}), plaza.Variant)
	require.NoError(t, err)

	paradeDB, err := Decode(testutil.Database(parade, map[int][]byte{
		0: miiRecord(parade, 0x80000001, "Alice", false, format.ColorRed),
		1: miiRecord(parade, 0x80000002, "Bob", false, format.ColorBlue),
		2: miiRecord(parade, 0x80000003, "Erin", false, format.ColorBlue),
	}), parade.Variant)
	require.NoError(t, err)

	merged, st := MergeWithStats(plazaDB, paradeDB, plazaDB)
	require.Len(t, merged, 3)
	require.Equal(t, MergeStats{Kept: 3, Duplicates: 4}, st)

	merged, st = MergeWithStats()
	require.Empty(t, merged)
	require.Zero(t, st)
}
