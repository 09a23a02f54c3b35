package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	tr := NewTracker()

	require.True(t, tr.Track(1, 0x80000001))
	require.True(t, tr.Track(2, 0x80000002))
	require.False(t, tr.Track(1, 0x80000001), "same fingerprint and ID is a duplicate")
	require.True(t, tr.Track(2, 0x80000003), "same fingerprint, different ID is a collision")

	require.Equal(t, 3, tr.Count())
	require.Equal(t, 1, tr.Duplicates())
	require.Equal(t, 1, tr.Collisions())
}

// A record kept after a collision is remembered, so its own repeat is a
// duplicate rather than a second collision.
func TestTracker_RepeatAfterCollision(t *testing.T) {
	tr := NewTracker()

	require.True(t, tr.Track(7, 0x80000001))
	require.True(t, tr.Track(7, 0x80000002))
	require.False(t, tr.Track(7, 0x80000002))
	require.False(t, tr.Track(7, 0x80000001))
	require.True(t, tr.Track(7, 0x80000003))

	require.Equal(t, 3, tr.Count())
	require.Equal(t, 2, tr.Duplicates())
	require.Equal(t, 2, tr.Collisions())
}
