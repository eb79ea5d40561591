package share_test

import (
	"testing"

	"github.com/katalvlaran/iterkit/share"
	"github.com/stretchr/testify/require"
)

// walkCursor drains a fresh cursor over n elements and returns every
// (first, second) cell it visits, starting from the initial position.
func walkCursor(n int) [][2]int {
	c := share.NewGridCursor_TestOnly(n)
	cells := make([][2]int, 0, n*(n-1))
	for {
		f, s := share.CursorPosition_TestOnly(&c)
		cells = append(cells, [2]int{f, s})
		if !share.AdvanceCursor_TestOnly(&c) {
			break
		}
	}

	return cells
}

// TestCursor_OrderN3 pins the exact row-major, diagonal-skipping order.
func TestCursor_OrderN3(t *testing.T) {
	want := [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
	require.Equal(t, want, walkCursor(3))
}

// TestCursor_Bijection verifies that for several n the cursor visits every
// off-diagonal cell exactly once, and nothing on the diagonal.
func TestCursor_Bijection(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		cells := walkCursor(n)
		require.Len(t, cells, n*(n-1), "n=%d", n)

		seen := make(map[[2]int]bool, len(cells))
		for _, cell := range cells {
			require.NotEqual(t, cell[0], cell[1], "n=%d: diagonal cell yielded", n)
			require.False(t, seen[cell], "n=%d: cell %v visited twice", n, cell)
			seen[cell] = true
		}
	}
}

// TestCursor_SkipForwardAfterWrap checks the collision rule at a row
// boundary: wrapping from row 0 of n=2 lands on (1, 0), never (1, 1).
func TestCursor_SkipForwardAfterWrap(t *testing.T) {
	c := share.NewGridCursor_TestOnly(2)
	require.True(t, share.AdvanceCursor_TestOnly(&c))
	f, s := share.CursorPosition_TestOnly(&c)
	require.Equal(t, 1, f)
	require.Equal(t, 0, s)
}

// TestCursor_ExhaustionIdempotent verifies advance keeps reporting false
// once the grid is walked off.
func TestCursor_ExhaustionIdempotent(t *testing.T) {
	c := share.NewGridCursor_TestOnly(2)
	for share.AdvanceCursor_TestOnly(&c) {
	}
	require.True(t, share.CursorExhausted_TestOnly(&c))
	for i := 0; i < 4; i++ {
		require.False(t, share.AdvanceCursor_TestOnly(&c))
		require.True(t, share.CursorExhausted_TestOnly(&c))
	}
}

// TestCursor_Reset verifies reset lands on (0, 1) from anywhere,
// including from the exhausted state.
func TestCursor_Reset(t *testing.T) {
	c := share.NewGridCursor_TestOnly(4)
	for share.AdvanceCursor_TestOnly(&c) {
	}
	share.ResetCursor_TestOnly(&c)
	require.False(t, share.CursorExhausted_TestOnly(&c))
	f, s := share.CursorPosition_TestOnly(&c)
	require.Equal(t, 0, f)
	require.Equal(t, 1, s)
}
