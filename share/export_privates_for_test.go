package share

// Test-bridge (white-box) for the private position cursor.
//
// Purpose:
//   - Expose the unexported cursor arithmetic to share_test ONLY, so the
//     traversal-order and exhaustion properties can be verified without
//     widening the production API.
//
// Build policy:
//   - The _test.go suffix keeps this file out of production builds while
//     letting it live in package share with access to private symbols.

// GridCursor aliases the private cursor type for white-box tests.
type GridCursor = cursor

// NewGridCursor_TestOnly forwards to newCursor.
func NewGridCursor_TestOnly(n int) GridCursor { return newCursor(n) }

// AdvanceCursor_TestOnly forwards to cursor.advance.
func AdvanceCursor_TestOnly(c *GridCursor) bool { return c.advance() }

// ResetCursor_TestOnly forwards to cursor.reset.
func ResetCursor_TestOnly(c *GridCursor) { c.reset() }

// CursorExhausted_TestOnly forwards to cursor.exhausted.
func CursorExhausted_TestOnly(c *GridCursor) bool { return c.exhausted() }

// CursorPosition_TestOnly reports the cursor's (first, second) pair.
func CursorPosition_TestOnly(c *GridCursor) (int, int) { return c.first, c.second }
