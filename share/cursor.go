package share

// cursor tracks the (first, second) index pair of a full-grid traversal
// over n elements. It is pure arithmetic: no slice, no memory access.
// Yield order is row-major over the n×n grid with the diagonal excluded,
// so (first, second) grows lexicographically except at row boundaries.
type cursor struct {
	first  int
	second int
	n      int
}

// newCursor positions a cursor on the first off-diagonal cell, (0, 1).
// Callers must have rejected n < 2 already.
func newCursor(n int) cursor {
	return cursor{first: 0, second: 1, n: n}
}

// exhausted reports whether the cursor has walked off the grid.
func (c *cursor) exhausted() bool { return c.first >= c.n }

// advance moves the cursor to the next off-diagonal cell and reports
// whether one exists. The collision rule is skip-forward: whenever the
// increment lands on first == second — including right after a row wrap —
// the cursor keeps stepping. Once exhausted it stays exhausted.
func (c *cursor) advance() bool {
	if c.exhausted() {
		return false
	}
	for {
		c.second++
		if c.second == c.n {
			c.second = 0
			c.first++
			if c.first >= c.n {
				return false
			}
		}
		if c.first != c.second {
			return true
		}
	}
}

// reset returns the cursor to (0, 1) regardless of its current position.
func (c *cursor) reset() {
	c.first, c.second = 0, 1
}

// seek places the cursor on an arbitrary cell. Validation (range and the
// i != j precondition) belongs to the caller; seek itself is unchecked so
// a failed validation can leave the cursor untouched.
func (c *cursor) seek(i, j int) {
	c.first, c.second = i, j
}
