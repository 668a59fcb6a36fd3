// Package dashboard turns a cluster's resource bucket into positioned
// CloudWatch widget lists: an executive rollup and a developer detail
// view. Both builders are pure functions of their input group; layout
// cursors are values threaded through construction, so no two widgets can
// ever share an (x,y) origin.
package dashboard

// Grid constants for the CloudWatch dashboard canvas (24 units wide).
const (
	fullWidth   = 12
	gridWidth   = 8
	rowHeight   = 6
	gridColumns = 3

	defaultPeriod = 60
)

// cursor tracks the next widget origin. The zero value points at the
// top-left of the dashboard.
type cursor struct {
	x, y, col int
}

// nextRow moves to the first column of the following row.
func (c cursor) nextRow() cursor {
	return cursor{x: 0, y: c.y + rowHeight, col: 0}
}

// nextCell moves one grid cell to the right, wrapping to a new row after
// the third column.
func (c cursor) nextCell() cursor {
	col := c.col + 1
	if col == gridColumns {
		return c.nextRow()
	}
	return cursor{x: col * gridWidth, y: c.y, col: col}
}

// alignRow returns the start of the next free full-width row: unchanged
// when already at a row start, otherwise the following row. Each layout
// block begins from an aligned cursor.
func (c cursor) alignRow() cursor {
	if c.col == 0 && c.x == 0 {
		return c
	}
	return c.nextRow()
}
