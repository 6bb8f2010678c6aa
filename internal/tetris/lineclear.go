package tetris

// ClearLines removes full rows and returns how many were cleared.
//
// Rows are scanned once from top (0) to bottom. When row r is full its cells
// are removed and every cell above it drops one row. The scan then moves on
// to r+1 without looking at r again in the same pass.
func ClearLines(b *Board) int {
	cleared := 0
	for row := 0; row < b.height; row++ {
		if b.RowCount(row) != b.width {
			continue
		}
		b.collapse(row)
		cleared++
	}
	return cleared
}

// collapse deletes row and shifts the cells above it down by one.
func (b *Board) collapse(row int) {
	cells := b.Cells()
	b.cells.Clear()
	for _, c := range cells {
		switch {
		case c.Pos.Y == row:
			continue
		case c.Pos.Y < row:
			c.Pos.Y++
		}
		b.Place(c)
	}
}
