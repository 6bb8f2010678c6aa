package tetris

// Collides reports whether any cell of p is out of bounds or overlaps a
// settled cell. Rows above the board (y < 0) are not out of bounds: pieces
// spawn there and fall in. The check has no side effects, so callers can
// test placements they never commit.
func Collides(p Piece, b *Board) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return true
		}
		if b.Occupied(c) {
			return true
		}
	}
	return false
}
