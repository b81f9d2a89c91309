package chess

// IsSquareAttacked reports whether any piece of byColor controls (x, y).
// It walks the attacker's piece index rather than the whole grid, and
// re-validates each entry against the live grid before trusting it.
func (b *Board) IsSquareAttacked(x, y int, byColor Color) bool {
	for _, e := range b.pieces[byColor] {
		if !b.inBounds(e.x, e.y) || b.grid[e.x][e.y] != e.piece {
			continue // stale entry, never trust it
		}
		if e.piece.CanAttack(b, e.x, e.y, x, y) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether any of color's royal squares is attacked by the
// opponent. A side with no royal pieces is never in check.
func (b *Board) IsInCheck(color Color) bool {
	opponent := color.Opponent()
	for c := range b.royalSet(color) {
		if b.IsSquareAttacked(c.X, c.Y, opponent) {
			return true
		}
	}
	return false
}

// CausesSelfCheck reports whether executing mv would leave the mover's own
// royal squares attacked. The move is simulated on the live board and then
// reverted; grid, piece index, royal cache and en-passant target are
// restored exactly, whatever the outcome. The revert is deferred so a panic
// during check evaluation cannot leave the board corrupted.
func (b *Board) CausesSelfCheck(mv Move) (bool, error) {
	eff, err := b.execute(mv)
	if err != nil {
		return false, err
	}
	defer b.revert(eff)
	return b.IsInCheck(eff.mover.Color()), nil
}
