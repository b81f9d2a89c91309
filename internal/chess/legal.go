package chess

// Legal-move enumeration with check-aware pruning. The pruning only narrows
// which candidates get simulated; the admitted set is identical to the naive
// "generate everything, keep what doesn't cause self-check" filter, which
// the final CausesSelfCheck pass still guarantees.

// attackersOn returns the index entries of byColor whose pieces control
// target, re-validating each entry against the grid.
func (b *Board) attackersOn(target Coord, byColor Color) []indexEntry {
	var attackers []indexEntry
	for _, e := range b.pieces[byColor] {
		if !b.inBounds(e.x, e.y) || b.grid[e.x][e.y] != e.piece {
			continue
		}
		if e.piece.CanAttack(b, e.x, e.y, target.X, target.Y) {
			attackers = append(attackers, e)
		}
	}
	return attackers
}

// blockSquares returns every square strictly between royal and attacker
// along their shared rank, file or diagonal, or nil when they are not
// aligned. Only meaningful for sliding attackers.
func blockSquares(royal, attacker Coord) []Coord {
	dx, dy := attacker.X-royal.X, attacker.Y-royal.Y
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return nil
	}
	stepX, stepY := sign(dx), sign(dy)
	var squares []Coord
	x, y := royal.X+stepX, royal.Y+stepY
	for x != attacker.X || y != attacker.Y {
		squares = append(squares, Coord{x, y})
		x += stepX
		y += stepY
	}
	return squares
}

// representativeRoyal picks a deterministic royal square for color.
func (b *Board) representativeRoyal(color Color) (Coord, bool) {
	var best Coord
	found := false
	for c := range b.royalSet(color) {
		if !found || c.X < best.X || (c.X == best.X && c.Y < best.Y) {
			best = c
			found = true
		}
	}
	return best, found
}

// forEachLegalMove feeds every legal move for color to visit, stopping early
// when visit returns false.
func (b *Board) forEachLegalMove(color Color, visit func(Move) bool) {
	// A side with no royal pieces is never in check, so every pseudo-legal
	// move of such a side is admitted.
	opponent := color.Opponent()
	var attackers []indexEntry
	royal, hasRoyal := b.representativeRoyal(color)
	if hasRoyal {
		attackers = b.attackersOn(royal, opponent)
	}

	// Double check: royal pieces can move to safe squares. The only
	// non-royal candidate is an en-passant capture, which can remove the
	// double-stepped checker while landing on a square that blocks the
	// other checker's ray.
	if len(attackers) >= 2 {
		// Copy the index: CausesSelfCheck rewrites it during simulation.
		entries := append([]indexEntry(nil), b.pieces[color]...)
		for _, e := range entries {
			if !b.inBounds(e.x, e.y) || b.grid[e.x][e.y] != e.piece {
				continue
			}
			for _, mv := range e.piece.GenerateMoves(b, e.x, e.y) {
				if e.piece.IsRoyal() {
					if b.IsSquareAttacked(mv.ToX, mv.ToY, opponent) {
						continue
					}
				} else if !mv.EnPassant {
					continue
				}
				if selfCheck, err := b.CausesSelfCheck(mv); err != nil || selfCheck {
					continue
				}
				if !visit(mv) {
					return
				}
			}
		}
		return
	}

	// Single check: non-royal moves must capture the attacker or, for a
	// sliding attacker, land on a square of the checking ray.
	targets := map[Coord]bool{}
	if len(attackers) == 1 {
		att := Coord{attackers[0].x, attackers[0].y}
		targets[att] = true
		if slidingKinds[attackers[0].piece.Kind()] {
			for _, c := range blockSquares(royal, att) {
				targets[c] = true
			}
		}
	}

	entries := append([]indexEntry(nil), b.pieces[color]...)
	for _, e := range entries {
		if !b.inBounds(e.x, e.y) || b.grid[e.x][e.y] != e.piece {
			continue
		}
		for _, mv := range e.piece.GenerateMoves(b, e.x, e.y) {
			if e.piece.IsRoyal() {
				if b.IsSquareAttacked(mv.ToX, mv.ToY, opponent) {
					continue
				}
			} else if len(attackers) == 1 {
				// An en-passant capture resolves check by removing the
				// victim, not by occupying its square.
				dest := Coord{mv.ToX, mv.ToY}
				if mv.EnPassant && b.epTarget != nil {
					dest = b.epTarget.Victim
				}
				if !targets[dest] {
					continue
				}
			}
			if selfCheck, err := b.CausesSelfCheck(mv); err != nil || selfCheck {
				continue
			}
			if !visit(mv) {
				return
			}
		}
	}
}

// LegalMovesFor returns every legal move for color.
func (b *Board) LegalMovesFor(color Color) []Move {
	var moves []Move
	b.forEachLegalMove(color, func(mv Move) bool {
		moves = append(moves, mv)
		return true
	})
	return moves
}

// HasAnyLegalMove short-circuits on the first admissible move.
func (b *Board) HasAnyLegalMove(color Color) bool {
	found := false
	b.forEachLegalMove(color, func(Move) bool {
		found = true
		return false
	})
	return found
}

// IsCheckmated reports whether color is in check with no legal move.
func (b *Board) IsCheckmated(color Color) bool {
	return b.IsInCheck(color) && !b.HasAnyLegalMove(color)
}

// IsStalemated reports whether color has no legal move while not in check.
func (b *Board) IsStalemated(color Color) bool {
	return !b.IsInCheck(color) && !b.HasAnyLegalMove(color)
}

// ResultIfOver maps the board's terminal states to a game status. Draws by
// repetition or the 50-move rule are the Game's concern, not the board's.
func (b *Board) ResultIfOver() GameStatus {
	switch {
	case b.IsCheckmated(Black):
		return StatusWhiteWon
	case b.IsCheckmated(White):
		return StatusBlackWon
	case b.IsStalemated(White), b.IsStalemated(Black):
		return StatusDraw
	}
	return StatusActive
}
