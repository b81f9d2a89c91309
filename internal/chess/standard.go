package chess

// The five orthodox kinds. Movement semantics follow standard chess, on an
// arbitrary height×width grid; the pawn's start and promotion rows come from
// the board so the 10×10 variant's two-row start zone applies.

// King steps one square in the eight directions.
type King struct{ piece }

func NewKing(c Color) *King { return &King{piece{kind: "K", color: c}} }

func (k *King) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	return isKingDelta(abs(tx-sx), abs(ty-sy))
}

func (k *King) GenerateMoves(b *Board, x, y int) []Move {
	return stepMoves(k, b, x, y, kingDeltas)
}

// Queen slides along ranks, files and diagonals.
type Queen struct{ piece }

func NewQueen(c Color) *Queen { return &Queen{piece{kind: "Q", color: c}} }

func (q *Queen) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	if sx == tx && sy == ty {
		return false
	}
	dx, dy := abs(tx-sx), abs(ty-sy)
	if sx != tx && sy != ty && dx != dy {
		return false
	}
	return rayClear(b, sx, sy, tx, ty, sign(tx-sx), sign(ty-sy))
}

func (q *Queen) GenerateMoves(b *Board, x, y int) []Move {
	return rayMoves(q, b, x, y, append(append([][2]int{}, orthogonalDirs...), diagonalDirs...))
}

// Rook slides along ranks and files.
type Rook struct{ piece }

func NewRook(c Color) *Rook { return &Rook{piece{kind: "R", color: c}} }

func (r *Rook) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	if sx == tx && sy == ty {
		return false
	}
	if sx != tx && sy != ty {
		return false
	}
	return rayClear(b, sx, sy, tx, ty, sign(tx-sx), sign(ty-sy))
}

func (r *Rook) GenerateMoves(b *Board, x, y int) []Move {
	return rayMoves(r, b, x, y, orthogonalDirs)
}

// Knight leaps (1,2)/(2,1), ignoring intervening occupancy.
type Knight struct{ piece }

func NewKnight(c Color) *Knight { return &Knight{piece{kind: "N", color: c}} }

func (n *Knight) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	return isKnightDelta(abs(tx-sx), abs(ty-sy))
}

func (n *Knight) GenerateMoves(b *Board, x, y int) []Move {
	return stepMoves(n, b, x, y, knightDeltas)
}

// Pawn advances one square (two from a start row), captures diagonally,
// captures en passant into the recorded target, and promotes on reaching
// its side's promotion row.
type Pawn struct{ piece }

func NewPawn(c Color) *Pawn { return &Pawn{piece{kind: "P", color: c}} }

// CanAttack covers the diagonal-forward squares only, regardless of
// occupancy: attack is about control, not about having a capture available.
func (p *Pawn) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	if tx != sx+p.forward() {
		return false
	}
	return abs(ty-sy) == 1
}

func (p *Pawn) GenerateMoves(b *Board, x, y int) []Move {
	var moves []Move

	step := p.forward()
	promoRow := b.promotionRow(p.color)
	nx := x + step
	if !b.inBounds(nx, y) {
		return moves
	}

	emit := func(tx, ty int) {
		if tx == promoRow {
			for _, sym := range b.PromotionCandidates() {
				moves = append(moves, Move{FromX: x, FromY: y, ToX: tx, ToY: ty, Piece: p, PromoteTo: sym})
			}
		} else {
			moves = append(moves, Move{FromX: x, FromY: y, ToX: tx, ToY: ty, Piece: p})
		}
	}

	// Straight advance, then the double step from a start row.
	if b.at(nx, y) == nil {
		emit(nx, y)
		nx2 := x + 2*step
		if b.isPawnStartRow(p.color, x) && b.inBounds(nx2, y) && b.at(nx2, y) == nil {
			moves = append(moves, Move{FromX: x, FromY: y, ToX: nx2, ToY: y, Piece: p, DoubleStep: true})
		}
	}

	// Diagonal captures.
	for _, ny := range [2]int{y - 1, y + 1} {
		if !b.inBounds(nx, ny) {
			continue
		}
		if target := b.at(nx, ny); target != nil && target.Color() != p.color {
			emit(nx, ny)
		}
	}

	// En passant: diagonal only, into the recorded capture destination.
	if ep := b.epTarget; ep != nil && ep.To.X == nx && abs(ep.To.Y-y) == 1 {
		if victim := b.at(ep.Victim.X, ep.Victim.Y); victim != nil && victim.Color() != p.color {
			moves = append(moves, Move{FromX: x, FromY: y, ToX: ep.To.X, ToY: ep.To.Y, Piece: p, EnPassant: true})
		}
	}

	return moves
}
