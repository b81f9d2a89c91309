package chess

// The five fairy kinds of the variant.

// General (symbol M) moves as King or Knight, union of both.
type General struct{ piece }

func NewGeneral(c Color) *General { return &General{piece{kind: "M", color: c}} }

func (g *General) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	dx, dy := abs(tx-sx), abs(ty-sy)
	return isKingDelta(dx, dy) || isKnightDelta(dx, dy)
}

func (g *General) GenerateMoves(b *Board, x, y int) []Move {
	return stepMoves(g, b, x, y, append(append([][2]int{}, kingDeltas...), knightDeltas...))
}

// Wildebeest (symbol V) is a Knight+Camel compound leaper: (1,2) and (1,3)
// jumps, never blocked.
type Wildebeest struct{ piece }

func NewWildebeest(c Color) *Wildebeest { return &Wildebeest{piece{kind: "V", color: c}} }

func (w *Wildebeest) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	dx, dy := abs(tx-sx), abs(ty-sy)
	return isKnightDelta(dx, dy) || (dx == 1 && dy == 3) || (dx == 3 && dy == 1)
}

func (w *Wildebeest) GenerateMoves(b *Board, x, y int) []Move {
	return stepMoves(w, b, x, y, append(append([][2]int{}, knightDeltas...), camelDeltas...))
}

// Alibaba (symbol Y) leaps exactly two squares in the eight king directions:
// (±2,0), (0,±2), (±2,±2).
type Alibaba struct{ piece }

func NewAlibaba(c Color) *Alibaba { return &Alibaba{piece{kind: "Y", color: c}} }

func (a *Alibaba) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	dx, dy := abs(tx-sx), abs(ty-sy)
	return (dx == 2 && dy == 0) || (dx == 0 && dy == 2) || (dx == 2 && dy == 2)
}

func (a *Alibaba) GenerateMoves(b *Board, x, y int) []Move {
	return stepMoves(a, b, x, y, alibabaDeltas)
}

// Sergeant (symbol δ) is a pawn that also moves and captures straight or
// diagonally forward, double-steps straight or diagonally from the start
// rows, captures en passant, and promotes.
type Sergeant struct{ piece }

func NewSergeant(c Color) *Sergeant { return &Sergeant{piece{kind: "δ", color: c}} }

// CanAttack covers all three forward squares (straight and both diagonals).
func (s *Sergeant) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	if tx != sx+s.forward() {
		return false
	}
	return abs(ty-sy) <= 1
}

func (s *Sergeant) GenerateMoves(b *Board, x, y int) []Move {
	var moves []Move

	step := s.forward()
	promoRow := b.promotionRow(s.color)
	ep := b.epTarget

	// One forward step, straight or diagonal: move or capture, with
	// promotion on the promotion row and en passant when the destination is
	// the recorded target.
	emitStep := func(nx, ny int) {
		if !b.inBounds(nx, ny) {
			return
		}
		if target := b.at(nx, ny); target != nil && target.Color() == s.color {
			return
		}
		if nx == promoRow {
			for _, sym := range b.PromotionCandidates() {
				moves = append(moves, Move{FromX: x, FromY: y, ToX: nx, ToY: ny, Piece: s, PromoteTo: sym})
			}
			return
		}
		if ep != nil && ep.To.X == nx && ep.To.Y == ny {
			if victim := b.at(ep.Victim.X, ep.Victim.Y); victim != nil && victim.Color() != s.color {
				moves = append(moves, Move{FromX: x, FromY: y, ToX: nx, ToY: ny, Piece: s, EnPassant: true})
				return
			}
		}
		moves = append(moves, Move{FromX: x, FromY: y, ToX: nx, ToY: ny, Piece: s})
	}

	emitStep(x+step, y)
	emitStep(x+step, y-1)
	emitStep(x+step, y+1)

	// Double steps from a start row: straight and both diagonals, with the
	// intermediate and destination squares both empty.
	if b.isPawnStartRow(s.color, x) {
		nx2 := x + 2*step
		for _, dy := range [3]int{0, -1, 1} {
			mid := Coord{x + step, y + dy}
			dst := Coord{nx2, y + 2*dy}
			if b.inBounds(mid.X, mid.Y) && b.at(mid.X, mid.Y) == nil &&
				b.inBounds(dst.X, dst.Y) && b.at(dst.X, dst.Y) == nil {
				moves = append(moves, Move{FromX: x, FromY: y, ToX: dst.X, ToY: dst.Y, Piece: s, DoubleStep: true})
			}
		}
	}

	return moves
}

// Archbishop (symbol H) combines a Knight leap with a Bishop slide.
type Archbishop struct{ piece }

func NewArchbishop(c Color) *Archbishop { return &Archbishop{piece{kind: "H", color: c}} }

func (a *Archbishop) CanAttack(b *Board, sx, sy, tx, ty int) bool {
	dx, dy := abs(tx-sx), abs(ty-sy)
	if isKnightDelta(dx, dy) {
		return true
	}
	if dx != dy || dx == 0 {
		return false
	}
	return rayClear(b, sx, sy, tx, ty, sign(tx-sx), sign(ty-sy))
}

func (a *Archbishop) GenerateMoves(b *Board, x, y int) []Move {
	moves := stepMoves(a, b, x, y, knightDeltas)
	return append(moves, rayMoves(a, b, x, y, diagonalDirs)...)
}
