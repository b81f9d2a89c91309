package chess

// Color tags piece ownership and keys every per-side structure on the board.
type Color string

const (
	White Color = "w"
	Black Color = "b"
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is one piece instance on the board. Identity is reference-like: the
// same Piece value persists across moves until it is captured or promoted
// away, and the board's indices compare pieces by identity.
type Piece interface {
	// Kind is the catalog symbol, e.g. "K", "Q", "δ".
	Kind() string
	Color() Color
	// IsRoyal reports whether check detection keys off this piece.
	IsRoyal() bool
	// Glyph is the 2-character rendering, e.g. "wK", "bδ".
	Glyph() string

	// CanAttack reports whether this piece, standing on (sx, sy), controls
	// square (tx, ty) under the current occupancy. It ignores en passant,
	// turn order and royal safety, and is false for (sx,sy) == (tx,ty).
	CanAttack(b *Board, sx, sy, tx, ty int) bool

	// GenerateMoves returns the pseudo-legal moves for this piece at (x, y):
	// pattern and occupancy rules only, no self-check filtering.
	GenerateMoves(b *Board, x, y int) []Move

	setRoyal(flag bool)
}

// piece carries the identity shared by every kind implementation.
type piece struct {
	kind  string
	color Color
	royal bool
}

func (p *piece) Kind() string       { return p.kind }
func (p *piece) Color() Color       { return p.color }
func (p *piece) IsRoyal() bool      { return p.royal }
func (p *piece) setRoyal(flag bool) { p.royal = flag }

func (p *piece) Glyph() string {
	return string(p.color) + p.kind
}

// forward is the x-direction a pawn-like piece of this color advances in:
// White moves toward decreasing x, Black toward increasing x.
func (p *piece) forward() int {
	if p.color == White {
		return -1
	}
	return 1
}

// canAttackViaMoves derives an attack answer from the move generator. It is
// the fallback for catalog extensions that do not special-case CanAttack:
// correct, but O(branching factor). En-passant moves never give check and
// are excluded.
func canAttackViaMoves(p Piece, b *Board, sx, sy, tx, ty int) bool {
	if sx == tx && sy == ty {
		return false
	}
	for _, mv := range p.GenerateMoves(b, sx, sy) {
		if mv.EnPassant {
			continue
		}
		if mv.ToX == tx && mv.ToY == ty {
			return true
		}
	}
	return false
}

// stepMoves emits single-offset moves (leapers and one-step movers): each
// delta is tried once, blocked only by a same-color occupant on the target.
func stepMoves(p Piece, b *Board, x, y int, deltas [][2]int) []Move {
	moves := make([]Move, 0, len(deltas))
	seen := make(map[Coord]bool, len(deltas))
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if !b.inBounds(nx, ny) {
			continue
		}
		if seen[Coord{nx, ny}] {
			continue
		}
		target := b.at(nx, ny)
		if target == nil || target.Color() != p.Color() {
			seen[Coord{nx, ny}] = true
			moves = append(moves, Move{FromX: x, FromY: y, ToX: nx, ToY: ny, Piece: p})
		}
	}
	return moves
}

// rayMoves emits sliding moves: each direction extends through empty squares
// and stops at the first occupant, inclusive if capturable.
func rayMoves(p Piece, b *Board, x, y int, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		for b.inBounds(nx, ny) {
			target := b.at(nx, ny)
			if target == nil {
				moves = append(moves, Move{FromX: x, FromY: y, ToX: nx, ToY: ny, Piece: p})
			} else {
				if target.Color() != p.Color() {
					moves = append(moves, Move{FromX: x, FromY: y, ToX: nx, ToY: ny, Piece: p})
				}
				break
			}
			nx += d[0]
			ny += d[1]
		}
	}
	return moves
}

// rayClear reports whether every square strictly between (sx, sy) and
// (tx, ty) along the (stepX, stepY) direction is empty.
func rayClear(b *Board, sx, sy, tx, ty, stepX, stepY int) bool {
	x, y := sx+stepX, sy+stepY
	for x != tx || y != ty {
		if b.at(x, y) != nil {
			return false
		}
		x += stepX
		y += stepY
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var (
	kingDeltas = [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	knightDeltas = [][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	camelDeltas = [][2]int{
		{-3, -1}, {-3, 1}, {-1, -3}, {-1, 3},
		{1, -3}, {1, 3}, {3, -1}, {3, 1},
	}
	alibabaDeltas = [][2]int{
		{-2, -2}, {-2, 0}, {-2, 2},
		{0, -2}, {0, 2},
		{2, -2}, {2, 0}, {2, 2},
	}
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

func isKnightDelta(dx, dy int) bool {
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func isKingDelta(dx, dy int) bool {
	return (dx != 0 || dy != 0) && dx <= 1 && dy <= 1
}
