package chess

import (
	"fmt"
	"strings"
)

// EnPassantTarget records that the previous ply was a double step: To is the
// square a capturer lands on (the square jumped over), Victim is the square
// holding the vulnerable piece. It is valid for exactly one ply.
type EnPassantTarget struct {
	To     Coord
	Victim Coord
}

type indexEntry struct {
	piece Piece
	x, y  int
}

// Board owns the grid and three derived indices: the per-color piece list,
// the per-color royal-position set and the en-passant target. Every mutation
// goes through Place, Clear, SetRoyal or ApplyMove, each of which keeps all
// four structures consistent as one unit. The board is not safe for
// concurrent use; callers serialize access.
type Board struct {
	Height int
	Width  int

	grid     [][]Piece
	pieces   map[Color][]indexEntry
	royals   map[Color]map[Coord]bool
	epTarget *EnPassantTarget
}

// NewBoard creates an empty height×width board.
func NewBoard(height, width int) *Board {
	grid := make([][]Piece, height)
	for x := range grid {
		grid[x] = make([]Piece, width)
	}
	return &Board{
		Height: height,
		Width:  width,
		grid:   grid,
		pieces: map[Color][]indexEntry{White: {}, Black: {}},
		royals: map[Color]map[Coord]bool{White: {}, Black: {}},
	}
}

// NewDefaultBoard creates a 10×10 board with the variant's starting layout
// and its two royal squares (F1, F10) marked.
func NewDefaultBoard() (*Board, error) {
	b := NewBoard(10, 10)
	if err := b.SetupFromLayout(DefaultLayout); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.Height && y >= 0 && y < b.Width
}

func (b *Board) checkBounds(x, y int) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (x=%d, y=%d) on %dx%d board", ErrOutOfBounds, x, y, b.Height, b.Width)
	}
	return nil
}

// at returns the occupant without a bounds check; callers inside the package
// validate coordinates first.
func (b *Board) at(x, y int) Piece {
	return b.grid[x][y]
}

// At returns the piece at (x, y), or nil for an empty square.
func (b *Board) At(x, y int) (Piece, error) {
	if err := b.checkBounds(x, y); err != nil {
		return nil, err
	}
	return b.grid[x][y], nil
}

// AtDisplay is At addressed by file+rank notation.
func (b *Board) AtDisplay(square string) (Piece, error) {
	x, y, err := FromDisplay(square, b.Height, b.Width)
	if err != nil {
		return nil, err
	}
	return b.grid[x][y], nil
}

// EnPassantTarget returns a copy of the current target, or nil.
func (b *Board) EnPassantTarget() *EnPassantTarget {
	if b.epTarget == nil {
		return nil
	}
	cp := *b.epTarget
	return &cp
}

// RoyalPositions returns the royal squares per color.
func (b *Board) RoyalPositions() map[Color][]Coord {
	out := make(map[Color][]Coord, len(b.royals))
	for color, set := range b.royals {
		coords := make([]Coord, 0, len(set))
		for c := range set {
			coords = append(coords, c)
		}
		out[color] = coords
	}
	return out
}

// royalSet returns the royal-position set for color. A missing set means the
// board's invariants were broken by construction outside the package; that
// is a programming error, not a game state.
func (b *Board) royalSet(color Color) map[Coord]bool {
	set, ok := b.royals[color]
	if !ok {
		panic(fmt.Sprintf("chess: royal cache missing for color %q", color))
	}
	return set
}

func (b *Board) indexRemove(x, y int) {
	p := b.grid[x][y]
	if p == nil {
		return
	}
	bucket := b.pieces[p.Color()]
	for i, e := range bucket {
		if e.piece == p && e.x == x && e.y == y {
			b.pieces[p.Color()] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

func (b *Board) indexAdd(x, y int) {
	p := b.grid[x][y]
	if p == nil {
		return
	}
	b.pieces[p.Color()] = append(b.pieces[p.Color()], indexEntry{piece: p, x: x, y: y})
}

// Place overwrites (x, y) with a newly constructed piece of the given kind
// and color, evicting any previous occupant from the grid, the piece index
// and the royal cache.
func (b *Board) Place(x, y int, kind string, color Color) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	p, err := CreatePiece(kind, color)
	if err != nil {
		return fmt.Errorf("cannot place at (%d,%d): %w", x, y, err)
	}
	if old := b.grid[x][y]; old != nil {
		if old.IsRoyal() {
			delete(b.royalSet(old.Color()), Coord{x, y})
		}
		b.indexRemove(x, y)
	}
	b.grid[x][y] = p
	b.indexAdd(x, y)
	if p.IsRoyal() {
		b.royalSet(p.Color())[Coord{x, y}] = true
	}
	return nil
}

// PlaceDisplay is Place addressed by file+rank notation.
func (b *Board) PlaceDisplay(square, kind string, color Color) error {
	x, y, err := FromDisplay(square, b.Height, b.Width)
	if err != nil {
		return err
	}
	return b.Place(x, y, kind, color)
}

// Clear empties (x, y), dropping any occupant from the index and the royal
// cache. Clearing an empty square is a no-op.
func (b *Board) Clear(x, y int) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	p := b.grid[x][y]
	if p == nil {
		return nil
	}
	if p.IsRoyal() {
		delete(b.royalSet(p.Color()), Coord{x, y})
	}
	b.indexRemove(x, y)
	b.grid[x][y] = nil
	return nil
}

// ClearDisplay is Clear addressed by file+rank notation.
func (b *Board) ClearDisplay(square string) error {
	x, y, err := FromDisplay(square, b.Height, b.Width)
	if err != nil {
		return err
	}
	return b.Clear(x, y)
}

// SetRoyal flips the royal flag of the piece at (x, y) and keeps the royal
// cache in step. The coordinate is dropped from both color buckets first so
// a stale entry from an earlier occupant cannot survive.
func (b *Board) SetRoyal(x, y int, flag bool) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	p := b.grid[x][y]
	if p == nil {
		return fmt.Errorf("%w: cannot set royal at (%d,%d)", ErrEmptySquare, x, y)
	}
	delete(b.royalSet(White), Coord{x, y})
	delete(b.royalSet(Black), Coord{x, y})
	p.setRoyal(flag)
	if flag {
		b.royalSet(p.Color())[Coord{x, y}] = true
	}
	return nil
}

// SetRoyalDisplay is SetRoyal addressed by file+rank notation.
func (b *Board) SetRoyalDisplay(square string, flag bool) error {
	x, y, err := FromDisplay(square, b.Height, b.Width)
	if err != nil {
		return err
	}
	return b.SetRoyal(x, y, flag)
}

// isPawnStartRow reports whether x is one of the side's two double-step rows.
// These rows, like the promotion rows, are fixed constants of the 10×10
// variant.
func (b *Board) isPawnStartRow(color Color, x int) bool {
	if color == White {
		return x == 7 || x == 8
	}
	return x == 1 || x == 2
}

// promotionRow is the x-index a pawn-like piece of this color promotes on.
func (b *Board) promotionRow(color Color) int {
	if color == White {
		return 1
	}
	return 8
}

// PromotionCandidates is the fixed set of kinds a pawn-like piece may
// promote to. The King symbol is part of the set: promoting to an additional
// King is an explicit rule of this variant.
func (b *Board) PromotionCandidates() []string {
	return []string{"Q", "R", "N", "K", "M", "V", "Y", "δ", "H"}
}

// computeEnPassantTarget derives the target armed by a double step: the
// capture destination is the square jumped over (the travel midpoint, which
// covers both straight and diagonal double steps), the victim square is the
// move's destination.
func (b *Board) computeEnPassantTarget(mv Move) *EnPassantTarget {
	if !mv.DoubleStep {
		return nil
	}
	return &EnPassantTarget{
		To:     Coord{(mv.FromX + mv.ToX) / 2, (mv.FromY + mv.ToY) / 2},
		Victim: Coord{mv.ToX, mv.ToY},
	}
}

// moveEffect records exactly what execute changed, so revert is a single
// generic inverse instead of per-move-type bookkeeping.
type moveEffect struct {
	mover      Piece
	from, to   Coord
	placed     Piece // occupant of the destination after the move (mover, or the promotion)
	captured   Piece
	capturedAt Coord
	prevEP     *EnPassantTarget
}

// execute performs the structural effect of a pseudo-legal move. It
// validates everything before touching any state, so a failure leaves the
// board untouched and a success always produces a fully revertible effect.
// No legality (royal safety) checking happens here, and the turn order is
// the caller's concern.
func (b *Board) execute(mv Move) (moveEffect, error) {
	var eff moveEffect

	if err := b.checkBounds(mv.FromX, mv.FromY); err != nil {
		return eff, err
	}
	if err := b.checkBounds(mv.ToX, mv.ToY); err != nil {
		return eff, err
	}

	mover := b.grid[mv.FromX][mv.FromY]
	if mover == nil {
		return eff, fmt.Errorf("%w: no piece at source (%d,%d)", ErrEmptySquare, mv.FromX, mv.FromY)
	}

	// Resolve the capture, if any, before mutating.
	var captured Piece
	var capturedAt Coord
	if mv.EnPassant {
		ep := b.epTarget
		if ep == nil {
			return eff, fmt.Errorf("en passant move %s but no target recorded", mv)
		}
		if ep.To.X != mv.ToX || ep.To.Y != mv.ToY {
			return eff, fmt.Errorf("en passant destination (%d,%d) does not match recorded target (%d,%d)",
				mv.ToX, mv.ToY, ep.To.X, ep.To.Y)
		}
		victim := b.grid[ep.Victim.X][ep.Victim.Y]
		if victim == nil || victim.Color() == mover.Color() {
			return eff, fmt.Errorf("invalid en passant victim square (%d,%d)", ep.Victim.X, ep.Victim.Y)
		}
		if b.grid[mv.ToX][mv.ToY] != nil {
			return eff, fmt.Errorf("en passant destination (%d,%d) is occupied", mv.ToX, mv.ToY)
		}
		captured = victim
		capturedAt = ep.Victim
	} else if dst := b.grid[mv.ToX][mv.ToY]; dst != nil {
		if dst.Color() == mover.Color() {
			return eff, fmt.Errorf("destination (%d,%d) occupied by same-color piece", mv.ToX, mv.ToY)
		}
		captured = dst
		capturedAt = Coord{mv.ToX, mv.ToY}
	}

	// Resolve the promotion before mutating. A catalog failure keeps the
	// original piece: losing the promotion beats losing the move.
	placed := mover
	if mv.PromoteTo != "" {
		if promoted, err := CreatePiece(mv.PromoteTo, mover.Color()); err == nil {
			placed = promoted
		}
	}

	eff = moveEffect{
		mover:      mover,
		from:       Coord{mv.FromX, mv.FromY},
		to:         Coord{mv.ToX, mv.ToY},
		placed:     placed,
		captured:   captured,
		capturedAt: capturedAt,
		prevEP:     b.epTarget,
	}

	// Mutate: grid, index and royal cache move together.
	b.indexRemove(mv.FromX, mv.FromY)
	if mover.IsRoyal() {
		delete(b.royalSet(mover.Color()), eff.from)
	}
	b.grid[mv.FromX][mv.FromY] = nil

	if captured != nil {
		b.indexRemove(capturedAt.X, capturedAt.Y)
		if captured.IsRoyal() {
			delete(b.royalSet(captured.Color()), capturedAt)
		}
		b.grid[capturedAt.X][capturedAt.Y] = nil
	}

	b.grid[mv.ToX][mv.ToY] = placed
	b.indexAdd(mv.ToX, mv.ToY)
	if placed.IsRoyal() {
		b.royalSet(placed.Color())[eff.to] = true
	}

	b.epTarget = b.computeEnPassantTarget(mv)

	return eff, nil
}

// revert undoes an effect produced by execute, restoring grid, index, royal
// cache and en-passant target to their prior state.
func (b *Board) revert(eff moveEffect) {
	b.indexRemove(eff.to.X, eff.to.Y)
	if eff.placed.IsRoyal() {
		delete(b.royalSet(eff.placed.Color()), eff.to)
	}
	b.grid[eff.to.X][eff.to.Y] = nil

	if eff.captured != nil {
		b.grid[eff.capturedAt.X][eff.capturedAt.Y] = eff.captured
		b.indexAdd(eff.capturedAt.X, eff.capturedAt.Y)
		if eff.captured.IsRoyal() {
			b.royalSet(eff.captured.Color())[eff.capturedAt] = true
		}
	}

	b.grid[eff.from.X][eff.from.Y] = eff.mover
	b.indexAdd(eff.from.X, eff.from.Y)
	if eff.mover.IsRoyal() {
		b.royalSet(eff.mover.Color())[eff.from] = true
	}

	b.epTarget = eff.prevEP
}

// ApplyMove executes a pseudo-legal move: normal moves and captures, en
// passant against the recorded target, promotion, and en-passant target
// bookkeeping (reset on every move, re-armed by a double step). Structural
// preconditions are validated before any mutation, so a failed call leaves
// the board unchanged. Royal safety and turn alternation are the caller's
// responsibility.
func (b *Board) ApplyMove(mv Move) error {
	_, err := b.execute(mv)
	return err
}

// CollectMoves returns the pseudo-legal moves for the piece at (x, y), or an
// empty slice for an empty square.
func (b *Board) CollectMoves(x, y int) ([]Move, error) {
	if err := b.checkBounds(x, y); err != nil {
		return nil, err
	}
	p := b.grid[x][y]
	if p == nil {
		return nil, nil
	}
	return p.GenerateMoves(b, x, y), nil
}

// ASCII renders the board row-major, top to bottom, one 2-character glyph
// per square ("wK", "bδ", ".." for empty) in 3-wide cells.
func (b *Board) ASCII() string {
	lines := make([]string, 0, b.Height)
	for x := 0; x < b.Height; x++ {
		var sb strings.Builder
		for y := 0; y < b.Width; y++ {
			glyph := ".."
			if p := b.grid[x][y]; p != nil {
				glyph = p.Glyph()
			}
			sb.WriteString(glyph)
			sb.WriteString(strings.Repeat(" ", 3-len([]rune(glyph))))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return strings.Join(lines, "\n")
}
