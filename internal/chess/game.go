package chess

import (
	"fmt"
	"sort"
	"strings"
)

// Game orchestrates turn alternation, the half-move clock (50-move rule) and
// position-repetition counting (threefold rule) on top of a Board. The board
// stays the single mutable authority on position; Game owns only the
// counters layered above it.
type Game struct {
	board *Board
	turn  Color

	// halfmoveClock counts plies since the last capture or pawn-like move;
	// 100 half-moves draw the game.
	halfmoveClock int

	// repetition counts occurrences of each position key, the starting
	// position included.
	repetition map[string]int
}

// pawnLikeKinds reset the half-move clock when moved.
var pawnLikeKinds = map[string]bool{
	"P": true,
	"δ": true,
}

// NewGame starts a game over an existing board with the given side to move.
func NewGame(b *Board, turn Color) *Game {
	g := &Game{
		board:      b,
		turn:       turn,
		repetition: map[string]int{},
	}
	g.repetition[g.positionKey()]++
	return g
}

// NewDefaultGame starts a game from the variant's standard starting
// position, White to move.
func NewDefaultGame() (*Game, error) {
	b, err := NewDefaultBoard()
	if err != nil {
		return nil, err
	}
	return NewGame(b, White), nil
}

// Board exposes the underlying board for queries. Mutating it directly
// bypasses the game's counters; use Play or MakeMove.
func (g *Game) Board() *Board { return g.board }

// Turn is the side to move.
func (g *Game) Turn() Color { return g.turn }

// HalfmoveClock is the number of plies since the last capture or pawn-like
// move.
func (g *Game) HalfmoveClock() int { return g.halfmoveClock }

// Play applies a move, updating the clock, the turn and the repetition
// table. The move is trusted to be legal; MakeMove is the validating entry
// point. A failed application changes nothing.
func (g *Game) Play(mv Move) error {
	mover, err := g.board.At(mv.FromX, mv.FromY)
	if err != nil {
		return err
	}
	if mover == nil {
		return fmt.Errorf("%w: no piece at source (%d,%d)", ErrEmptySquare, mv.FromX, mv.FromY)
	}

	// Capture must be read before applying: the en-passant destination
	// square is empty.
	didCapture := mv.EnPassant
	if !didCapture {
		if dst, err := g.board.At(mv.ToX, mv.ToY); err == nil && dst != nil && dst.Color() != mover.Color() {
			didCapture = true
		}
	}

	if err := g.board.ApplyMove(mv); err != nil {
		return err
	}

	if didCapture || pawnLikeKinds[mover.Kind()] {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	g.turn = g.turn.Opponent()
	g.repetition[g.positionKey()]++
	return nil
}

// MakeMove resolves display coordinates against the current legal-move set
// and plays the matching move. promoteTo selects among promotion choices and
// must be empty for non-promoting moves.
func (g *Game) MakeMove(from, to, promoteTo string) (*MoveResult, error) {
	fx, fy, err := FromDisplay(from, g.board.Height, g.board.Width)
	if err != nil {
		return nil, err
	}
	tx, ty, err := FromDisplay(to, g.board.Height, g.board.Width)
	if err != nil {
		return nil, err
	}

	var chosen Move
	found := false
	for _, mv := range g.board.LegalMovesFor(g.turn) {
		if mv.FromX == fx && mv.FromY == fy && mv.ToX == tx && mv.ToY == ty && mv.PromoteTo == promoteTo {
			chosen = mv
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s to %s for %s", ErrIllegalMove, from, to, g.turn)
	}

	didCapture := chosen.EnPassant
	if !didCapture {
		if dst, err := g.board.At(chosen.ToX, chosen.ToY); err == nil && dst != nil {
			didCapture = true
		}
	}

	if err := g.Play(chosen); err != nil {
		return nil, err
	}

	status := g.ResultIfOver()
	return &MoveResult{
		From:      from,
		To:        to,
		Move:      chosen.String(),
		Capture:   didCapture,
		Check:     g.board.IsInCheck(g.turn),
		Checkmate: g.board.IsCheckmated(g.turn),
		Status:    status,
		GameOver:  status != StatusActive,
	}, nil
}

// ResultIfOver reports the game outcome: threefold-repetition draw, then the
// 50-move draw, then the board's checkmate/stalemate result, else the game
// continues.
func (g *Game) ResultIfOver() GameStatus {
	for _, count := range g.repetition {
		if count >= 3 {
			return StatusDraw
		}
	}
	if g.halfmoveClock >= 100 {
		return StatusDraw
	}
	return g.board.ResultIfOver()
}

// positionKey canonically encodes side to move, piece placement (with royal
// flags) and en-passant rights. Structurally identical positions produce the
// same key regardless of internal index ordering, which is all the
// repetition table needs.
func (g *Game) positionKey() string {
	var entries []string
	for _, color := range [2]Color{White, Black} {
		for _, e := range g.board.pieces[color] {
			if g.board.grid[e.x][e.y] != e.piece {
				continue
			}
			royal := ""
			if e.piece.IsRoyal() {
				royal = "*"
			}
			entries = append(entries, fmt.Sprintf("%s%s%s@%d,%d", color, e.piece.Kind(), royal, e.x, e.y))
		}
	}
	sort.Strings(entries)

	ep := "-"
	if t := g.board.epTarget; t != nil {
		ep = fmt.Sprintf("%d,%d/%d,%d", t.To.X, t.To.Y, t.Victim.X, t.Victim.Y)
	}
	return string(g.turn) + "|" + ep + "|" + strings.Join(entries, ";")
}
