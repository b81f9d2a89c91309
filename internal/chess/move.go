package chess

import (
	"fmt"
	"strings"
)

// Move describes a single ply. It is a plain value: construction performs no
// validation, the generators and the board are responsible for legality.
type Move struct {
	FromX, FromY int
	ToX, ToY     int
	Piece        Piece

	// DoubleStep marks a pawn-like two-square advance, which arms the
	// board's en-passant target for the next ply.
	DoubleStep bool
	// EnPassant marks a capture into the recorded en-passant target; the
	// destination square is empty, the victim stands elsewhere.
	EnPassant bool
	// PromoteTo is the catalog symbol the mover becomes on arrival, or ""
	// for no promotion.
	PromoteTo string
}

func (m Move) String() string {
	tag := "?"
	if m.Piece != nil {
		tag = m.Piece.Glyph()
	}
	var flags []string
	if m.DoubleStep {
		flags = append(flags, "double")
	}
	if m.EnPassant {
		flags = append(flags, "en-passant")
	}
	if m.PromoteTo != "" {
		flags = append(flags, "promote="+m.PromoteTo)
	}
	s := fmt.Sprintf("%s (%d,%d)->(%d,%d)", tag, m.FromX, m.FromY, m.ToX, m.ToY)
	if len(flags) > 0 {
		s += " [" + strings.Join(flags, "; ") + "]"
	}
	return s
}
