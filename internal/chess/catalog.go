package chess

import "fmt"

// The catalog maps a kind symbol to a constructor. Board setup, layout
// parsing and promotion all build pieces through it; extending the variant
// means registering one entry plus one Piece implementation.
var catalog = map[string]func(Color) Piece{
	"K": func(c Color) Piece { return NewKing(c) },
	"Q": func(c Color) Piece { return NewQueen(c) },
	"R": func(c Color) Piece { return NewRook(c) },
	"N": func(c Color) Piece { return NewKnight(c) },
	"P": func(c Color) Piece { return NewPawn(c) },

	"M": func(c Color) Piece { return NewGeneral(c) },
	"V": func(c Color) Piece { return NewWildebeest(c) },
	"Y": func(c Color) Piece { return NewAlibaba(c) },
	"δ": func(c Color) Piece { return NewSergeant(c) },
	"H": func(c Color) Piece { return NewArchbishop(c) },
}

// slidingKinds are the ray pieces whose checks can be blocked by
// interposition; legal-move pruning computes block squares only for these.
// A future sliding kind must be added here.
var slidingKinds = map[string]bool{
	"B": true,
	"R": true,
	"Q": true,
	"H": true,
}

// CreatePiece builds a piece of the given kind and color.
func CreatePiece(kind string, color Color) (Piece, error) {
	ctor, ok := catalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(color), nil
}
